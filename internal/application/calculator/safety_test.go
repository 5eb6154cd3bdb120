package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

func TestValidateGoalSafety_Cutting(t *testing.T) {
	current := decimal.NewFromFloat(25.0)

	t.Run("male floor is inclusive", func(t *testing.T) {
		if err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(8.0), nil, entity.SexMale); err != nil {
			t.Errorf("expected 8.0 to be accepted for males, got %v", err)
		}
	})

	t.Run("male below floor rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(7.99), nil, entity.SexMale)
		if !errors.Is(err, domainerror.ErrUnsafeTarget) {
			t.Errorf("expected ErrUnsafeTarget, got %v", err)
		}
	})

	t.Run("female floor is inclusive", func(t *testing.T) {
		if err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(15.0), nil, entity.SexFemale); err != nil {
			t.Errorf("expected 15.0 to be accepted for females, got %v", err)
		}
	})

	t.Run("female below floor rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(14.99), nil, entity.SexFemale)
		if !errors.Is(err, domainerror.ErrUnsafeTarget) {
			t.Errorf("expected ErrUnsafeTarget, got %v", err)
		}
	})

	t.Run("target at current rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(25.0), nil, entity.SexMale)
		if !errors.Is(err, domainerror.ErrInvalidOrdering) {
			t.Errorf("expected ErrInvalidOrdering, got %v", err)
		}
	})

	t.Run("target above current rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(26.0), nil, entity.SexMale)
		if !errors.Is(err, domainerror.ErrInvalidOrdering) {
			t.Errorf("expected ErrInvalidOrdering, got %v", err)
		}
	})

	t.Run("missing target rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeCutting, current, nil, nil, entity.SexMale)
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
	})

	t.Run("ceiling alongside target rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeCutting, current, dptr(15.0), dptr(25.0), entity.SexMale)
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
	})
}

func TestValidateGoalSafety_Bulking(t *testing.T) {
	current := decimal.NewFromFloat(12.0)

	t.Run("ceiling at maximum accepted", func(t *testing.T) {
		if err := ValidateGoalSafety(entity.GoalTypeBulking, current, nil, dptr(30.0), entity.SexMale); err != nil {
			t.Errorf("expected 30.0 to be accepted, got %v", err)
		}
	})

	t.Run("ceiling above maximum rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeBulking, current, nil, dptr(30.01), entity.SexMale)
		if !errors.Is(err, domainerror.ErrUnsafeTarget) {
			t.Errorf("expected ErrUnsafeTarget, got %v", err)
		}
	})

	t.Run("ceiling at current rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeBulking, current, nil, dptr(12.0), entity.SexMale)
		if !errors.Is(err, domainerror.ErrInvalidOrdering) {
			t.Errorf("expected ErrInvalidOrdering, got %v", err)
		}
	})

	t.Run("missing ceiling rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeBulking, current, nil, nil, entity.SexMale)
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
	})

	t.Run("target alongside ceiling rejected", func(t *testing.T) {
		err := ValidateGoalSafety(entity.GoalTypeBulking, current, dptr(10.0), dptr(18.0), entity.SexMale)
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
	})
}
