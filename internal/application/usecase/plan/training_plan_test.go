package plan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.Status == entity.GoalStatusActive {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && (status == nil || g.Status == *status) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

type fakeMeasurementRepo struct {
	measurements []*entity.Measurement
}

func (r *fakeMeasurementRepo) Create(_ context.Context, m *entity.Measurement) error {
	r.measurements = append(r.measurements, m)
	return nil
}

func (r *fakeMeasurementRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Measurement, error) {
	for _, m := range r.measurements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domainerror.ErrMeasurementNotFound
}

func (r *fakeMeasurementRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Measurement, error) {
	var out []*entity.Measurement
	// Most recent first, matching the persistence ordering.
	for i := len(r.measurements) - 1; i >= 0; i-- {
		if r.measurements[i].UserID == userID {
			out = append(out, r.measurements[i])
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMeasurementRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	ms, _ := r.FindByUserID(context.Background(), userID, 0, 0)
	return int64(len(ms)), nil
}

func seedGoal(goalRepo *fakeGoalRepo, measurementRepo *fakeMeasurementRepo, goalType entity.GoalType, targetCalories int) *entity.Goal {
	userID := uuid.New()
	initial := entity.NewMeasurement(
		userID,
		decimal.NewFromInt(80),
		entity.MethodNavy,
		entity.RawInputs{},
		decimal.NewFromFloat(22.5),
		nil,
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	)
	measurementRepo.measurements = append(measurementRepo.measurements, initial)

	boundary := decimal.NewFromFloat(15.0)
	var target, ceiling *decimal.Decimal
	if goalType == entity.GoalTypeCutting {
		target = &boundary
	} else {
		ceiling = &boundary
	}
	g := entity.NewGoal(userID, goalType, initial, target, ceiling, targetCalories, 43)
	goalRepo.goals[g.ID] = g
	return g
}

func TestGetTrainingPlanUseCase(t *testing.T) {
	goalRepo := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
	measurementRepo := &fakeMeasurementRepo{}
	uc := NewGetTrainingPlanUseCase(goalRepo)

	t.Run("cutting favors retention plus cardio", func(t *testing.T) {
		g := seedGoal(goalRepo, measurementRepo, entity.GoalTypeCutting, 2311)

		out, err := uc.Execute(context.Background(), GetTrainingPlanInput{UserID: g.UserID, GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := out.Plan
		if p.StrengthTraining.Frequency != 3 {
			t.Errorf("expected 3 strength sessions, got %d", p.StrengthTraining.Frequency)
		}
		if p.Cardio.Frequency != 2 {
			t.Errorf("expected 2 cardio sessions, got %d", p.Cardio.Frequency)
		}
		if p.Recovery.RestDays != 2 {
			t.Errorf("expected 2 rest days, got %d", p.Recovery.RestDays)
		}
		if len(p.StrengthTraining.Exercises) != 5 {
			t.Errorf("expected 5 exercises, got %d", len(p.StrengthTraining.Exercises))
		}
		if len(p.Cardio.Activities) != 2 {
			t.Errorf("expected LISS and HIIT prescriptions, got %d", len(p.Cardio.Activities))
		}
	})

	t.Run("bulking favors volume over cardio", func(t *testing.T) {
		g := seedGoal(goalRepo, measurementRepo, entity.GoalTypeBulking, 2961)

		out, err := uc.Execute(context.Background(), GetTrainingPlanInput{UserID: g.UserID, GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := out.Plan
		if p.StrengthTraining.Frequency != 5 {
			t.Errorf("expected 5 strength sessions, got %d", p.StrengthTraining.Frequency)
		}
		if p.Cardio.Frequency != 1 {
			t.Errorf("expected 1 cardio session, got %d", p.Cardio.Frequency)
		}
		if p.Recovery.RestDays != 1 {
			t.Errorf("expected 1 rest day, got %d", p.Recovery.RestDays)
		}
		if len(p.StrengthTraining.Exercises) != 7 {
			t.Errorf("expected 7 exercises, got %d", len(p.StrengthTraining.Exercises))
		}
	})

	t.Run("ownership enforced", func(t *testing.T) {
		g := seedGoal(goalRepo, measurementRepo, entity.GoalTypeCutting, 2311)

		_, err := uc.Execute(context.Background(), GetTrainingPlanInput{UserID: uuid.New(), GoalID: g.ID})
		if !errors.Is(err, domainerror.ErrGoalOwnership) {
			t.Errorf("expected ErrGoalOwnership, got %v", err)
		}
	})
}

func TestGetDietPlanUseCase(t *testing.T) {
	t.Run("macros track the latest recorded weight", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
		measurementRepo := &fakeMeasurementRepo{}
		uc := NewGetDietPlanUseCase(goalRepo, measurementRepo)

		g := seedGoal(goalRepo, measurementRepo, entity.GoalTypeCutting, 2311)
		// A later measurement at a lower weight.
		later := entity.NewMeasurement(
			g.UserID,
			decimal.NewFromInt(75),
			entity.MethodNavy,
			entity.RawInputs{},
			decimal.NewFromFloat(20.0),
			nil,
			time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC),
		)
		measurementRepo.measurements = append(measurementRepo.measurements, later)

		out, err := uc.Execute(context.Background(), GetDietPlanInput{UserID: g.UserID, GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := out.Plan
		if p.DailyCalorieTarget != 2311 {
			t.Errorf("expected calorie target 2311, got %d", p.DailyCalorieTarget)
		}
		// 75kg x 2.4g/kg, not the 80kg initial weight.
		if p.Macros.ProteinGrams != 180 {
			t.Errorf("expected 180g protein from latest weight, got %d", p.Macros.ProteinGrams)
		}
		if p.MealTiming.MealsPerDay != "3-4" {
			t.Errorf("expected 3-4 meals for cutting, got %s", p.MealTiming.MealsPerDay)
		}
		if !strings.Contains(p.Guidelines, "Daily targets:") {
			t.Errorf("expected guidelines to open with daily targets, got %q", p.Guidelines)
		}
	})

	t.Run("falls back to initial weight without measurements", func(t *testing.T) {
		goalRepo := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
		measurementRepo := &fakeMeasurementRepo{}
		uc := NewGetDietPlanUseCase(goalRepo, measurementRepo)

		g := seedGoal(goalRepo, measurementRepo, entity.GoalTypeBulking, 2961)
		measurementRepo.measurements = nil // goal outlives its measurement history

		out, err := uc.Execute(context.Background(), GetDietPlanInput{UserID: g.UserID, GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Plan.Macros.ProteinGrams != 160 {
			t.Errorf("expected 160g protein from initial 80kg, got %d", out.Plan.Macros.ProteinGrams)
		}
		if out.Plan.MealTiming.MealsPerDay != "4-5" {
			t.Errorf("expected 4-5 meals for bulking, got %s", out.Plan.MealTiming.MealsPerDay)
		}
	})
}
