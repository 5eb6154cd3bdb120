package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

func TestValidateWeight(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		if err := ValidateWeight(decimal.NewFromFloat(30.0)); err != nil {
			t.Errorf("expected 30.0 kg to be valid, got %v", err)
		}
		if err := ValidateWeight(decimal.NewFromFloat(300.0)); err != nil {
			t.Errorf("expected 300.0 kg to be valid, got %v", err)
		}
	})

	t.Run("out of bounds rejected", func(t *testing.T) {
		if err := ValidateWeight(decimal.NewFromFloat(29.99)); !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
		if err := ValidateWeight(decimal.NewFromFloat(300.01)); !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})
}

func TestValidateRawInputs(t *testing.T) {
	t.Run("valid inputs pass", func(t *testing.T) {
		err := ValidateRawInputs(entity.RawInputs{
			WaistCm: dptr(90),
			NeckCm:  dptr(38),
			ThighMm: dptr(15),
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("absent fields are skipped", func(t *testing.T) {
		if err := ValidateRawInputs(entity.RawInputs{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("circumference too small", func(t *testing.T) {
		err := ValidateRawInputs(entity.RawInputs{WaistCm: dptr(9.99)})
		if !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})

	t.Run("circumference too large", func(t *testing.T) {
		err := ValidateRawInputs(entity.RawInputs{HipCm: dptr(200.5)})
		if !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})

	t.Run("skinfold too large", func(t *testing.T) {
		err := ValidateRawInputs(entity.RawInputs{ThighMm: dptr(60.01)})
		if !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})

	t.Run("skinfold too small", func(t *testing.T) {
		err := ValidateRawInputs(entity.RawInputs{TricepMm: dptr(0.5)})
		if !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})
}

func TestValidateBodyFatRange(t *testing.T) {
	t.Run("male lower bound", func(t *testing.T) {
		if err := ValidateBodyFatRange(decimal.NewFromFloat(5.0), entity.SexMale); err != nil {
			t.Errorf("expected 5.0 to be valid for males, got %v", err)
		}
		if err := ValidateBodyFatRange(decimal.NewFromFloat(4.99), entity.SexMale); !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})

	t.Run("female lower bound", func(t *testing.T) {
		if err := ValidateBodyFatRange(decimal.NewFromFloat(8.0), entity.SexFemale); err != nil {
			t.Errorf("expected 8.0 to be valid for females, got %v", err)
		}
		if err := ValidateBodyFatRange(decimal.NewFromFloat(7.99), entity.SexFemale); !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})

	t.Run("upper bound", func(t *testing.T) {
		if err := ValidateBodyFatRange(decimal.NewFromFloat(50.0), entity.SexMale); err != nil {
			t.Errorf("expected 50.0 to be valid, got %v", err)
		}
		if err := ValidateBodyFatRange(decimal.NewFromFloat(50.01), entity.SexMale); !errors.Is(err, domainerror.ErrInputOutOfRange) {
			t.Errorf("expected ErrInputOutOfRange, got %v", err)
		}
	})
}
