package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// Plausible physical ranges for submitted measurements.
var (
	MinWeightKg = decimal.NewFromFloat(30.0)
	MaxWeightKg = decimal.NewFromFloat(300.0)

	MinCircumferenceCm = decimal.NewFromFloat(10.0)
	MaxCircumferenceCm = decimal.NewFromFloat(200.0)

	MinSkinfoldMm = decimal.NewFromFloat(1.0)
	MaxSkinfoldMm = decimal.NewFromFloat(60.0)

	MinBodyFatMale   = decimal.NewFromFloat(5.0)
	MinBodyFatFemale = decimal.NewFromFloat(8.0)
	MaxBodyFat       = decimal.NewFromFloat(50.0)
)

// ValidateWeight checks that a weight in kilograms is plausible.
func ValidateWeight(weightKg decimal.Decimal) error {
	if weightKg.LessThan(MinWeightKg) {
		return outOfRange(fmt.Sprintf("weight too low (minimum %s kg)", MinWeightKg.StringFixed(1)))
	}
	if weightKg.GreaterThan(MaxWeightKg) {
		return outOfRange(fmt.Sprintf("weight too high (maximum %s kg)", MaxWeightKg.StringFixed(1)))
	}
	return nil
}

// ValidateRawInputs checks every provided circumference and skinfold against
// its plausible range. Absent fields are skipped; presence requirements are
// enforced by the body-fat calculation itself.
func ValidateRawInputs(raw entity.RawInputs) error {
	circumferences := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"waist_cm", raw.WaistCm},
		{"neck_cm", raw.NeckCm},
		{"hip_cm", raw.HipCm},
	}
	for _, c := range circumferences {
		if c.value == nil {
			continue
		}
		if c.value.LessThan(MinCircumferenceCm) {
			return outOfRange(fmt.Sprintf("%s too small (minimum %s cm)",
				c.name, MinCircumferenceCm.StringFixed(1)))
		}
		if c.value.GreaterThan(MaxCircumferenceCm) {
			return outOfRange(fmt.Sprintf("%s too large (maximum %s cm)",
				c.name, MaxCircumferenceCm.StringFixed(1)))
		}
	}

	skinfolds := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"chest_mm", raw.ChestMm},
		{"abdomen_mm", raw.AbdomenMm},
		{"thigh_mm", raw.ThighMm},
		{"tricep_mm", raw.TricepMm},
		{"suprailiac_mm", raw.SuprailiacMm},
		{"midaxillary_mm", raw.MidaxillaryMm},
		{"subscapular_mm", raw.SubscapularMm},
	}
	for _, s := range skinfolds {
		if s.value == nil {
			continue
		}
		if s.value.LessThan(MinSkinfoldMm) {
			return outOfRange(fmt.Sprintf("%s too small (minimum %s mm)",
				s.name, MinSkinfoldMm.StringFixed(1)))
		}
		if s.value.GreaterThan(MaxSkinfoldMm) {
			return outOfRange(fmt.Sprintf("%s too large (maximum %s mm)",
				s.name, MaxSkinfoldMm.StringFixed(1)))
		}
	}
	return nil
}

// ValidateBodyFatRange checks that a computed body-fat percentage falls in
// the physiological range for the sex.
func ValidateBodyFatRange(bodyFat decimal.Decimal, sex entity.Sex) error {
	minBF := MinBodyFatFemale
	if sex == entity.SexMale {
		minBF = MinBodyFatMale
	}
	if bodyFat.LessThan(minBF) {
		return outOfRange(fmt.Sprintf("body fat percentage too low (minimum %s%%)",
			minBF.StringFixed(1)))
	}
	if bodyFat.GreaterThan(MaxBodyFat) {
		return outOfRange(fmt.Sprintf("body fat percentage too high (maximum %s%%)",
			MaxBodyFat.StringFixed(1)))
	}
	return nil
}

func outOfRange(message string) error {
	return domainerror.NewMeasurementError(
		domainerror.ErrCodeInputOutOfRange,
		message,
		domainerror.ErrInputOutOfRange,
	)
}
