// Package calculator holds the pure body-composition math: body-fat
// estimation, energy expenditure, timelines and the safety rules around
// them. Functions here have no dependencies on storage or transport.
package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// BodyFatInput carries everything a body-fat estimate needs: the subject's
// profile attributes plus the raw tape or caliper readings for the chosen
// method.
type BodyFatInput struct {
	Sex      entity.Sex
	Age      int
	HeightCm decimal.Decimal
	Method   entity.CalculationMethod
	Raw      entity.RawInputs
}

// BodyFat computes the body-fat percentage for the given method, rounded to
// two decimal places. Missing required raw inputs produce a measurement
// error naming the field.
func BodyFat(in BodyFatInput) (decimal.Decimal, error) {
	var bf float64
	var err error

	switch in.Method {
	case entity.MethodNavy:
		bf, err = navy(in)
	case entity.MethodThreeSite:
		bf, err = threeSite(in)
	case entity.MethodSevenSite:
		bf, err = sevenSite(in)
	default:
		return decimal.Zero, domainerror.NewMeasurementError(
			domainerror.ErrCodeUnknownMethod,
			"unknown calculation method: "+string(in.Method),
			domainerror.ErrUnknownMethod,
		)
	}
	if err != nil {
		return decimal.Zero, err
	}
	return round2(bf), nil
}

// navy implements the US Navy circumference method.
//
// Men:   86.010 × log10(waist − neck) − 70.041 × log10(height) + 36.76
// Women: 163.205 × log10(waist + hip − neck) − 97.684 × log10(height) − 78.387
func navy(in BodyFatInput) (float64, error) {
	if in.Raw.WaistCm == nil {
		return 0, missingInput("waist_cm required for navy method")
	}
	if in.Raw.NeckCm == nil {
		return 0, missingInput("neck_cm required for navy method")
	}

	height := in.HeightCm.InexactFloat64()
	waist := in.Raw.WaistCm.InexactFloat64()
	neck := in.Raw.NeckCm.InexactFloat64()

	if in.Sex == entity.SexMale {
		return 86.010*math.Log10(waist-neck) -
			70.041*math.Log10(height) + 36.76, nil
	}

	if in.Raw.HipCm == nil {
		return 0, missingInput("hip_cm required for women using navy method")
	}
	hip := in.Raw.HipCm.InexactFloat64()
	return 163.205*math.Log10(waist+hip-neck) -
		97.684*math.Log10(height) - 78.387, nil
}

// threeSite implements the Jackson-Pollock 3-site skinfold method. Men sum
// chest, abdomen and thigh; women sum tricep, suprailiac and thigh. Body
// density is converted to a percentage with the Siri equation.
func threeSite(in BodyFatInput) (float64, error) {
	var sum float64
	var density float64

	if in.Sex == entity.SexMale {
		if in.Raw.ChestMm == nil || in.Raw.AbdomenMm == nil || in.Raw.ThighMm == nil {
			return 0, missingInput("chest_mm, abdomen_mm and thigh_mm required for men using 3_site method")
		}
		sum = in.Raw.ChestMm.InexactFloat64() +
			in.Raw.AbdomenMm.InexactFloat64() +
			in.Raw.ThighMm.InexactFloat64()
		density = 1.10938 -
			0.0008267*sum +
			0.0000016*sum*sum -
			0.0002574*float64(in.Age)
	} else {
		if in.Raw.TricepMm == nil || in.Raw.SuprailiacMm == nil || in.Raw.ThighMm == nil {
			return 0, missingInput("tricep_mm, suprailiac_mm and thigh_mm required for women using 3_site method")
		}
		sum = in.Raw.TricepMm.InexactFloat64() +
			in.Raw.SuprailiacMm.InexactFloat64() +
			in.Raw.ThighMm.InexactFloat64()
		density = 1.0994921 -
			0.0009929*sum +
			0.0000023*sum*sum -
			0.0001392*float64(in.Age)
	}

	return siri(density), nil
}

// sevenSite implements the Jackson-Pollock 7-site skinfold method for both
// sexes. All seven skinfolds are required.
func sevenSite(in BodyFatInput) (float64, error) {
	sites := []*decimal.Decimal{
		in.Raw.ChestMm, in.Raw.MidaxillaryMm, in.Raw.TricepMm,
		in.Raw.SubscapularMm, in.Raw.AbdomenMm, in.Raw.SuprailiacMm,
		in.Raw.ThighMm,
	}
	var sum float64
	for _, s := range sites {
		if s == nil {
			return 0, missingInput("all seven skinfolds required for 7_site method")
		}
		sum += s.InexactFloat64()
	}

	var density float64
	if in.Sex == entity.SexMale {
		density = 1.112 -
			0.00043499*sum +
			0.00000055*sum*sum -
			0.00028826*float64(in.Age)
	} else {
		density = 1.097 -
			0.00046971*sum +
			0.00000056*sum*sum -
			0.00012828*float64(in.Age)
	}

	return siri(density), nil
}

// siri converts body density to a body-fat percentage.
func siri(density float64) float64 {
	return 495/density - 450
}

func missingInput(message string) error {
	return domainerror.NewMeasurementError(
		domainerror.ErrCodeMissingInput,
		message,
		domainerror.ErrMissingInput,
	)
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
