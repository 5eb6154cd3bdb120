// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawInputs holds the method-specific raw measurements: circumferences in cm
// for the Navy method, skinfolds in mm for the 3-site and 7-site methods.
// Only the fields the chosen method requires are set.
type RawInputs struct {
	WaistCm       *decimal.Decimal
	NeckCm        *decimal.Decimal
	HipCm         *decimal.Decimal
	ChestMm       *decimal.Decimal
	AbdomenMm     *decimal.Decimal
	ThighMm       *decimal.Decimal
	TricepMm      *decimal.Decimal
	SuprailiacMm  *decimal.Decimal
	MidaxillaryMm *decimal.Decimal
	SubscapularMm *decimal.Decimal
}

// Measurement represents a single body measurement snapshot. It is the
// append-only evidentiary record for all downstream calculation: created once
// per submission and never mutated.
type Measurement struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	WeightKg          decimal.Decimal
	CalculationMethod CalculationMethod
	Raw               RawInputs
	BodyFatPercentage decimal.Decimal
	Notes             *string
	MeasuredAt        time.Time
	CreatedAt         time.Time
}

// NewMeasurement creates a new Measurement entity with the derived body-fat
// percentage already computed and validated by the caller.
func NewMeasurement(
	userID uuid.UUID,
	weightKg decimal.Decimal,
	method CalculationMethod,
	raw RawInputs,
	bodyFat decimal.Decimal,
	notes *string,
	measuredAt time.Time,
) *Measurement {
	return &Measurement{
		ID:                uuid.New(),
		UserID:            userID,
		WeightKg:          weightKg,
		CalculationMethod: method,
		Raw:               raw,
		BodyFatPercentage: bodyFat,
		Notes:             notes,
		MeasuredAt:        measuredAt,
		CreatedAt:         time.Now().UTC(),
	}
}
