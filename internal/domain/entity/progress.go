// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressEntry represents one checkpoint in a goal's append-only progress
// ledger. Week numbers are 1-based and strictly increasing; each measurement
// may back at most one entry ever. Entries are never mutated or deleted.
type ProgressEntry struct {
	ID             uuid.UUID
	GoalID         uuid.UUID
	MeasurementID  uuid.UUID
	WeekNumber     int
	BodyFat        decimal.Decimal
	WeightKg       decimal.Decimal
	BodyFatChange  decimal.Decimal
	WeightChangeKg decimal.Decimal
	IsOnTrack      bool
	Notes          *string
	LoggedAt       time.Time
}

// NewProgressEntry creates a new ProgressEntry with its snapshot fields
// copied from the measurement that produced it.
func NewProgressEntry(
	goalID uuid.UUID,
	measurement *Measurement,
	weekNumber int,
	bodyFatChange, weightChange decimal.Decimal,
	isOnTrack bool,
	notes *string,
) *ProgressEntry {
	return &ProgressEntry{
		ID:             uuid.New(),
		GoalID:         goalID,
		MeasurementID:  measurement.ID,
		WeekNumber:     weekNumber,
		BodyFat:        measurement.BodyFatPercentage,
		WeightKg:       measurement.WeightKg,
		BodyFatChange:  bodyFatChange,
		WeightChangeKg: weightChange,
		IsOnTrack:      isOnTrack,
		Notes:          notes,
		LoggedAt:       time.Now().UTC(),
	}
}
