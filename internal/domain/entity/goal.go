// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the kind of body recomposition goal.
type GoalType string

const (
	GoalTypeCutting GoalType = "cutting"
	GoalTypeBulking GoalType = "bulking"
)

// GoalStatus represents the lifecycle status of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Goal represents a user's body recomposition goal. The initial body-fat and
// weight values are copied from the initial measurement at creation time so
// the goal's history is fixed. Exactly one of TargetBodyFat (cutting) or
// CeilingBodyFat (bulking) is set. At most one goal per user may be ACTIVE.
type Goal struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	GoalType             GoalType
	Status               GoalStatus
	InitialMeasurementID uuid.UUID
	InitialBodyFat       decimal.Decimal
	InitialWeightKg      decimal.Decimal
	TargetBodyFat        *decimal.Decimal
	CeilingBodyFat       *decimal.Decimal
	TargetCalories       int
	EstimatedWeeks       int
	StartedAt            time.Time
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewGoal creates a new ACTIVE Goal entity with its snapshot fields copied
// from the initial measurement.
func NewGoal(
	userID uuid.UUID,
	goalType GoalType,
	initial *Measurement,
	targetBodyFat, ceilingBodyFat *decimal.Decimal,
	targetCalories, estimatedWeeks int,
) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:                   uuid.New(),
		UserID:               userID,
		GoalType:             goalType,
		Status:               GoalStatusActive,
		InitialMeasurementID: initial.ID,
		InitialBodyFat:       initial.BodyFatPercentage,
		InitialWeightKg:      initial.WeightKg,
		TargetBodyFat:        targetBodyFat,
		CeilingBodyFat:       ceilingBodyFat,
		TargetCalories:       targetCalories,
		EstimatedWeeks:       estimatedWeeks,
		StartedAt:            now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// BoundaryBodyFat returns the body-fat boundary that ends the goal: the
// target for cutting, the ceiling for bulking.
func (g *Goal) BoundaryBodyFat() *decimal.Decimal {
	if g.GoalType == GoalTypeCutting {
		return g.TargetBodyFat
	}
	return g.CeilingBodyFat
}

// IsCompletedBy reports whether the given body-fat percentage crosses the
// goal's boundary: at or below the target for cutting, at or above the
// ceiling for bulking.
func (g *Goal) IsCompletedBy(bodyFat decimal.Decimal) bool {
	switch g.GoalType {
	case GoalTypeCutting:
		return g.TargetBodyFat != nil && bodyFat.LessThanOrEqual(*g.TargetBodyFat)
	case GoalTypeBulking:
		return g.CeilingBodyFat != nil && bodyFat.GreaterThanOrEqual(*g.CeilingBodyFat)
	}
	return false
}

// IsValidGoalType reports whether the given value is a known goal type.
func IsValidGoalType(t GoalType) bool {
	return t == GoalTypeCutting || t == GoalTypeBulking
}
