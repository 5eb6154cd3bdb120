// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation. Exactly
// one boundary is accepted: target_body_fat for cutting goals,
// ceiling_body_fat for bulking goals.
type CreateGoalRequest struct {
	GoalType             string           `json:"goal_type" binding:"required"`
	InitialMeasurementID string           `json:"initial_measurement_id" binding:"required,uuid"`
	TargetBodyFat        *decimal.Decimal `json:"target_body_fat"`
	CeilingBodyFat       *decimal.Decimal `json:"ceiling_body_fat"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID                   string           `json:"id"`
	GoalType             string           `json:"goal_type"`
	Status               string           `json:"status"`
	InitialMeasurementID string           `json:"initial_measurement_id"`
	InitialBodyFat       decimal.Decimal  `json:"initial_body_fat"`
	InitialWeightKg      decimal.Decimal  `json:"initial_weight_kg"`
	TargetBodyFat        *decimal.Decimal `json:"target_body_fat,omitempty"`
	CeilingBodyFat       *decimal.Decimal `json:"ceiling_body_fat,omitempty"`
	TargetCalories       int              `json:"target_calories"`
	EstimatedWeeks       int              `json:"estimated_weeks"`
	StartedAt            time.Time        `json:"started_at"`
	CompletedAt          *time.Time       `json:"completed_at,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
}

// CreateGoalResponse represents the response for goal creation, including
// the energy derivation behind the calorie target.
type CreateGoalResponse struct {
	Goal GoalResponse `json:"goal"`
	BMR  int          `json:"bmr"`
	TDEE int          `json:"tdee"`
}

// GoalListResponse represents a list of goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:                   g.ID.String(),
		GoalType:             string(g.GoalType),
		Status:               string(g.Status),
		InitialMeasurementID: g.InitialMeasurementID.String(),
		InitialBodyFat:       g.InitialBodyFat,
		InitialWeightKg:      g.InitialWeightKg,
		TargetBodyFat:        g.TargetBodyFat,
		CeilingBodyFat:       g.CeilingBodyFat,
		TargetCalories:       g.TargetCalories,
		EstimatedWeeks:       g.EstimatedWeeks,
		StartedAt:            g.StartedAt,
		CompletedAt:          g.CompletedAt,
		CreatedAt:            g.CreatedAt,
	}
}
