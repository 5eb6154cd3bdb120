// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// LogProgressRequest represents the request body for appending a progress
// entry.
type LogProgressRequest struct {
	MeasurementID string  `json:"measurement_id" binding:"required,uuid"`
	Notes         *string `json:"notes"`
}

// ProgressEntryResponse represents one ledger checkpoint in API responses.
type ProgressEntryResponse struct {
	ID             string          `json:"id"`
	MeasurementID  string          `json:"measurement_id"`
	WeekNumber     int             `json:"week_number"`
	BodyFat        decimal.Decimal `json:"body_fat"`
	WeightKg       decimal.Decimal `json:"weight_kg"`
	BodyFatChange  decimal.Decimal `json:"body_fat_change"`
	WeightChangeKg decimal.Decimal `json:"weight_change_kg"`
	IsOnTrack      bool            `json:"is_on_track"`
	Notes          *string         `json:"notes,omitempty"`
	LoggedAt       time.Time       `json:"logged_at"`
}

// LogProgressResponse represents the response for a progress append. The
// warnings are advice derived at append time and are not persisted.
type LogProgressResponse struct {
	Entry          ProgressEntryResponse `json:"entry"`
	CeilingWarning *string               `json:"ceiling_warning,omitempty"`
	RateWarning    *string               `json:"rate_warning,omitempty"`
	GoalCompleted  bool                  `json:"goal_completed"`
}

// ProgressListResponse represents a goal's full ledger in week order.
type ProgressListResponse struct {
	Entries []ProgressEntryResponse `json:"entries"`
}

// TrendsResponse represents the trend analysis for a goal.
type TrendsResponse struct {
	GoalID                  string          `json:"goal_id"`
	ProgressPercentage      decimal.Decimal `json:"progress_percentage"`
	WeeksElapsed            int             `json:"weeks_elapsed"`
	IsOnTrack               bool            `json:"is_on_track"`
	WeeklyBFChangeAvg       decimal.Decimal `json:"weekly_bf_change_avg"`
	WeeklyWeightChangeAvg   decimal.Decimal `json:"weekly_weight_change_avg"`
	Trend                   string          `json:"trend"`
	AdjustmentSuggestion    *string         `json:"adjustment_suggestion,omitempty"`
	EstimatedWeeksRemaining *int            `json:"estimated_weeks_remaining,omitempty"`
}

// ToProgressEntryResponse converts a domain ProgressEntry entity to a
// ProgressEntryResponse DTO.
func ToProgressEntryResponse(e *entity.ProgressEntry) ProgressEntryResponse {
	return ProgressEntryResponse{
		ID:             e.ID.String(),
		MeasurementID:  e.MeasurementID.String(),
		WeekNumber:     e.WeekNumber,
		BodyFat:        e.BodyFat,
		WeightKg:       e.WeightKg,
		BodyFatChange:  e.BodyFatChange,
		WeightChangeKg: e.WeightChangeKg,
		IsOnTrack:      e.IsOnTrack,
		Notes:          e.Notes,
		LoggedAt:       e.LoggedAt,
	}
}
