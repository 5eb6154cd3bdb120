// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/body-recomp/backend/internal/application/usecase/plan"

// TrainingPlanResponse represents the training plan for a goal. The plan
// structure itself is already JSON-shaped.
type TrainingPlanResponse struct {
	GoalID string             `json:"goal_id"`
	Plan   *plan.TrainingPlan `json:"plan"`
}

// DietPlanResponse represents the diet plan for a goal.
type DietPlanResponse struct {
	GoalID string         `json:"goal_id"`
	Plan   *plan.DietPlan `json:"plan"`
}
