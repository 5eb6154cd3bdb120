// Package plan contains training and diet plan generation use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// Exercise is one prescribed movement in a strength block.
type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

// StrengthBlock describes the weekly strength training prescription.
type StrengthBlock struct {
	Frequency   int        `json:"frequency"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	Progression string     `json:"progression"`
	Notes       string     `json:"notes"`
}

// CardioActivity is one prescribed cardio modality.
type CardioActivity struct {
	Type      string `json:"type"`
	Duration  string `json:"duration"`
	Intensity string `json:"intensity"`
	Examples  string `json:"examples"`
}

// CardioBlock describes the weekly cardio prescription.
type CardioBlock struct {
	Frequency   int              `json:"frequency"`
	Description string           `json:"description"`
	Activities  []CardioActivity `json:"activities"`
	Notes       string           `json:"notes"`
}

// RecoveryBlock describes rest and sleep guidance.
type RecoveryBlock struct {
	RestDays    int    `json:"rest_days"`
	SleepTarget string `json:"sleep_target"`
	Notes       string `json:"notes"`
}

// TrainingPlan is a full weekly training prescription for a goal.
type TrainingPlan struct {
	StrengthTraining StrengthBlock `json:"strength_training"`
	Cardio           CardioBlock   `json:"cardio"`
	Recovery         RecoveryBlock `json:"recovery"`
}

// GetTrainingPlanInput represents the input for training plan generation.
type GetTrainingPlanInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetTrainingPlanOutput represents the output of training plan generation.
type GetTrainingPlanOutput struct {
	GoalID uuid.UUID
	Plan   *TrainingPlan
}

// GetTrainingPlanUseCase generates the training plan matching a goal's type.
type GetTrainingPlanUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetTrainingPlanUseCase creates a new GetTrainingPlanUseCase instance.
func NewGetTrainingPlanUseCase(goalRepo adapter.GoalRepository) *GetTrainingPlanUseCase {
	return &GetTrainingPlanUseCase{goalRepo: goalRepo}
}

// Execute generates the plan, enforcing goal ownership.
func (uc *GetTrainingPlanUseCase) Execute(ctx context.Context, input GetTrainingPlanInput) (*GetTrainingPlanOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if g.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalOwnership,
			"goal belongs to another user",
			domainerror.ErrGoalOwnership,
		)
	}

	var p *TrainingPlan
	if g.GoalType == entity.GoalTypeCutting {
		p = cuttingTrainingPlan()
	} else {
		p = bulkingTrainingPlan()
	}
	return &GetTrainingPlanOutput{GoalID: g.ID, Plan: p}, nil
}

// cuttingTrainingPlan favors strength retention plus extra energy
// expenditure through cardio.
func cuttingTrainingPlan() *TrainingPlan {
	return &TrainingPlan{
		StrengthTraining: StrengthBlock{
			Frequency:   3,
			Description: "3-4 sessions per week focusing on compound movements",
			Exercises: []Exercise{
				{Name: "Squats", Sets: "3-4", Reps: "6-8", Rest: "2-3 min"},
				{Name: "Deadlifts", Sets: "3", Reps: "5-6", Rest: "3 min"},
				{Name: "Bench Press", Sets: "3-4", Reps: "6-8", Rest: "2-3 min"},
				{Name: "Overhead Press", Sets: "3", Reps: "6-8", Rest: "2 min"},
				{Name: "Barbell Rows", Sets: "3-4", Reps: "6-8", Rest: "2 min"},
			},
			Progression: "Maintain or slightly increase strength. Focus on keeping weight on the bar during deficit.",
			Notes:       "Prioritize compound movements. Reduce volume if recovery is impaired.",
		},
		Cardio: CardioBlock{
			Frequency:   2,
			Description: "2-3 sessions per week for additional calorie expenditure",
			Activities: []CardioActivity{
				{
					Type:      "LISS (Low Intensity Steady State)",
					Duration:  "30-45 minutes",
					Intensity: "Zone 2 (conversational pace)",
					Examples:  "Walking, cycling, swimming",
				},
				{
					Type:      "HIIT (High Intensity Interval Training)",
					Duration:  "15-20 minutes",
					Intensity: "Alternating high/low intensity",
					Examples:  "Sprints, bike intervals, rowing",
				},
			},
			Notes: "Start with 2 sessions, increase to 3 if fat loss stalls. Do cardio on separate days or after strength training.",
		},
		Recovery: RecoveryBlock{
			RestDays:    2,
			SleepTarget: "7-9 hours",
			Notes:       "Adequate recovery is crucial during a calorie deficit.",
		},
	}
}

// bulkingTrainingPlan favors volume and progressive overload with minimal
// cardio.
func bulkingTrainingPlan() *TrainingPlan {
	return &TrainingPlan{
		StrengthTraining: StrengthBlock{
			Frequency:   5,
			Description: "4-6 sessions per week with progressive overload",
			Exercises: []Exercise{
				{Name: "Squats", Sets: "4-5", Reps: "6-10", Rest: "2-3 min"},
				{Name: "Deadlifts", Sets: "3-4", Reps: "5-8", Rest: "3-4 min"},
				{Name: "Bench Press", Sets: "4-5", Reps: "6-10", Rest: "2-3 min"},
				{Name: "Overhead Press", Sets: "3-4", Reps: "6-10", Rest: "2-3 min"},
				{Name: "Barbell Rows", Sets: "4", Reps: "6-10", Rest: "2-3 min"},
				{Name: "Pull-ups/Lat Pulldowns", Sets: "3-4", Reps: "8-12", Rest: "2 min"},
				{Name: "Dips", Sets: "3", Reps: "8-12", Rest: "2 min"},
			},
			Progression: "Progressive overload - increase weight by 2.5-5% when you can complete all sets with good form.",
			Notes:       "Focus on increasing strength and volume over time. Add 1-2 isolation exercises per muscle group.",
		},
		Cardio: CardioBlock{
			Frequency:   1,
			Description: "Minimal cardio to preserve energy for muscle growth",
			Activities: []CardioActivity{
				{
					Type:      "LISS (Low Intensity Steady State)",
					Duration:  "20-30 minutes",
					Intensity: "Zone 2 (easy pace)",
					Examples:  "Walking, light cycling",
				},
			},
			Notes: "Keep cardio minimal. Used primarily for cardiovascular health, not calorie burning.",
		},
		Recovery: RecoveryBlock{
			RestDays:    1,
			SleepTarget: "8-9 hours",
			Notes:       "Maximize recovery to support muscle growth. Consider deload weeks every 4-6 weeks.",
		},
	}
}
