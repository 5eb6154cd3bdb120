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

// MealWindow describes one peri-workout feeding window.
type MealWindow struct {
	Timing   string `json:"timing"`
	Macros   string `json:"macros"`
	Examples string `json:"examples"`
}

// MealTiming describes when to eat across the day.
type MealTiming struct {
	MealsPerDay string     `json:"meals_per_day"`
	PreWorkout  MealWindow `json:"pre_workout"`
	PostWorkout MealWindow `json:"post_workout"`
	Notes       string     `json:"notes"`
}

// DietPlan is a full daily nutrition prescription for a goal.
type DietPlan struct {
	DailyCalorieTarget int                    `json:"daily_calorie_target"`
	Macros             MacronutrientBreakdown `json:"macros"`
	MealTiming         MealTiming             `json:"meal_timing"`
	Guidelines         string                 `json:"guidelines"`
}

// GetDietPlanInput represents the input for diet plan generation.
type GetDietPlanInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetDietPlanOutput represents the output of diet plan generation.
type GetDietPlanOutput struct {
	GoalID uuid.UUID
	Plan   *DietPlan
}

// GetDietPlanUseCase generates the diet plan for a goal. Macros are based on
// the most recent recorded weight so the prescription tracks the body it
// feeds.
type GetDietPlanUseCase struct {
	goalRepo        adapter.GoalRepository
	measurementRepo adapter.MeasurementRepository
}

// NewGetDietPlanUseCase creates a new GetDietPlanUseCase instance.
func NewGetDietPlanUseCase(
	goalRepo adapter.GoalRepository,
	measurementRepo adapter.MeasurementRepository,
) *GetDietPlanUseCase {
	return &GetDietPlanUseCase{
		goalRepo:        goalRepo,
		measurementRepo: measurementRepo,
	}
}

// Execute generates the plan, enforcing goal ownership.
func (uc *GetDietPlanUseCase) Execute(ctx context.Context, input GetDietPlanInput) (*GetDietPlanOutput, error) {
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

	weightKg := g.InitialWeightKg
	latest, err := uc.measurementRepo.FindByUserID(ctx, g.UserID, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest measurement: %w", err)
	}
	if len(latest) > 0 {
		weightKg = latest[0].WeightKg
	}

	macros := CalculateMacros(g.TargetCalories, g.GoalType, weightKg)

	p := &DietPlan{
		DailyCalorieTarget: g.TargetCalories,
		Macros:             macros,
		MealTiming:         mealTiming(g.GoalType),
		Guidelines:         dietGuidelines(g.GoalType, macros),
	}
	return &GetDietPlanOutput{GoalID: g.ID, Plan: p}, nil
}

func mealTiming(goalType entity.GoalType) MealTiming {
	if goalType == entity.GoalTypeCutting {
		return MealTiming{
			MealsPerDay: "3-4",
			PreWorkout: MealWindow{
				Timing:   "30-45 minutes before",
				Macros:   "30-40g carbs, 20-30g protein, low fat",
				Examples: "Oats with whey protein, rice cakes with banana and protein",
			},
			PostWorkout: MealWindow{
				Timing:   "Within 1-2 hours after",
				Macros:   "40-60g carbs, 30-40g protein",
				Examples: "Chicken with rice, protein shake with fruit",
			},
			Notes: "Space meals 3-4 hours apart. Include vegetables for volume and satiety.",
		}
	}
	return MealTiming{
		MealsPerDay: "4-5",
		PreWorkout: MealWindow{
			Timing:   "45-60 minutes before",
			Macros:   "50-70g carbs, 25-35g protein, low fat",
			Examples: "Rice with chicken, oats with protein and banana",
		},
		PostWorkout: MealWindow{
			Timing:   "Within 1-2 hours after",
			Macros:   "60-90g carbs, 35-45g protein",
			Examples: "Rice and chicken, pasta with lean beef, protein shake with carbs",
		},
		Notes: "Frequent meals make hitting calorie target easier. Include calorie-dense foods.",
	}
}

func dietGuidelines(goalType entity.GoalType, m MacronutrientBreakdown) string {
	targets := fmt.Sprintf(
		"Daily targets: %d kcal, protein %dg (%.1f%%), carbohydrates %dg (%.1f%%), fat %dg (%.1f%%).",
		m.TotalCalories,
		m.ProteinGrams, m.ProteinPercentage,
		m.CarbsGrams, m.CarbsPercentage,
		m.FatGrams, m.FatPercentage,
	)

	if goalType == entity.GoalTypeCutting {
		return targets + " Prioritize lean protein sources at every meal. " +
			"Focus carbs around training sessions and favor complex sources. " +
			"Keep fat at a minimum of 20% of calories to support hormones. " +
			"Aim for 3-4 liters of water per day. " +
			"Use high-volume, low-calorie vegetables for satiety and track intake consistently."
	}
	return targets + " Include both lean and calorie-dense protein sources. " +
		"Higher carbs support training and recovery. " +
		"Add calorie-dense healthy fats such as nuts, avocado and olive oil. " +
		"Eat 3-5 meals per day and monitor weekly weight gain of 0.25-0.5% bodyweight. " +
		"Keep food quality high rather than dirty bulking."
}
