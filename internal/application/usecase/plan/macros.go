// Package plan contains training and diet plan generation use cases.
package plan

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// Protein and fat allocations per goal type. Cutting runs high protein to
// preserve muscle in a deficit; bulking trades some protein for carbs.
const (
	cuttingProteinPerKg = 2.4
	cuttingFatShare     = 0.22

	bulkingProteinPerKg = 2.0
	bulkingFatShare     = 0.27
)

// MacronutrientBreakdown describes a daily macro split. Percentages are
// recomputed from the rounded gram figures, so they reflect what the user
// will actually eat.
type MacronutrientBreakdown struct {
	ProteinGrams      int     `json:"protein_grams"`
	ProteinCalories   int     `json:"protein_calories"`
	ProteinPercentage float64 `json:"protein_percentage"`
	CarbsGrams        int     `json:"carbs_grams"`
	CarbsCalories     int     `json:"carbs_calories"`
	CarbsPercentage   float64 `json:"carbs_percentage"`
	FatGrams          int     `json:"fat_grams"`
	FatCalories       int     `json:"fat_calories"`
	FatPercentage     float64 `json:"fat_percentage"`
	TotalCalories     int     `json:"total_calories"`
}

// CalculateMacros splits a calorie target into protein, fat and carbs.
// Protein is set per kilogram of body weight, fat as a share of calories,
// and carbs absorb the remainder.
func CalculateMacros(calories int, goalType entity.GoalType, weightKg decimal.Decimal) MacronutrientBreakdown {
	proteinPerKg := bulkingProteinPerKg
	fatShare := bulkingFatShare
	if goalType == entity.GoalTypeCutting {
		proteinPerKg = cuttingProteinPerKg
		fatShare = cuttingFatShare
	}

	proteinGrams := int(weightKg.InexactFloat64() * proteinPerKg)
	proteinCalories := proteinGrams * 4

	fatCalories := int(float64(calories) * fatShare)
	fatGrams := fatCalories / 9

	carbsCalories := calories - proteinCalories - fatCalories
	carbsGrams := carbsCalories / 4

	total := proteinCalories + fatGrams*9 + carbsGrams*4

	return MacronutrientBreakdown{
		ProteinGrams:      proteinGrams,
		ProteinCalories:   proteinCalories,
		ProteinPercentage: percentOf(proteinCalories, total),
		CarbsGrams:        carbsGrams,
		CarbsCalories:     carbsGrams * 4,
		CarbsPercentage:   percentOf(carbsGrams*4, total),
		FatGrams:          fatGrams,
		FatCalories:       fatGrams * 9,
		FatPercentage:     percentOf(fatGrams*9, total),
		TotalCalories:     total,
	}
}

// percentOf returns part/total as a percentage rounded to one decimal place.
func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
