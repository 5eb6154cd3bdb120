package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// Caloric adjustments and safe daily minimums.
const (
	CuttingDeficit = 400
	BulkingSurplus = 250

	MinCaloriesMale   = 1500
	MinCaloriesFemale = 1200
)

// activityMultipliers maps each activity tier to its TDEE multiplier.
var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:        1.2,
	entity.ActivityLightlyActive:    1.375,
	entity.ActivityModeratelyActive: 1.55,
	entity.ActivityVeryActive:       1.725,
	entity.ActivityExtremelyActive:  1.9,
}

// BMR computes the Basal Metabolic Rate with the Mifflin-St Jeor equation,
// rounded to the nearest calorie.
//
// Men:   10 × weight(kg) + 6.25 × height(cm) − 5 × age + 5
// Women: 10 × weight(kg) + 6.25 × height(cm) − 5 × age − 161
func BMR(weightKg, heightCm decimal.Decimal, age int, sex entity.Sex) int {
	bmr := 10*weightKg.InexactFloat64() +
		6.25*heightCm.InexactFloat64() -
		5*float64(age)
	if sex == entity.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE computes the Total Daily Energy Expenditure by applying the activity
// multiplier to the BMR, rounded to the nearest calorie.
func TDEE(bmr int, level entity.ActivityLevel) int {
	return int(math.Round(float64(bmr) * activityMultipliers[level]))
}

// CuttingCalories applies the cutting deficit to the TDEE, never going below
// the sex-specific safe daily minimum.
func CuttingCalories(tdee int, sex entity.Sex) int {
	target := tdee - CuttingDeficit
	minimum := MinCaloriesFemale
	if sex == entity.SexMale {
		minimum = MinCaloriesMale
	}
	if target < minimum {
		return minimum
	}
	return target
}

// BulkingCalories applies the conservative bulking surplus to the TDEE.
func BulkingCalories(tdee int) int {
	return tdee + BulkingSurplus
}
