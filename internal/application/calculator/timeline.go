package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Evidence-based monthly body-fat change rates, converted to weekly rates
// with 4.33 weeks per month.
const (
	cuttingRatePerMonth = 0.75
	bulkingRatePerMonth = 0.2
	weeksPerMonth       = 4.33
)

// EstimateCuttingWeeks estimates the weeks needed to cut from the current
// body fat to the target, rounded to the nearest week.
func EstimateCuttingWeeks(currentBF, targetBF decimal.Decimal) int {
	diff := currentBF.Sub(targetBF).InexactFloat64()
	return int(math.Round(diff / (cuttingRatePerMonth / weeksPerMonth)))
}

// EstimateBulkingWeeks estimates the weeks needed to bulk from the current
// body fat to the ceiling, rounded to the nearest week.
func EstimateBulkingWeeks(currentBF, ceilingBF decimal.Decimal) int {
	diff := ceilingBF.Sub(currentBF).InexactFloat64()
	return int(math.Round(diff / (bulkingRatePerMonth / weeksPerMonth)))
}
