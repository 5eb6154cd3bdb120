package progress

import (
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// Trend classifications returned by trend analysis.
const (
	TrendImproving        = "improving"
	TrendPlateau          = "plateau"
	TrendWorsening        = "worsening"
	TrendInsufficientData = "insufficient_data"
)

// Weekly body-fat change windows that count as on-track, scaled by weeks
// elapsed and compared against the cumulative change since goal start.
var (
	cuttingMinWeeklyLoss = decimal.NewFromFloat(0.4)
	cuttingMaxWeeklyLoss = decimal.NewFromFloat(1.2)
	bulkingMinWeeklyGain = decimal.NewFromFloat(0.1)
	bulkingMaxWeeklyGain = decimal.NewFromFloat(0.6)
)

// isOnTrack reports whether the cumulative body-fat change since goal start
// falls inside the expected window for the weeks elapsed. Cutting compares
// the magnitude of the loss; bulking compares the signed gain, so a net loss
// during a bulk is off track.
func isOnTrack(goalType entity.GoalType, cumulativeChange decimal.Decimal, weeksElapsed int) bool {
	weeks := decimal.NewFromInt(int64(weeksElapsed))

	if goalType == entity.GoalTypeCutting {
		loss := cumulativeChange.Abs()
		return loss.GreaterThanOrEqual(cuttingMinWeeklyLoss.Mul(weeks)) &&
			loss.LessThanOrEqual(cuttingMaxWeeklyLoss.Mul(weeks))
	}

	return cumulativeChange.GreaterThanOrEqual(bulkingMinWeeklyGain.Mul(weeks)) &&
		cumulativeChange.LessThanOrEqual(bulkingMaxWeeklyGain.Mul(weeks))
}

// classifyTrend classifies the direction of recent progress from the last
// three checkpoints' body-fat deltas.
func classifyTrend(entries []*entity.ProgressEntry, goalType entity.GoalType) string {
	if len(entries) < 3 {
		return TrendInsufficientData
	}

	recent := entries[len(entries)-3:]
	sum := decimal.Zero
	for _, e := range recent {
		sum = sum.Add(e.BodyFatChange)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(recent))))

	if goalType == entity.GoalTypeCutting {
		if avg.LessThan(decimal.NewFromFloat(-0.4)) {
			return TrendImproving
		}
		if avg.GreaterThan(decimal.NewFromFloat(-0.2)) {
			return TrendPlateau
		}
		return TrendImproving
	}

	switch {
	case avg.GreaterThanOrEqual(decimal.NewFromFloat(0.2)) && avg.LessThanOrEqual(decimal.NewFromFloat(0.5)):
		return TrendImproving
	case avg.LessThan(decimal.NewFromFloat(0.1)):
		return TrendPlateau
	case avg.GreaterThan(decimal.NewFromFloat(0.6)):
		return TrendWorsening
	default:
		return TrendImproving
	}
}

// suggestAdjustment produces coaching advice from the trend and on-track
// status.
func suggestAdjustment(goalType entity.GoalType, trend string, onTrack bool, weeklyBFChangeAvg decimal.Decimal) *string {
	var msg string

	if trend == TrendInsufficientData {
		msg = "Keep logging weekly measurements to track progress"
		return &msg
	}

	if goalType == entity.GoalTypeCutting {
		switch {
		case trend == TrendImproving && onTrack:
			msg = "Maintain current plan - excellent progress!"
		case trend == TrendPlateau:
			msg = "Progress has slowed. Consider increasing daily deficit by 100-200 calories or adding 1-2 cardio sessions per week."
		case !onTrack && weeklyBFChangeAvg.GreaterThan(decimal.NewFromFloat(-0.3)):
			msg = "Progress slower than expected. Verify calorie tracking accuracy and consider increasing training volume."
		case weeklyBFChangeAvg.LessThan(decimal.NewFromFloat(-1.0)):
			msg = "Progress faster than expected - you may be losing muscle. Consider reducing deficit by 100-200 calories."
		default:
			msg = "Progress is steady - keep up the good work!"
		}
		return &msg
	}

	switch {
	case trend == TrendImproving && onTrack:
		msg = "Maintain current plan - lean gaining on track!"
	case trend == TrendPlateau:
		msg = "Weight gain has stalled. Consider increasing daily surplus by 100-200 calories."
	case trend == TrendWorsening:
		msg = "Gaining fat too quickly. Consider reducing daily surplus by 100-200 calories to stay lean."
	default:
		msg = "Progress is steady - continue current approach!"
	}
	return &msg
}

// estimateWeeksRemaining projects the weeks to the goal boundary at the
// observed average weekly rate. Returns nil when the rate is zero, and 0
// when the boundary has already been crossed.
func estimateWeeksRemaining(g *entity.Goal, currentBF, weeklyBFChangeAvg decimal.Decimal) *int {
	if weeklyBFChangeAvg.IsZero() {
		return nil
	}
	boundary := g.BoundaryBodyFat()
	if boundary == nil {
		return nil
	}

	var remaining, weeks decimal.Decimal
	if g.GoalType == entity.GoalTypeCutting {
		remaining = currentBF.Sub(*boundary)
		if remaining.LessThanOrEqual(decimal.Zero) {
			zero := 0
			return &zero
		}
		weeks = remaining.Div(weeklyBFChangeAvg.Abs())
	} else {
		remaining = boundary.Sub(currentBF)
		if remaining.LessThanOrEqual(decimal.Zero) {
			zero := 0
			return &zero
		}
		weeks = remaining.Div(weeklyBFChangeAvg)
	}

	n := int(weeks.IntPart())
	if n < 0 {
		n = 0
	}
	return &n
}

// progressPercentage reports how far the latest checkpoint has moved from
// the initial body fat toward the boundary, clamped to [0, 100].
func progressPercentage(g *entity.Goal, entries []*entity.ProgressEntry) decimal.Decimal {
	if len(entries) == 0 {
		return decimal.Zero
	}
	boundary := g.BoundaryBodyFat()
	if boundary == nil {
		return decimal.Zero
	}

	latest := entries[len(entries)-1]
	hundred := decimal.NewFromInt(100)

	var pct decimal.Decimal
	if g.GoalType == entity.GoalTypeCutting {
		span := g.InitialBodyFat.Sub(*boundary)
		if span.IsZero() {
			return decimal.Zero
		}
		pct = g.InitialBodyFat.Sub(latest.BodyFat).Div(span).Mul(hundred)
	} else {
		span := boundary.Sub(g.InitialBodyFat)
		if span.IsZero() {
			return decimal.Zero
		}
		pct = latest.BodyFat.Sub(g.InitialBodyFat).Div(span).Mul(hundred)
	}

	if pct.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
