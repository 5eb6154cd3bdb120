// Package progress contains progress ledger and trend analysis use cases.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// minDaysBetweenEntries is the check-in cadence, measured between the
// measurement dates of consecutive checkpoints.
const minDaysBetweenEntries = 7

// LogProgressInput represents the input for appending a progress entry.
type LogProgressInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	MeasurementID uuid.UUID
	Notes         *string
}

// LogProgressOutput represents the output of a progress append. The warnings
// are transient advice derived at append time; they are not persisted.
type LogProgressOutput struct {
	Entry          *entity.ProgressEntry
	CeilingWarning *string
	RateWarning    *string
	GoalCompleted  bool
}

// LogProgressUseCase appends a checkpoint to a goal's progress ledger,
// enforcing the 7-day cadence and completing the goal when its boundary is
// crossed.
type LogProgressUseCase struct {
	goalRepo        adapter.GoalRepository
	measurementRepo adapter.MeasurementRepository
	progressRepo    adapter.ProgressRepository
}

// NewLogProgressUseCase creates a new LogProgressUseCase instance.
func NewLogProgressUseCase(
	goalRepo adapter.GoalRepository,
	measurementRepo adapter.MeasurementRepository,
	progressRepo adapter.ProgressRepository,
) *LogProgressUseCase {
	return &LogProgressUseCase{
		goalRepo:        goalRepo,
		measurementRepo: measurementRepo,
		progressRepo:    progressRepo,
	}
}

// Execute appends a progress entry.
func (uc *LogProgressUseCase) Execute(ctx context.Context, input LogProgressInput) (*LogProgressOutput, error) {
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
	if g.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotActive,
			"progress can only be logged against an active goal",
			domainerror.ErrGoalNotActive,
		)
	}

	measurement, err := uc.measurementRepo.FindByID(ctx, input.MeasurementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find measurement: %w", err)
	}
	if measurement.UserID != g.UserID {
		return nil, domainerror.NewMeasurementError(
			domainerror.ErrCodeMeasurementOwnership,
			"measurement does not belong to the goal's user",
			domainerror.ErrMeasurementOwnership,
		)
	}

	// Pre-check reuse; the unique index on measurement_id closes the race.
	logged, err := uc.progressRepo.ExistsByMeasurementID(ctx, input.MeasurementID)
	if err != nil {
		return nil, fmt.Errorf("failed to check measurement reuse: %w", err)
	}
	if logged {
		return nil, measurementAlreadyLogged()
	}

	count, err := uc.progressRepo.CountByGoalID(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count progress entries: %w", err)
	}
	weekNumber := int(count) + 1

	priorBF, priorWeight, priorMeasuredAt, hasPriorEntry, err := uc.priorCheckpoint(ctx, g)
	if err != nil {
		return nil, err
	}

	days := wholeDaysBetween(priorMeasuredAt, measurement.MeasuredAt)
	if days < 0 {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeMeasurementPredatesGoal,
			"measurement was taken before the previous checkpoint",
			domainerror.ErrMeasurementPredatesGoal,
		)
	}
	if days < minDaysBetweenEntries {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeTooSoon,
			fmt.Sprintf("must wait at least 7 days between progress entries (only %d days since last checkpoint)", days),
			domainerror.ErrTooSoon,
		)
	}

	bodyFatChange := measurement.BodyFatPercentage.Sub(priorBF)
	weightChange := measurement.WeightKg.Sub(priorWeight)
	cumulativeChange := measurement.BodyFatPercentage.Sub(g.InitialBodyFat)
	onTrack := isOnTrack(g.GoalType, cumulativeChange, weekNumber)

	out := &LogProgressOutput{}

	if g.GoalType == entity.GoalTypeBulking && g.CeilingBodyFat != nil {
		warning, complete := checkBulkingCeiling(measurement.BodyFatPercentage, *g.CeilingBodyFat)
		out.CeilingWarning = warning
		out.GoalCompleted = complete

		if hasPriorEntry {
			weeksBetween := days / 7
			if weeksBetween < 1 {
				weeksBetween = 1
			}
			out.RateWarning = checkBulkingRate(priorBF, measurement.BodyFatPercentage, weeksBetween)
		}
	}

	// Cutting goals complete the moment a checkpoint reaches the target.
	if g.GoalType == entity.GoalTypeCutting && g.IsCompletedBy(measurement.BodyFatPercentage) {
		out.GoalCompleted = true
	}

	entry := entity.NewProgressEntry(
		g.ID,
		measurement,
		weekNumber,
		bodyFatChange,
		weightChange,
		onTrack,
		input.Notes,
	)
	if err := uc.progressRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, domainerror.ErrMeasurementAlreadyLogged) {
			return nil, measurementAlreadyLogged()
		}
		return nil, fmt.Errorf("failed to create progress entry: %w", err)
	}
	out.Entry = entry

	if out.GoalCompleted {
		now := time.Now().UTC()
		g.Status = entity.GoalStatusCompleted
		g.CompletedAt = &now
		g.UpdatedAt = now
		if err := uc.goalRepo.Update(ctx, g); err != nil {
			return nil, fmt.Errorf("failed to complete goal: %w", err)
		}
	}

	return out, nil
}

// priorCheckpoint returns the body fat, weight and measurement date of the
// most recent checkpoint: the latest ledger entry, or the goal's initial
// measurement when the ledger is empty.
func (uc *LogProgressUseCase) priorCheckpoint(ctx context.Context, g *entity.Goal) (decimal.Decimal, decimal.Decimal, time.Time, bool, error) {
	last, err := uc.progressRepo.FindLatestByGoalID(ctx, g.ID)
	if err != nil {
		return decimal.Zero, decimal.Zero, time.Time{}, false, fmt.Errorf("failed to find latest entry: %w", err)
	}
	if last == nil {
		initial, err := uc.measurementRepo.FindByID(ctx, g.InitialMeasurementID)
		if err != nil {
			return decimal.Zero, decimal.Zero, time.Time{}, false, fmt.Errorf("failed to find initial measurement: %w", err)
		}
		return initial.BodyFatPercentage, initial.WeightKg, initial.MeasuredAt, false, nil
	}

	lastMeasurement, err := uc.measurementRepo.FindByID(ctx, last.MeasurementID)
	if err != nil {
		return decimal.Zero, decimal.Zero, time.Time{}, false, fmt.Errorf("failed to find last checkpoint measurement: %w", err)
	}
	return last.BodyFat, last.WeightKg, lastMeasurement.MeasuredAt, true, nil
}

// checkBulkingCeiling reports whether the ceiling was reached and produces a
// proximity warning when within one percentage point of it.
func checkBulkingCeiling(currentBF, ceilingBF decimal.Decimal) (*string, bool) {
	diff := ceilingBF.Sub(currentBF)

	if diff.LessThanOrEqual(decimal.Zero) {
		msg := "Ceiling reached - bulking goal complete!"
		return &msg, true
	}
	if diff.LessThan(decimal.NewFromFloat(1.0)) {
		msg := fmt.Sprintf(
			"Approaching ceiling! Only %s%% remaining. Consider transitioning to maintenance or cutting.",
			diff.StringFixed(1),
		)
		return &msg, false
	}
	return nil, false
}

// checkBulkingRate warns when body fat is accruing faster than 0.5% per week.
func checkBulkingRate(previousBF, currentBF decimal.Decimal, weeks int) *string {
	if weeks <= 0 {
		return nil
	}
	rate := currentBF.Sub(previousBF).Div(decimal.NewFromInt(int64(weeks)))
	if rate.GreaterThan(decimal.NewFromFloat(0.5)) {
		msg := fmt.Sprintf(
			"Gaining body fat too quickly (%s%%/week). Ideal bulk rate is 0.1-0.3%%/week. Consider reducing caloric surplus.",
			rate.StringFixed(2),
		)
		return &msg
	}
	return nil
}

// wholeDaysBetween returns the number of whole days from a to b, truncated
// toward zero.
func wholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func measurementAlreadyLogged() error {
	return domainerror.NewProgressError(
		domainerror.ErrCodeMeasurementAlreadyLogged,
		"measurement has already been logged as a progress entry",
		domainerror.ErrMeasurementAlreadyLogged,
	)
}
