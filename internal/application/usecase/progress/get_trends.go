package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// GetTrendsInput represents the input for trend analysis.
type GetTrendsInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetTrendsOutput represents the trend analysis for a goal's ledger. With
// fewer than two entries the analysis is zeroed, the trend is
// insufficient_data, and EstimatedWeeksRemaining falls back to the goal's
// creation-time estimate.
type GetTrendsOutput struct {
	GoalID                  uuid.UUID
	ProgressPercentage      decimal.Decimal
	WeeksElapsed            int
	IsOnTrack               bool
	WeeklyBFChangeAvg       decimal.Decimal
	WeeklyWeightChangeAvg   decimal.Decimal
	Trend                   string
	AdjustmentSuggestion    *string
	EstimatedWeeksRemaining *int
}

// GetTrendsUseCase analyses a goal's progress ledger. The analysis is a pure
// function of the ledger, so repeated calls on an unchanged ledger return
// identical output.
type GetTrendsUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(
	goalRepo adapter.GoalRepository,
	progressRepo adapter.ProgressRepository,
) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute computes the trend analysis.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
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

	entries, err := uc.progressRepo.FindByGoalID(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress entries: %w", err)
	}

	if len(entries) < 2 {
		suggestion := suggestAdjustment(g.GoalType, TrendInsufficientData, false, decimal.Zero)
		estimate := g.EstimatedWeeks
		return &GetTrendsOutput{
			GoalID:                  g.ID,
			ProgressPercentage:      decimal.Zero,
			WeeksElapsed:            len(entries),
			IsOnTrack:               false,
			WeeklyBFChangeAvg:       decimal.Zero,
			WeeklyWeightChangeAvg:   decimal.Zero,
			Trend:                   TrendInsufficientData,
			AdjustmentSuggestion:    suggestion,
			EstimatedWeeksRemaining: &estimate,
		}, nil
	}

	weeksElapsed := len(entries)
	weeks := decimal.NewFromInt(int64(weeksElapsed))

	totalBFChange := decimal.Zero
	totalWeightChange := decimal.Zero
	onTrackCount := 0
	for _, e := range entries {
		totalBFChange = totalBFChange.Add(e.BodyFatChange)
		totalWeightChange = totalWeightChange.Add(e.WeightChangeKg)
		if e.IsOnTrack {
			onTrackCount++
		}
	}
	weeklyBFChangeAvg := totalBFChange.Div(weeks)
	weeklyWeightChangeAvg := totalWeightChange.Div(weeks)

	// On track overall when at least 60% of checkpoints were on track.
	isOnTrack := decimal.NewFromInt(int64(onTrackCount)).
		Div(weeks).
		GreaterThanOrEqual(decimal.NewFromFloat(0.6))

	trend := classifyTrend(entries, g.GoalType)
	suggestion := suggestAdjustment(g.GoalType, trend, isOnTrack, weeklyBFChangeAvg)
	currentBF := entries[len(entries)-1].BodyFat
	estimated := estimateWeeksRemaining(g, currentBF, weeklyBFChangeAvg)

	return &GetTrendsOutput{
		GoalID:                  g.ID,
		ProgressPercentage:      progressPercentage(g, entries),
		WeeksElapsed:            weeksElapsed,
		IsOnTrack:               isOnTrack,
		WeeklyBFChangeAvg:       weeklyBFChangeAvg,
		WeeklyWeightChangeAvg:   weeklyWeightChangeAvg,
		Trend:                   trend,
		AdjustmentSuggestion:    suggestion,
		EstimatedWeeksRemaining: estimated,
	}, nil
}
