// Package goal contains goal lifecycle use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/application/calculator"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. TargetBodyFat is
// required for cutting goals, CeilingBodyFat for bulking goals.
type CreateGoalInput struct {
	UserID               uuid.UUID
	GoalType             entity.GoalType
	InitialMeasurementID uuid.UUID
	TargetBodyFat        *decimal.Decimal
	CeilingBodyFat       *decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation, including the
// derived energy figures.
type CreateGoalOutput struct {
	Goal *entity.Goal
	BMR  int
	TDEE int
}

// CreateGoalUseCase handles goal creation: safety validation, energy and
// timeline derivation, and the one-active-goal rule.
type CreateGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	measurementRepo adapter.MeasurementRepository
	userRepo        adapter.UserRepository
	energyCache     adapter.EnergyCache
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.GoalRepository,
	measurementRepo adapter.MeasurementRepository,
	userRepo adapter.UserRepository,
	energyCache adapter.EnergyCache,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:        goalRepo,
		measurementRepo: measurementRepo,
		userRepo:        userRepo,
		energyCache:     energyCache,
	}
}

// Execute creates a new ACTIVE goal for the user.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !entity.IsValidGoalType(input.GoalType) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be cutting or bulking",
			nil,
		)
	}

	// Pre-check the one-active-goal rule. The partial unique index on the
	// goals table closes the race between concurrent creations.
	if _, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID); err == nil {
		return nil, activeGoalExists()
	} else if !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to check active goal: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	measurement, err := uc.measurementRepo.FindByID(ctx, input.InitialMeasurementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find initial measurement: %w", err)
	}
	if measurement.UserID != input.UserID {
		return nil, domainerror.NewMeasurementError(
			domainerror.ErrCodeMeasurementOwnership,
			"initial measurement does not belong to this user",
			domainerror.ErrMeasurementOwnership,
		)
	}

	if err := calculator.ValidateGoalSafety(
		input.GoalType,
		measurement.BodyFatPercentage,
		input.TargetBodyFat,
		input.CeilingBodyFat,
		user.Sex,
	); err != nil {
		return nil, err
	}

	age := user.AgeAt(measurement.MeasuredAt)
	bmr, tdee := uc.energyEstimate(ctx, user, measurement.WeightKg, age)

	var targetCalories, estimatedWeeks int
	if input.GoalType == entity.GoalTypeCutting {
		targetCalories = calculator.CuttingCalories(tdee, user.Sex)
		estimatedWeeks = calculator.EstimateCuttingWeeks(measurement.BodyFatPercentage, *input.TargetBodyFat)
	} else {
		targetCalories = calculator.BulkingCalories(tdee)
		estimatedWeeks = calculator.EstimateBulkingWeeks(measurement.BodyFatPercentage, *input.CeilingBodyFat)
	}

	g := entity.NewGoal(
		user.ID,
		input.GoalType,
		measurement,
		input.TargetBodyFat,
		input.CeilingBodyFat,
		targetCalories,
		estimatedWeeks,
	)
	if err := uc.goalRepo.Create(ctx, g); err != nil {
		if errors.Is(err, domainerror.ErrActiveGoalExists) {
			return nil, activeGoalExists()
		}
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: g, BMR: bmr, TDEE: tdee}, nil
}

// energyEstimate returns the BMR/TDEE pair for the profile snapshot, served
// from the cache when possible. Cache failures degrade to recomputation.
func (uc *CreateGoalUseCase) energyEstimate(ctx context.Context, user *entity.User, weightKg decimal.Decimal, age int) (int, int) {
	key := energyCacheKey(user, weightKg, age)
	if cached, ok := uc.energyCache.Get(ctx, key); ok {
		return cached.BMR, cached.TDEE
	}

	bmr := calculator.BMR(weightKg, user.HeightCm, age, user.Sex)
	tdee := calculator.TDEE(bmr, user.ActivityLevel)
	uc.energyCache.Set(ctx, key, &adapter.EnergyEstimate{BMR: bmr, TDEE: tdee})
	return bmr, tdee
}

// energyCacheKey keys estimates by the formula inputs, so profile edits
// naturally miss instead of needing invalidation.
func energyCacheKey(user *entity.User, weightKg decimal.Decimal, age int) string {
	return fmt.Sprintf("energy:%s:%s:%d:%s:%s",
		weightKg.StringFixed(2),
		user.HeightCm.StringFixed(2),
		age,
		user.Sex,
		user.ActivityLevel,
	)
}

func activeGoalExists() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeActiveGoalExists,
		"user already has an active goal, complete or cancel it before creating a new one",
		domainerror.ErrActiveGoalExists,
	)
}
