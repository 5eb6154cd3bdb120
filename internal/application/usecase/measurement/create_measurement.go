// Package measurement contains body measurement use cases.
package measurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/application/calculator"
	"github.com/body-recomp/backend/internal/domain/entity"
)

// CreateMeasurementInput represents the input for recording a measurement.
// When Method is empty the user's preferred method is used.
type CreateMeasurementInput struct {
	UserID     uuid.UUID
	WeightKg   decimal.Decimal
	Method     entity.CalculationMethod
	Raw        entity.RawInputs
	Notes      *string
	MeasuredAt *time.Time
}

// CreateMeasurementOutput represents the output of recording a measurement.
type CreateMeasurementOutput struct {
	Measurement *entity.Measurement
}

// CreateMeasurementUseCase handles measurement recording: it validates the
// raw inputs, derives the body-fat percentage and appends the measurement to
// the user's history.
type CreateMeasurementUseCase struct {
	measurementRepo adapter.MeasurementRepository
	userRepo        adapter.UserRepository
}

// NewCreateMeasurementUseCase creates a new CreateMeasurementUseCase instance.
func NewCreateMeasurementUseCase(
	measurementRepo adapter.MeasurementRepository,
	userRepo adapter.UserRepository,
) *CreateMeasurementUseCase {
	return &CreateMeasurementUseCase{
		measurementRepo: measurementRepo,
		userRepo:        userRepo,
	}
}

// Execute records a new measurement.
func (uc *CreateMeasurementUseCase) Execute(ctx context.Context, input CreateMeasurementInput) (*CreateMeasurementOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	method := input.Method
	if method == "" {
		method = user.PreferredMethod
	}

	if err := calculator.ValidateWeight(input.WeightKg); err != nil {
		return nil, err
	}
	if err := calculator.ValidateRawInputs(input.Raw); err != nil {
		return nil, err
	}

	measuredAt := time.Now().UTC()
	if input.MeasuredAt != nil {
		measuredAt = input.MeasuredAt.UTC()
	}

	bodyFat, err := calculator.BodyFat(calculator.BodyFatInput{
		Sex:      user.Sex,
		Age:      user.AgeAt(measuredAt),
		HeightCm: user.HeightCm,
		Method:   method,
		Raw:      input.Raw,
	})
	if err != nil {
		return nil, err
	}

	if err := calculator.ValidateBodyFatRange(bodyFat, user.Sex); err != nil {
		return nil, err
	}

	m := entity.NewMeasurement(
		user.ID,
		input.WeightKg,
		method,
		input.Raw,
		bodyFat,
		input.Notes,
		measuredAt,
	)
	if err := uc.measurementRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create measurement: %w", err)
	}

	return &CreateMeasurementOutput{Measurement: m}, nil
}
