// Package measurement contains body measurement use cases.
package measurement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// GetMeasurementInput represents the input for retrieving a measurement.
type GetMeasurementInput struct {
	UserID        uuid.UUID
	MeasurementID uuid.UUID
}

// GetMeasurementOutput represents the output of measurement retrieval.
type GetMeasurementOutput struct {
	Measurement *entity.Measurement
}

// GetMeasurementUseCase handles single measurement retrieval.
type GetMeasurementUseCase struct {
	measurementRepo adapter.MeasurementRepository
}

// NewGetMeasurementUseCase creates a new GetMeasurementUseCase instance.
func NewGetMeasurementUseCase(measurementRepo adapter.MeasurementRepository) *GetMeasurementUseCase {
	return &GetMeasurementUseCase{measurementRepo: measurementRepo}
}

// Execute retrieves a measurement, enforcing ownership.
func (uc *GetMeasurementUseCase) Execute(ctx context.Context, input GetMeasurementInput) (*GetMeasurementOutput, error) {
	m, err := uc.measurementRepo.FindByID(ctx, input.MeasurementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find measurement: %w", err)
	}
	if m.UserID != input.UserID {
		return nil, domainerror.NewMeasurementError(
			domainerror.ErrCodeMeasurementOwnership,
			"measurement belongs to another user",
			domainerror.ErrMeasurementOwnership,
		)
	}
	return &GetMeasurementOutput{Measurement: m}, nil
}
