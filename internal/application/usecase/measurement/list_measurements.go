// Package measurement contains body measurement use cases.
package measurement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListMeasurementsInput represents the input for listing measurements.
type ListMeasurementsInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// ListMeasurementsOutput represents a page of measurements with the total
// count for pagination.
type ListMeasurementsOutput struct {
	Measurements []*entity.Measurement
	Total        int64
}

// ListMeasurementsUseCase handles measurement history retrieval.
type ListMeasurementsUseCase struct {
	measurementRepo adapter.MeasurementRepository
}

// NewListMeasurementsUseCase creates a new ListMeasurementsUseCase instance.
func NewListMeasurementsUseCase(measurementRepo adapter.MeasurementRepository) *ListMeasurementsUseCase {
	return &ListMeasurementsUseCase{measurementRepo: measurementRepo}
}

// Execute lists the user's measurements, most recent first.
func (uc *ListMeasurementsUseCase) Execute(ctx context.Context, input ListMeasurementsInput) (*ListMeasurementsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	measurements, err := uc.measurementRepo.FindByUserID(ctx, input.UserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	total, err := uc.measurementRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count measurements: %w", err)
	}

	return &ListMeasurementsOutput{
		Measurements: measurements,
		Total:        total,
	}, nil
}
