// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// MeasurementRepository defines the interface for measurement persistence
// operations. Measurements are append-only; there is no update or delete.
type MeasurementRepository interface {
	// Create stores a new measurement.
	Create(ctx context.Context, measurement *entity.Measurement) error

	// FindByID retrieves a measurement by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Measurement, error)

	// FindByUserID retrieves all measurements for a user, most recent first.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Measurement, error)

	// CountByUserID returns the total number of measurements for a user.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
