// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// ProgressRepository defines the interface for the append-only progress
// ledger. Entries are never updated or deleted.
type ProgressRepository interface {
	// Create appends a new progress entry. Implementations return
	// ErrMeasurementAlreadyLogged when the measurement already backs an
	// entry.
	Create(ctx context.Context, entry *entity.ProgressEntry) error

	// FindByGoalID retrieves all entries for a goal ordered by week number.
	FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.ProgressEntry, error)

	// FindLatestByGoalID retrieves the entry with the most recent logged_at
	// for a goal, or nil when the ledger is empty.
	FindLatestByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.ProgressEntry, error)

	// CountByGoalID returns the number of entries in a goal's ledger.
	CountByGoalID(ctx context.Context, goalID uuid.UUID) (int64, error)

	// ExistsByMeasurementID checks whether the measurement already backs an
	// entry.
	ExistsByMeasurementID(ctx context.Context, measurementID uuid.UUID) (bool, error)
}
