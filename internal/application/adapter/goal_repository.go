// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create stores a new goal. Implementations return ErrActiveGoalExists
	// when the user already holds an ACTIVE goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindActiveByUserID retrieves the user's ACTIVE goal, or ErrGoalNotFound
	// when none exists.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a user, most recent first,
	// optionally filtered by status.
	FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error
}
