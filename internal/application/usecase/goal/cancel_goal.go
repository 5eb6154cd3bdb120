// Package goal contains goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// CancelGoalInput represents the input for goal cancellation.
type CancelGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// CancelGoalOutput represents the output of goal cancellation.
type CancelGoalOutput struct {
	Goal *entity.Goal
}

// CancelGoalUseCase handles goal cancellation. Cancelled goals keep their
// progress ledger; cancellation only frees the one-active-goal slot.
type CancelGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCancelGoalUseCase creates a new CancelGoalUseCase instance.
func NewCancelGoalUseCase(goalRepo adapter.GoalRepository) *CancelGoalUseCase {
	return &CancelGoalUseCase{goalRepo: goalRepo}
}

// Execute cancels an ACTIVE goal.
func (uc *CancelGoalUseCase) Execute(ctx context.Context, input CancelGoalInput) (*CancelGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if g.UserID != input.UserID {
		return nil, goalOwnershipError()
	}
	if g.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotActive,
			"only active goals can be cancelled",
			domainerror.ErrGoalNotActive,
		)
	}

	g.Status = entity.GoalStatusCancelled
	g.UpdatedAt = time.Now().UTC()
	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &CancelGoalOutput{Goal: g}, nil
}
