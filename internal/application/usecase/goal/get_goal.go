// Package goal contains goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// GetGoalInput represents the input for goal retrieval.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of goal retrieval.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles single goal retrieval.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute retrieves a goal, enforcing ownership.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if g.UserID != input.UserID {
		return nil, goalOwnershipError()
	}
	return &GetGoalOutput{Goal: g}, nil
}

func goalOwnershipError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalOwnership,
		"goal belongs to another user",
		domainerror.ErrGoalOwnership,
	)
}
