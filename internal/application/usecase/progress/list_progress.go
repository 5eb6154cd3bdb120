package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// ListProgressInput represents the input for listing a goal's ledger.
type ListProgressInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// ListProgressOutput represents a goal's full progress ledger ordered by
// week number.
type ListProgressOutput struct {
	Entries []*entity.ProgressEntry
}

// ListProgressUseCase handles progress ledger retrieval.
type ListProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewListProgressUseCase creates a new ListProgressUseCase instance.
func NewListProgressUseCase(
	goalRepo adapter.GoalRepository,
	progressRepo adapter.ProgressRepository,
) *ListProgressUseCase {
	return &ListProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute lists a goal's progress entries, enforcing ownership.
func (uc *ListProgressUseCase) Execute(ctx context.Context, input ListProgressInput) (*ListProgressOutput, error) {
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
		return nil, fmt.Errorf("failed to list progress entries: %w", err)
	}
	return &ListProgressOutput{Entries: entries}, nil
}
