// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
	"github.com/body-recomp/backend/internal/integration/persistence/model"
)

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Create appends a progress entry. A duplicate-key violation on the
// measurement_id unique index means the measurement already backs an entry.
func (r *progressRepository) Create(ctx context.Context, e *entity.ProgressEntry) error {
	entryModel := model.ProgressEntryFromEntity(e)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrMeasurementAlreadyLogged
		}
		return result.Error
	}
	return nil
}

// FindByGoalID retrieves a goal's full ledger in week order.
func (r *progressRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.ProgressEntry, error) {
	var models []model.ProgressEntryModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("week_number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.ProgressEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries, nil
}

// FindLatestByGoalID retrieves the most recently logged entry, or nil when
// the ledger is empty.
func (r *progressRepository) FindLatestByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.ProgressEntry, error) {
	var entryModel model.ProgressEntryModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("logged_at DESC").
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// CountByGoalID counts a goal's progress entries.
func (r *progressRepository) CountByGoalID(ctx context.Context, goalID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProgressEntryModel{}).Where("goal_id = ?", goalID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ExistsByMeasurementID checks whether a measurement already backs an entry.
func (r *progressRepository) ExistsByMeasurementID(ctx context.Context, measurementID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProgressEntryModel{}).Where("measurement_id = ?", measurementID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
