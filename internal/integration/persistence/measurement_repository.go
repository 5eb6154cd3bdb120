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

// measurementRepository implements the adapter.MeasurementRepository interface.
type measurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository creates a new measurement repository instance.
func NewMeasurementRepository(db *gorm.DB) adapter.MeasurementRepository {
	return &measurementRepository{
		db: db,
	}
}

// Create appends a new measurement to the user's history.
func (r *measurementRepository) Create(ctx context.Context, m *entity.Measurement) error {
	measurementModel := model.MeasurementFromEntity(m)
	result := r.db.WithContext(ctx).Create(measurementModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a measurement by its ID.
func (r *measurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Measurement, error) {
	var measurementModel model.MeasurementModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&measurementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMeasurementNotFound
		}
		return nil, result.Error
	}
	return measurementModel.ToEntity(), nil
}

// FindByUserID retrieves a page of a user's measurements, most recent first.
func (r *measurementRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Measurement, error) {
	var models []model.MeasurementModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("measured_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	measurements := make([]*entity.Measurement, len(models))
	for i := range models {
		measurements[i] = models[i].ToEntity()
	}
	return measurements, nil
}

// CountByUserID counts a user's measurements.
func (r *measurementRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.MeasurementModel{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
