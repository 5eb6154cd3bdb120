// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// ProgressEntryModel represents the progress_entries table in the database.
// The unique index on measurement_id makes measurement reuse impossible even
// across concurrent appends.
type ProgressEntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GoalID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	MeasurementID  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	WeekNumber     int             `gorm:"not null"`
	BodyFat        decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	WeightKg       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	BodyFatChange  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	WeightChangeKg decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	IsOnTrack      bool            `gorm:"not null"`
	Notes          *string         `gorm:"type:text"`
	LoggedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProgressEntryModel.
func (ProgressEntryModel) TableName() string {
	return "progress_entries"
}

// ToEntity converts a ProgressEntryModel to a domain ProgressEntry entity.
func (m *ProgressEntryModel) ToEntity() *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:             m.ID,
		GoalID:         m.GoalID,
		MeasurementID:  m.MeasurementID,
		WeekNumber:     m.WeekNumber,
		BodyFat:        m.BodyFat,
		WeightKg:       m.WeightKg,
		BodyFatChange:  m.BodyFatChange,
		WeightChangeKg: m.WeightChangeKg,
		IsOnTrack:      m.IsOnTrack,
		Notes:          m.Notes,
		LoggedAt:       m.LoggedAt,
	}
}

// ProgressEntryFromEntity creates a ProgressEntryModel from a domain ProgressEntry entity.
func ProgressEntryFromEntity(e *entity.ProgressEntry) *ProgressEntryModel {
	return &ProgressEntryModel{
		ID:             e.ID,
		GoalID:         e.GoalID,
		MeasurementID:  e.MeasurementID,
		WeekNumber:     e.WeekNumber,
		BodyFat:        e.BodyFat,
		WeightKg:       e.WeightKg,
		BodyFatChange:  e.BodyFatChange,
		WeightChangeKg: e.WeightChangeKg,
		IsOnTrack:      e.IsOnTrack,
		Notes:          e.Notes,
		LoggedAt:       e.LoggedAt,
	}
}
