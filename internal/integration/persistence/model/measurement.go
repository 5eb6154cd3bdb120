// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// MeasurementModel represents the measurements table in the database. Rows
// are append-only: there is no update path through the repository.
type MeasurementModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID        `gorm:"type:uuid;index;not null"`
	WeightKg          decimal.Decimal  `gorm:"type:numeric(5,2);not null"`
	CalculationMethod string           `gorm:"type:varchar(10);not null"`
	WaistCm           *decimal.Decimal `gorm:"type:numeric(5,2)"`
	NeckCm            *decimal.Decimal `gorm:"type:numeric(5,2)"`
	HipCm             *decimal.Decimal `gorm:"type:numeric(5,2)"`
	ChestMm           *decimal.Decimal `gorm:"type:numeric(4,1)"`
	AbdomenMm         *decimal.Decimal `gorm:"type:numeric(4,1)"`
	ThighMm           *decimal.Decimal `gorm:"type:numeric(4,1)"`
	TricepMm          *decimal.Decimal `gorm:"type:numeric(4,1)"`
	SuprailiacMm      *decimal.Decimal `gorm:"type:numeric(4,1)"`
	MidaxillaryMm     *decimal.Decimal `gorm:"type:numeric(4,1)"`
	SubscapularMm     *decimal.Decimal `gorm:"type:numeric(4,1)"`
	BodyFatPercentage decimal.Decimal  `gorm:"type:numeric(5,2);not null"`
	Notes             *string          `gorm:"type:text"`
	MeasuredAt        time.Time        `gorm:"index;not null"`
	CreatedAt         time.Time        `gorm:"not null"`
}

// TableName returns the table name for the MeasurementModel.
func (MeasurementModel) TableName() string {
	return "measurements"
}

// ToEntity converts a MeasurementModel to a domain Measurement entity.
func (m *MeasurementModel) ToEntity() *entity.Measurement {
	return &entity.Measurement{
		ID:                m.ID,
		UserID:            m.UserID,
		WeightKg:          m.WeightKg,
		CalculationMethod: entity.CalculationMethod(m.CalculationMethod),
		Raw: entity.RawInputs{
			WaistCm:       m.WaistCm,
			NeckCm:        m.NeckCm,
			HipCm:         m.HipCm,
			ChestMm:       m.ChestMm,
			AbdomenMm:     m.AbdomenMm,
			ThighMm:       m.ThighMm,
			TricepMm:      m.TricepMm,
			SuprailiacMm:  m.SuprailiacMm,
			MidaxillaryMm: m.MidaxillaryMm,
			SubscapularMm: m.SubscapularMm,
		},
		BodyFatPercentage: m.BodyFatPercentage,
		Notes:             m.Notes,
		MeasuredAt:        m.MeasuredAt,
		CreatedAt:         m.CreatedAt,
	}
}

// MeasurementFromEntity creates a MeasurementModel from a domain Measurement entity.
func MeasurementFromEntity(m *entity.Measurement) *MeasurementModel {
	return &MeasurementModel{
		ID:                m.ID,
		UserID:            m.UserID,
		WeightKg:          m.WeightKg,
		CalculationMethod: string(m.CalculationMethod),
		WaistCm:           m.Raw.WaistCm,
		NeckCm:            m.Raw.NeckCm,
		HipCm:             m.Raw.HipCm,
		ChestMm:           m.Raw.ChestMm,
		AbdomenMm:         m.Raw.AbdomenMm,
		ThighMm:           m.Raw.ThighMm,
		TricepMm:          m.Raw.TricepMm,
		SuprailiacMm:      m.Raw.SuprailiacMm,
		MidaxillaryMm:     m.Raw.MidaxillaryMm,
		SubscapularMm:     m.Raw.SubscapularMm,
		BodyFatPercentage: m.BodyFatPercentage,
		Notes:             m.Notes,
		MeasuredAt:        m.MeasuredAt,
		CreatedAt:         m.CreatedAt,
	}
}
