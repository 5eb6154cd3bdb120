// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. The partial unique
// index on user_id enforces the one-active-goal rule at the database level,
// closing the race the use-case pre-check leaves open.
type GoalModel struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID        `gorm:"type:uuid;index;not null;uniqueIndex:idx_goals_one_active,where:status = 'active'"`
	GoalType             string           `gorm:"type:varchar(10);not null"`
	Status               string           `gorm:"type:varchar(10);index;not null"`
	InitialMeasurementID uuid.UUID        `gorm:"type:uuid;not null"`
	InitialBodyFat       decimal.Decimal  `gorm:"type:numeric(5,2);not null"`
	InitialWeightKg      decimal.Decimal  `gorm:"type:numeric(5,2);not null"`
	TargetBodyFat        *decimal.Decimal `gorm:"type:numeric(5,2)"`
	CeilingBodyFat       *decimal.Decimal `gorm:"type:numeric(5,2)"`
	TargetCalories       int              `gorm:"not null"`
	EstimatedWeeks       int              `gorm:"not null"`
	StartedAt            time.Time        `gorm:"not null"`
	CompletedAt          *time.Time
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                   m.ID,
		UserID:               m.UserID,
		GoalType:             entity.GoalType(m.GoalType),
		Status:               entity.GoalStatus(m.Status),
		InitialMeasurementID: m.InitialMeasurementID,
		InitialBodyFat:       m.InitialBodyFat,
		InitialWeightKg:      m.InitialWeightKg,
		TargetBodyFat:        m.TargetBodyFat,
		CeilingBodyFat:       m.CeilingBodyFat,
		TargetCalories:       m.TargetCalories,
		EstimatedWeeks:       m.EstimatedWeeks,
		StartedAt:            m.StartedAt,
		CompletedAt:          m.CompletedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(g *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                   g.ID,
		UserID:               g.UserID,
		GoalType:             string(g.GoalType),
		Status:               string(g.Status),
		InitialMeasurementID: g.InitialMeasurementID,
		InitialBodyFat:       g.InitialBodyFat,
		InitialWeightKg:      g.InitialWeightKg,
		TargetBodyFat:        g.TargetBodyFat,
		CeilingBodyFat:       g.CeilingBodyFat,
		TargetCalories:       g.TargetCalories,
		EstimatedWeeks:       g.EstimatedWeeks,
		StartedAt:            g.StartedAt,
		CompletedAt:          g.CompletedAt,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
	}
}
