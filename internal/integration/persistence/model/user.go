// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// UserModel represents the user table in the database.
type UserModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName        string          `gorm:"type:varchar(100);not null"`
	PasswordHash    string          `gorm:"type:varchar(255);not null"`
	DateOfBirth     time.Time       `gorm:"type:date;not null"`
	Sex             string          `gorm:"type:varchar(10);not null"`
	HeightCm        decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	ActivityLevel   string          `gorm:"type:varchar(20);not null"`
	PreferredMethod string          `gorm:"type:varchar(10);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		FullName:        m.FullName,
		PasswordHash:    m.PasswordHash,
		DateOfBirth:     m.DateOfBirth,
		Sex:             entity.Sex(m.Sex),
		HeightCm:        m.HeightCm,
		ActivityLevel:   entity.ActivityLevel(m.ActivityLevel),
		PreferredMethod: entity.CalculationMethod(m.PreferredMethod),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		PasswordHash:    user.PasswordHash,
		DateOfBirth:     user.DateOfBirth,
		Sex:             string(user.Sex),
		HeightCm:        user.HeightCm,
		ActivityLevel:   string(user.ActivityLevel),
		PreferredMethod: string(user.PreferredMethod),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
