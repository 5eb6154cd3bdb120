// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sex represents the user's sex, used by the body-fat and energy formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// CalculationMethod represents a body-fat calculation method.
type CalculationMethod string

const (
	MethodNavy      CalculationMethod = "navy"
	MethodThreeSite CalculationMethod = "3_site"
	MethodSevenSite CalculationMethod = "7_site"
)

// ActivityLevel represents the user's stated activity tier for TDEE calculations.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// User represents a registered user in the Body Recomp system.
type User struct {
	ID              uuid.UUID
	Email           string
	FullName        string
	PasswordHash    string
	DateOfBirth     time.Time
	Sex             Sex
	HeightCm        decimal.Decimal
	ActivityLevel   ActivityLevel
	PreferredMethod CalculationMethod
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User entity.
func NewUser(
	email, fullName, passwordHash string,
	dateOfBirth time.Time,
	sex Sex,
	heightCm decimal.Decimal,
	activityLevel ActivityLevel,
	preferredMethod CalculationMethod,
) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		FullName:        fullName,
		PasswordHash:    passwordHash,
		DateOfBirth:     dateOfBirth,
		Sex:             sex,
		HeightCm:        heightCm,
		ActivityLevel:   activityLevel,
		PreferredMethod: preferredMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AgeAt returns the user's age in whole years at the given time, by
// calendar-date comparison rather than elapsed days divided by 365.
func (u *User) AgeAt(at time.Time) int {
	age := at.Year() - u.DateOfBirth.Year()
	if at.Month() < u.DateOfBirth.Month() ||
		(at.Month() == u.DateOfBirth.Month() && at.Day() < u.DateOfBirth.Day()) {
		age--
	}
	return age
}

// IsValidSex reports whether the given value is a known sex.
func IsValidSex(s Sex) bool {
	return s == SexMale || s == SexFemale
}

// IsValidCalculationMethod reports whether the given value is a known method.
func IsValidCalculationMethod(m CalculationMethod) bool {
	return m == MethodNavy || m == MethodThreeSite || m == MethodSevenSite
}

// IsValidActivityLevel reports whether the given value is a known activity tier.
func IsValidActivityLevel(a ActivityLevel) bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return true
	}
	return false
}
