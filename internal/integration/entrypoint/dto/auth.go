// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email           string          `json:"email" binding:"required,email"`
	FullName        string          `json:"full_name" binding:"required,min=1,max=100"`
	Password        string          `json:"password" binding:"required,min=8"`
	DateOfBirth     string          `json:"date_of_birth" binding:"required"`
	Sex             string          `json:"sex" binding:"required"`
	HeightCm        decimal.Decimal `json:"height_cm" binding:"required"`
	ActivityLevel   string          `json:"activity_level" binding:"required"`
	PreferredMethod string          `json:"preferred_method" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	FullName        string          `json:"full_name"`
	DateOfBirth     string          `json:"date_of_birth"`
	Sex             string          `json:"sex"`
	HeightCm        decimal.Decimal `json:"height_cm"`
	ActivityLevel   string          `json:"activity_level"`
	PreferredMethod string          `json:"preferred_method"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		Email:           user.Email,
		FullName:        user.FullName,
		DateOfBirth:     user.DateOfBirth.Format("2006-01-02"),
		Sex:             string(user.Sex),
		HeightCm:        user.HeightCm,
		ActivityLevel:   string(user.ActivityLevel),
		PreferredMethod: string(user.PreferredMethod),
		CreatedAt:       user.CreatedAt,
	}
}
