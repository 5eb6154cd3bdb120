// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// Plausible profile bounds checked at registration.
var (
	minHeightCm = decimal.NewFromFloat(100.0)
	maxHeightCm = decimal.NewFromFloat(250.0)
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email           string
	FullName        string
	Password        string
	DateOfBirth     time.Time
	Sex             entity.Sex
	HeightCm        decimal.Decimal
	ActivityLevel   entity.ActivityLevel
	PreferredMethod entity.CalculationMethod
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Validate profile attributes used by the calculation formulas
	if err := validateProfile(input); err != nil {
		return nil, err
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user entity
	user := entity.NewUser(
		input.Email,
		input.FullName,
		passwordHash,
		input.DateOfBirth,
		input.Sex,
		input.HeightCm,
		input.ActivityLevel,
		input.PreferredMethod,
	)

	// Save user to database
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// validateProfile checks the registration profile fields the body-fat and
// energy formulas depend on.
func validateProfile(input RegisterUserInput) error {
	if input.FullName == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"full name is required",
			domainerror.ErrInvalidProfile,
		)
	}
	if !entity.IsValidSex(input.Sex) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidProfile,
			"sex must be male or female",
			domainerror.ErrInvalidProfile,
		)
	}
	if !entity.IsValidActivityLevel(input.ActivityLevel) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidProfile,
			"unknown activity level: "+string(input.ActivityLevel),
			domainerror.ErrInvalidProfile,
		)
	}
	if !entity.IsValidCalculationMethod(input.PreferredMethod) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidProfile,
			"unknown calculation method: "+string(input.PreferredMethod),
			domainerror.ErrInvalidProfile,
		)
	}
	if input.HeightCm.LessThan(minHeightCm) || input.HeightCm.GreaterThan(maxHeightCm) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidProfile,
			"height must be between 100 and 250 cm",
			domainerror.ErrInvalidProfile,
		)
	}
	if !input.DateOfBirth.Before(time.Now().UTC()) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidProfile,
			"date of birth must be in the past",
			domainerror.ErrInvalidProfile,
		)
	}
	return nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
