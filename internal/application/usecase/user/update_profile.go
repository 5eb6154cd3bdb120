// Package user contains profile-related use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

var (
	minHeightCm = decimal.NewFromFloat(100.0)
	maxHeightCm = decimal.NewFromFloat(250.0)
)

// UpdateProfileInput represents the input for a partial profile update. Nil
// fields are left unchanged.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	FullName        *string
	HeightCm        *decimal.Decimal
	ActivityLevel   *entity.ActivityLevel
	PreferredMethod *entity.CalculationMethod
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the partial update. Sex and date of birth are immutable
// because historical measurements were calculated against them.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.FullName != nil {
		if *input.FullName == "" {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidEnumValue,
				"full name cannot be empty",
				nil,
			)
		}
		user.FullName = *input.FullName
	}
	if input.HeightCm != nil {
		if input.HeightCm.LessThan(minHeightCm) || input.HeightCm.GreaterThan(maxHeightCm) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidHeight,
				"height must be between 100 and 250 cm",
				domainerror.ErrInvalidHeight,
			)
		}
		user.HeightCm = *input.HeightCm
	}
	if input.ActivityLevel != nil {
		if !entity.IsValidActivityLevel(*input.ActivityLevel) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidEnumValue,
				"unknown activity level: "+string(*input.ActivityLevel),
				nil,
			)
		}
		user.ActivityLevel = *input.ActivityLevel
	}
	if input.PreferredMethod != nil {
		if !entity.IsValidCalculationMethod(*input.PreferredMethod) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidEnumValue,
				"unknown calculation method: "+string(*input.PreferredMethod),
				nil,
			)
		}
		user.PreferredMethod = *input.PreferredMethod
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
