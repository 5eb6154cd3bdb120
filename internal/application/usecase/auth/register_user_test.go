package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

type fakeTokenService struct {
	issued      int
	invalidated map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string, _ bool) (*adapter.TokenPair, error) {
	s.issued++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%s-%d", userID, s.issued),
		RefreshToken: fmt.Sprintf("refresh-%s-%d", userID, s.issued),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.claimsFor(token, "access-")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.claimsFor(token, "refresh-")
}

func (s *fakeTokenService) claimsFor(token, prefix string) (*adapter.TokenClaims, error) {
	if len(token) < len(prefix)+36 || token[:len(prefix)] != prefix {
		return nil, errors.New("malformed token")
	}
	userID, err := uuid.Parse(token[len(prefix) : len(prefix)+36])
	if err != nil {
		return nil, err
	}
	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     "test@example.com",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func validRegisterInput() RegisterUserInput {
	return RegisterUserInput{
		Email:           "lifter@example.com",
		FullName:        "Alex Costa",
		Password:        "SecurePass123!",
		DateOfBirth:     time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Sex:             entity.SexMale,
		HeightCm:        decimal.NewFromInt(175),
		ActivityLevel:   entity.ActivityModeratelyActive,
		PreferredMethod: entity.MethodNavy,
	}
}

func TestRegisterUserUseCase(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(userRepo, fakePasswordService{}, newFakeTokenService())

	out, err := uc.Execute(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("expected a token pair")
	}
	if out.User.PasswordHash == "SecurePass123!" {
		t.Error("password must not be stored in plain text")
	}
	if _, err := userRepo.FindByEmail(context.Background(), "lifter@example.com"); err != nil {
		t.Errorf("expected user to be persisted: %v", err)
	}
}

func TestRegisterUserUseCase_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(userRepo, fakePasswordService{}, newFakeTokenService())

	if _, err := uc.Execute(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := uc.Execute(context.Background(), validRegisterInput())
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterUserUseCase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterUserInput)
		wantErr error
	}{
		{
			name:    "malformed email",
			mutate:  func(in *RegisterUserInput) { in.Email = "not-an-email" },
			wantErr: domainerror.ErrInvalidEmail,
		},
		{
			name:    "weak password",
			mutate:  func(in *RegisterUserInput) { in.Password = "short" },
			wantErr: domainerror.ErrWeakPassword,
		},
		{
			name:    "empty full name",
			mutate:  func(in *RegisterUserInput) { in.FullName = "" },
			wantErr: domainerror.ErrInvalidProfile,
		},
		{
			name:    "unknown sex",
			mutate:  func(in *RegisterUserInput) { in.Sex = "other" },
			wantErr: domainerror.ErrInvalidProfile,
		},
		{
			name:    "unknown activity level",
			mutate:  func(in *RegisterUserInput) { in.ActivityLevel = "couch_potato" },
			wantErr: domainerror.ErrInvalidProfile,
		},
		{
			name:    "unknown calculation method",
			mutate:  func(in *RegisterUserInput) { in.PreferredMethod = "bioimpedance" },
			wantErr: domainerror.ErrInvalidProfile,
		},
		{
			name:    "height below range",
			mutate:  func(in *RegisterUserInput) { in.HeightCm = decimal.NewFromFloat(99.9) },
			wantErr: domainerror.ErrInvalidProfile,
		},
		{
			name:    "height above range",
			mutate:  func(in *RegisterUserInput) { in.HeightCm = decimal.NewFromFloat(250.1) },
			wantErr: domainerror.ErrInvalidProfile,
		},
		{
			name: "future date of birth",
			mutate: func(in *RegisterUserInput) {
				in.DateOfBirth = time.Now().UTC().AddDate(1, 0, 0)
			},
			wantErr: domainerror.ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

			input := validRegisterInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
