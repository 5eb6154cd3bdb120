// Package user contains profile-related use cases.
package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(context.Background(), email)
	return err == nil, nil
}

func seedUser(repo *fakeUserRepo) *entity.User {
	u := entity.NewUser(
		"user@example.com",
		"Test User",
		"hash",
		time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		entity.SexMale,
		decimal.NewFromInt(175),
		entity.ActivityModeratelyActive,
		entity.MethodNavy,
	)
	repo.users[u.ID] = u
	return u
}

func strPtr(s string) *string { return &s }

func TestUpdateProfileUseCase(t *testing.T) {
	t.Run("partial update leaves other fields unchanged", func(t *testing.T) {
		repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
		user := seedUser(repo)
		uc := NewUpdateProfileUseCase(repo)

		height := decimal.NewFromFloat(180.5)
		method := entity.MethodSevenSite
		out, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:          user.ID,
			HeightCm:        &height,
			PreferredMethod: &method,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.User.HeightCm.Equal(height) {
			t.Errorf("expected height 180.5, got %s", out.User.HeightCm)
		}
		if out.User.PreferredMethod != entity.MethodSevenSite {
			t.Errorf("expected 7_site, got %s", out.User.PreferredMethod)
		}
		if out.User.FullName != "Test User" {
			t.Errorf("full name should be unchanged, got %s", out.User.FullName)
		}
		if out.User.ActivityLevel != entity.ActivityModeratelyActive {
			t.Errorf("activity level should be unchanged, got %s", out.User.ActivityLevel)
		}
	})

	t.Run("rejects out of range height", func(t *testing.T) {
		repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
		user := seedUser(repo)
		uc := NewUpdateProfileUseCase(repo)

		for _, v := range []float64{99.9, 250.1} {
			height := decimal.NewFromFloat(v)
			_, err := uc.Execute(context.Background(), UpdateProfileInput{
				UserID:   user.ID,
				HeightCm: &height,
			})
			if !errors.Is(err, domainerror.ErrInvalidHeight) {
				t.Errorf("height %v: expected ErrInvalidHeight, got %v", v, err)
			}
		}
	})

	t.Run("rejects empty name and unknown enums", func(t *testing.T) {
		repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
		user := seedUser(repo)
		uc := NewUpdateProfileUseCase(repo)

		if _, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:   user.ID,
			FullName: strPtr(""),
		}); err == nil {
			t.Error("expected empty full name to be rejected")
		}

		badLevel := entity.ActivityLevel("athlete")
		if _, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:        user.ID,
			ActivityLevel: &badLevel,
		}); err == nil {
			t.Error("expected unknown activity level to be rejected")
		}

		badMethod := entity.CalculationMethod("dexa")
		if _, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:          user.ID,
			PreferredMethod: &badMethod,
		}); err == nil {
			t.Error("expected unknown method to be rejected")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
		uc := NewUpdateProfileUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateProfileInput{UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestGetProfileUseCase(t *testing.T) {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	user := seedUser(repo)
	uc := NewGetProfileUseCase(repo)

	out, err := uc.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "user@example.com" {
		t.Errorf("unexpected email %s", out.User.Email)
	}

	_, err = uc.Execute(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
