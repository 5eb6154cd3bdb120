// Package goal contains goal lifecycle use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/application/adapter"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
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

type fakeMeasurementRepo struct {
	measurements map[uuid.UUID]*entity.Measurement
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{measurements: make(map[uuid.UUID]*entity.Measurement)}
}

func (r *fakeMeasurementRepo) Create(_ context.Context, m *entity.Measurement) error {
	r.measurements[m.ID] = m
	return nil
}

func (r *fakeMeasurementRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Measurement, error) {
	m, ok := r.measurements[id]
	if !ok {
		return nil, domainerror.ErrMeasurementNotFound
	}
	return m, nil
}

func (r *fakeMeasurementRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Measurement, error) {
	var out []*entity.Measurement
	for _, m := range r.measurements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeasurementRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	ms, _ := r.FindByUserID(context.Background(), userID, 0, 0)
	return int64(len(ms)), nil
}

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	for _, existing := range r.goals {
		if existing.UserID == g.UserID && existing.Status == entity.GoalStatusActive {
			return domainerror.ErrActiveGoalExists
		}
	}
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.Status == entity.GoalStatusActive {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID != userID {
			continue
		}
		if status != nil && g.Status != *status {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

type fakeEnergyCache struct {
	entries map[string]*adapter.EnergyEstimate
	hits    int
}

func newFakeEnergyCache() *fakeEnergyCache {
	return &fakeEnergyCache{entries: make(map[string]*adapter.EnergyEstimate)}
}

func (c *fakeEnergyCache) Get(_ context.Context, key string) (*adapter.EnergyEstimate, bool) {
	e, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return e, ok
}

func (c *fakeEnergyCache) Set(_ context.Context, key string, e *adapter.EnergyEstimate) {
	c.entries[key] = e
}

func (c *fakeEnergyCache) Invalidate(_ context.Context, key string) {
	delete(c.entries, key)
}

func seedUserAndMeasurement(t *testing.T, userRepo *fakeUserRepo, measurementRepo *fakeMeasurementRepo, bodyFat float64) (*entity.User, *entity.Measurement) {
	t.Helper()

	measuredAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	user := entity.NewUser(
		"lifter@example.com",
		"Test Lifter",
		"hash",
		time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		entity.SexMale,
		decimal.NewFromFloat(175),
		entity.ActivityModeratelyActive,
		entity.MethodNavy,
	)
	userRepo.users[user.ID] = user

	m := entity.NewMeasurement(
		user.ID,
		decimal.NewFromFloat(80),
		entity.MethodNavy,
		entity.RawInputs{},
		decimal.NewFromFloat(bodyFat),
		nil,
		measuredAt,
	)
	measurementRepo.measurements[m.ID] = m
	return user, m
}

func TestCreateGoalUseCase_Cutting(t *testing.T) {
	userRepo := newFakeUserRepo()
	measurementRepo := newFakeMeasurementRepo()
	goalRepo := newFakeGoalRepo()
	cache := newFakeEnergyCache()
	uc := NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, cache)

	_, m := seedUserAndMeasurement(t, userRepo, measurementRepo, 22.5)
	target := decimal.NewFromFloat(15.0)

	out, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:               m.UserID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 80kg, 175cm, age 30, male, moderately active.
	if out.BMR != 1749 {
		t.Errorf("expected BMR 1749, got %d", out.BMR)
	}
	if out.TDEE != 2711 {
		t.Errorf("expected TDEE 2711, got %d", out.TDEE)
	}
	if out.Goal.TargetCalories != 2311 {
		t.Errorf("expected target calories 2311, got %d", out.Goal.TargetCalories)
	}
	if out.Goal.EstimatedWeeks != 43 {
		t.Errorf("expected 43 estimated weeks, got %d", out.Goal.EstimatedWeeks)
	}
	if out.Goal.Status != entity.GoalStatusActive {
		t.Errorf("expected goal to start ACTIVE, got %s", out.Goal.Status)
	}
	if !out.Goal.InitialBodyFat.Equal(m.BodyFatPercentage) {
		t.Errorf("expected initial body fat snapshot %s, got %s", m.BodyFatPercentage, out.Goal.InitialBodyFat)
	}

	// A freshly created goal is never already complete at its own start.
	if out.Goal.IsCompletedBy(out.Goal.InitialBodyFat) {
		t.Error("goal must not be complete at its initial body fat")
	}

	// Energy figures were cached for the profile snapshot.
	if len(cache.entries) != 1 {
		t.Errorf("expected one cached energy estimate, got %d", len(cache.entries))
	}
}

func TestCreateGoalUseCase_EnergyCacheHit(t *testing.T) {
	userRepo := newFakeUserRepo()
	measurementRepo := newFakeMeasurementRepo()
	goalRepo := newFakeGoalRepo()
	cache := newFakeEnergyCache()
	uc := NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, cache)

	_, m := seedUserAndMeasurement(t, userRepo, measurementRepo, 22.5)
	target := decimal.NewFromFloat(15.0)

	first, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:               m.UserID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cancel so a second goal may be created with the same profile snapshot.
	first.Goal.Status = entity.GoalStatusCancelled
	second, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:               m.UserID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.hits != 1 {
		t.Errorf("expected second creation to hit the cache, got %d hits", cache.hits)
	}
	if second.BMR != first.BMR || second.TDEE != first.TDEE {
		t.Error("cached energy figures must match computed ones")
	}
}

func TestCreateGoalUseCase_ActiveGoalExists(t *testing.T) {
	userRepo := newFakeUserRepo()
	measurementRepo := newFakeMeasurementRepo()
	goalRepo := newFakeGoalRepo()
	uc := NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, newFakeEnergyCache())

	_, m := seedUserAndMeasurement(t, userRepo, measurementRepo, 22.5)
	target := decimal.NewFromFloat(15.0)
	input := CreateGoalInput{
		UserID:               m.UserID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrActiveGoalExists) {
		t.Errorf("expected ErrActiveGoalExists, got %v", err)
	}
}

func TestCreateGoalUseCase_SafetyViolations(t *testing.T) {
	userRepo := newFakeUserRepo()
	measurementRepo := newFakeMeasurementRepo()
	goalRepo := newFakeGoalRepo()
	uc := NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, newFakeEnergyCache())

	_, m := seedUserAndMeasurement(t, userRepo, measurementRepo, 22.5)

	t.Run("unsafe cutting target", func(t *testing.T) {
		target := decimal.NewFromFloat(7.0)
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:               m.UserID,
			GoalType:             entity.GoalTypeCutting,
			InitialMeasurementID: m.ID,
			TargetBodyFat:        &target,
		})
		if !errors.Is(err, domainerror.ErrUnsafeTarget) {
			t.Errorf("expected ErrUnsafeTarget, got %v", err)
		}
	})

	t.Run("bulking ceiling below current", func(t *testing.T) {
		ceiling := decimal.NewFromFloat(20.0)
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:               m.UserID,
			GoalType:             entity.GoalTypeBulking,
			InitialMeasurementID: m.ID,
			CeilingBodyFat:       &ceiling,
		})
		if !errors.Is(err, domainerror.ErrInvalidOrdering) {
			t.Errorf("expected ErrInvalidOrdering, got %v", err)
		}
	})

	t.Run("missing boundary", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:               m.UserID,
			GoalType:             entity.GoalTypeCutting,
			InitialMeasurementID: m.ID,
		})
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
	})

	t.Run("cutting goal with both boundaries", func(t *testing.T) {
		target := decimal.NewFromFloat(15.0)
		ceiling := decimal.NewFromFloat(25.0)
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:               m.UserID,
			GoalType:             entity.GoalTypeCutting,
			InitialMeasurementID: m.ID,
			TargetBodyFat:        &target,
			CeilingBodyFat:       &ceiling,
		})
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
		if len(goalRepo.goals) != 0 {
			t.Errorf("expected no goal to be persisted, got %d", len(goalRepo.goals))
		}
	})

	t.Run("bulking goal with both boundaries", func(t *testing.T) {
		target := decimal.NewFromFloat(20.0)
		ceiling := decimal.NewFromFloat(28.0)
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:               m.UserID,
			GoalType:             entity.GoalTypeBulking,
			InitialMeasurementID: m.ID,
			TargetBodyFat:        &target,
			CeilingBodyFat:       &ceiling,
		})
		if !errors.Is(err, domainerror.ErrMissingBoundary) {
			t.Errorf("expected ErrMissingBoundary, got %v", err)
		}
		if len(goalRepo.goals) != 0 {
			t.Errorf("expected no goal to be persisted, got %d", len(goalRepo.goals))
		}
	})
}

func TestCreateGoalUseCase_MeasurementOwnership(t *testing.T) {
	userRepo := newFakeUserRepo()
	measurementRepo := newFakeMeasurementRepo()
	goalRepo := newFakeGoalRepo()
	uc := NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, newFakeEnergyCache())

	_, m := seedUserAndMeasurement(t, userRepo, measurementRepo, 22.5)

	other := entity.NewUser(
		"other@example.com", "Other", "hash",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		entity.SexFemale,
		decimal.NewFromFloat(165),
		entity.ActivitySedentary,
		entity.MethodNavy,
	)
	userRepo.users[other.ID] = other

	target := decimal.NewFromFloat(15.0)
	_, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:               other.ID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	})
	if !errors.Is(err, domainerror.ErrMeasurementOwnership) {
		t.Errorf("expected ErrMeasurementOwnership, got %v", err)
	}
}

func TestCancelGoalUseCase(t *testing.T) {
	userRepo := newFakeUserRepo()
	measurementRepo := newFakeMeasurementRepo()
	goalRepo := newFakeGoalRepo()
	createUC := NewCreateGoalUseCase(goalRepo, measurementRepo, userRepo, newFakeEnergyCache())
	cancelUC := NewCancelGoalUseCase(goalRepo)

	_, m := seedUserAndMeasurement(t, userRepo, measurementRepo, 22.5)
	target := decimal.NewFromFloat(15.0)
	created, err := createUC.Execute(context.Background(), CreateGoalInput{
		UserID:               m.UserID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := cancelUC.Execute(context.Background(), CancelGoalInput{
		UserID: m.UserID,
		GoalID: created.Goal.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Goal.Status != entity.GoalStatusCancelled {
		t.Errorf("expected CANCELLED, got %s", out.Goal.Status)
	}

	// Cancelling again is rejected; cancellation is terminal.
	_, err = cancelUC.Execute(context.Background(), CancelGoalInput{
		UserID: m.UserID,
		GoalID: created.Goal.ID,
	})
	if !errors.Is(err, domainerror.ErrGoalNotActive) {
		t.Errorf("expected ErrGoalNotActive, got %v", err)
	}

	// The slot is free again.
	if _, err := createUC.Execute(context.Background(), CreateGoalInput{
		UserID:               m.UserID,
		GoalType:             entity.GoalTypeCutting,
		InitialMeasurementID: m.ID,
		TargetBodyFat:        &target,
	}); err != nil {
		t.Errorf("expected new goal after cancellation, got %v", err)
	}
}
