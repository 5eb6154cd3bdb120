// Package measurement contains body measurement use cases.
package measurement

import (
	"context"
	"errors"
	"sort"
	"strings"
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

type fakeMeasurementRepo struct {
	measurements map[uuid.UUID]*entity.Measurement
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
	sort.Slice(out, func(i, j int) bool { return out[i].MeasuredAt.After(out[j].MeasuredAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMeasurementRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range r.measurements {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func dptr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
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

func newCreateUseCase() (*CreateMeasurementUseCase, *fakeUserRepo, *fakeMeasurementRepo) {
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	measurementRepo := &fakeMeasurementRepo{measurements: make(map[uuid.UUID]*entity.Measurement)}
	return NewCreateMeasurementUseCase(measurementRepo, userRepo), userRepo, measurementRepo
}

func TestCreateMeasurementUseCase_Navy(t *testing.T) {
	uc, userRepo, measurementRepo := newCreateUseCase()
	user := seedUser(userRepo)

	measuredAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), CreateMeasurementInput{
		UserID:   user.ID,
		WeightKg: decimal.NewFromInt(80),
		Method:   entity.MethodNavy,
		Raw: entity.RawInputs{
			WaistCm: dptr(90),
			NeckCm:  dptr(38),
		},
		MeasuredAt: &measuredAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Measurement.BodyFatPercentage.String() != "27.25" {
		t.Errorf("expected body fat 27.25, got %s", out.Measurement.BodyFatPercentage)
	}
	if out.Measurement.CalculationMethod != entity.MethodNavy {
		t.Errorf("unexpected method %s", out.Measurement.CalculationMethod)
	}
	if !out.Measurement.MeasuredAt.Equal(measuredAt) {
		t.Errorf("unexpected measured_at %s", out.Measurement.MeasuredAt)
	}
	if _, ok := measurementRepo.measurements[out.Measurement.ID]; !ok {
		t.Error("measurement was not persisted")
	}
}

func TestCreateMeasurementUseCase_DefaultsToPreferredMethod(t *testing.T) {
	uc, userRepo, _ := newCreateUseCase()
	user := seedUser(userRepo)

	out, err := uc.Execute(context.Background(), CreateMeasurementInput{
		UserID:   user.ID,
		WeightKg: decimal.NewFromInt(80),
		Raw: entity.RawInputs{
			WaistCm: dptr(90),
			NeckCm:  dptr(38),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Measurement.CalculationMethod != entity.MethodNavy {
		t.Errorf("expected preferred method navy, got %s", out.Measurement.CalculationMethod)
	}
}

func TestCreateMeasurementUseCase_ValidationFailures(t *testing.T) {
	uc, userRepo, _ := newCreateUseCase()
	user := seedUser(userRepo)

	tests := []struct {
		name     string
		input    CreateMeasurementInput
		sentinel error
		contains string
	}{
		{
			name: "weight below range",
			input: CreateMeasurementInput{
				UserID:   user.ID,
				WeightKg: decimal.NewFromInt(25),
				Method:   entity.MethodNavy,
				Raw:      entity.RawInputs{WaistCm: dptr(90), NeckCm: dptr(38)},
			},
			sentinel: domainerror.ErrInputOutOfRange,
			contains: "weight too low",
		},
		{
			name: "circumference above range",
			input: CreateMeasurementInput{
				UserID:   user.ID,
				WeightKg: decimal.NewFromInt(80),
				Method:   entity.MethodNavy,
				Raw:      entity.RawInputs{WaistCm: dptr(250), NeckCm: dptr(38)},
			},
			sentinel: domainerror.ErrInputOutOfRange,
			contains: "waist_cm",
		},
		{
			name: "skinfold out of range",
			input: CreateMeasurementInput{
				UserID:   user.ID,
				WeightKg: decimal.NewFromInt(80),
				Method:   entity.MethodThreeSite,
				Raw:      entity.RawInputs{ChestMm: dptr(70), AbdomenMm: dptr(20), ThighMm: dptr(15)},
			},
			sentinel: domainerror.ErrInputOutOfRange,
			contains: "chest_mm",
		},
		{
			name: "missing required input",
			input: CreateMeasurementInput{
				UserID:   user.ID,
				WeightKg: decimal.NewFromInt(80),
				Method:   entity.MethodNavy,
				Raw:      entity.RawInputs{WaistCm: dptr(90)},
			},
			sentinel: domainerror.ErrMissingInput,
			contains: "neck_cm",
		},
		{
			name: "unknown method",
			input: CreateMeasurementInput{
				UserID:   user.ID,
				WeightKg: decimal.NewFromInt(80),
				Method:   entity.CalculationMethod("bioimpedance"),
				Raw:      entity.RawInputs{WaistCm: dptr(90), NeckCm: dptr(38)},
			},
			sentinel: domainerror.ErrUnknownMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected message to name %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestCreateMeasurementUseCase_ImplausibleResultRejected(t *testing.T) {
	uc, userRepo, _ := newCreateUseCase()
	user := seedUser(userRepo)

	// A near-equal waist and neck drives the Navy formula below the
	// plausible floor for men.
	_, err := uc.Execute(context.Background(), CreateMeasurementInput{
		UserID:   user.ID,
		WeightKg: decimal.NewFromInt(80),
		Method:   entity.MethodNavy,
		Raw:      entity.RawInputs{WaistCm: dptr(70), NeckCm: dptr(45)},
	})
	if !errors.Is(err, domainerror.ErrInputOutOfRange) {
		t.Errorf("expected implausible body fat to be rejected, got %v", err)
	}
}

func TestGetMeasurementUseCase_Ownership(t *testing.T) {
	uc, userRepo, measurementRepo := newCreateUseCase()
	user := seedUser(userRepo)

	out, err := uc.Execute(context.Background(), CreateMeasurementInput{
		UserID:   user.ID,
		WeightKg: decimal.NewFromInt(80),
		Method:   entity.MethodNavy,
		Raw:      entity.RawInputs{WaistCm: dptr(90), NeckCm: dptr(38)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	getUC := NewGetMeasurementUseCase(measurementRepo)

	got, err := getUC.Execute(context.Background(), GetMeasurementInput{
		UserID:        user.ID,
		MeasurementID: out.Measurement.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Measurement.ID != out.Measurement.ID {
		t.Error("retrieved wrong measurement")
	}

	_, err = getUC.Execute(context.Background(), GetMeasurementInput{
		UserID:        uuid.New(),
		MeasurementID: out.Measurement.ID,
	})
	if !errors.Is(err, domainerror.ErrMeasurementOwnership) {
		t.Errorf("expected ErrMeasurementOwnership, got %v", err)
	}
}

func TestListMeasurementsUseCase_Pagination(t *testing.T) {
	uc, userRepo, measurementRepo := newCreateUseCase()
	user := seedUser(userRepo)

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		at := base.AddDate(0, 0, i*7)
		_, err := uc.Execute(context.Background(), CreateMeasurementInput{
			UserID:     user.ID,
			WeightKg:   decimal.NewFromInt(80),
			Method:     entity.MethodNavy,
			Raw:        entity.RawInputs{WaistCm: dptr(90), NeckCm: dptr(38)},
			MeasuredAt: &at,
		})
		if err != nil {
			t.Fatalf("unexpected error seeding measurement %d: %v", i, err)
		}
	}

	listUC := NewListMeasurementsUseCase(measurementRepo)

	out, err := listUC.Execute(context.Background(), ListMeasurementsInput{
		UserID: user.ID,
		Limit:  2,
		Offset: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Measurements) != 2 {
		t.Errorf("expected page of 2, got %d", len(out.Measurements))
	}
	if out.Total != 5 {
		t.Errorf("expected total 5, got %d", out.Total)
	}
	// Most recent first.
	if !out.Measurements[0].MeasuredAt.After(out.Measurements[1].MeasuredAt) {
		t.Error("expected measurements ordered most recent first")
	}
}
