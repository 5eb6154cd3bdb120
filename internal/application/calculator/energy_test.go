package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

func TestBMR(t *testing.T) {
	weight := decimal.NewFromFloat(80)
	height := decimal.NewFromFloat(175)

	t.Run("male", func(t *testing.T) {
		if got := BMR(weight, height, 30, entity.SexMale); got != 1749 {
			t.Errorf("expected 1749, got %d", got)
		}
	})

	t.Run("female", func(t *testing.T) {
		if got := BMR(weight, height, 30, entity.SexFemale); got != 1583 {
			t.Errorf("expected 1583, got %d", got)
		}
	})
}

func TestTDEE(t *testing.T) {
	cases := []struct {
		level entity.ActivityLevel
		want  int
	}{
		{entity.ActivitySedentary, 2099},
		{entity.ActivityLightlyActive, 2405},
		{entity.ActivityModeratelyActive, 2711},
		{entity.ActivityVeryActive, 3017},
		{entity.ActivityExtremelyActive, 3323},
	}
	for _, c := range cases {
		t.Run(string(c.level), func(t *testing.T) {
			if got := TDEE(1749, c.level); got != c.want {
				t.Errorf("expected %d, got %d", c.want, got)
			}
		})
	}
}

func TestCuttingCalories(t *testing.T) {
	t.Run("applies deficit", func(t *testing.T) {
		if got := CuttingCalories(2711, entity.SexMale); got != 2311 {
			t.Errorf("expected 2311, got %d", got)
		}
	})

	t.Run("male floor", func(t *testing.T) {
		if got := CuttingCalories(1600, entity.SexMale); got != 1500 {
			t.Errorf("expected 1500, got %d", got)
		}
	})

	t.Run("female floor", func(t *testing.T) {
		if got := CuttingCalories(1300, entity.SexFemale); got != 1200 {
			t.Errorf("expected 1200, got %d", got)
		}
	})

	t.Run("floors hold for any tdee", func(t *testing.T) {
		for tdee := 0; tdee <= 4000; tdee += 137 {
			if got := CuttingCalories(tdee, entity.SexMale); got < 1500 {
				t.Fatalf("male target %d below 1500 for tdee %d", got, tdee)
			}
			if got := CuttingCalories(tdee, entity.SexFemale); got < 1200 {
				t.Fatalf("female target %d below 1200 for tdee %d", got, tdee)
			}
		}
	})
}

func TestBulkingCalories(t *testing.T) {
	if got := BulkingCalories(2711); got != 2961 {
		t.Errorf("expected 2961, got %d", got)
	}
}
