package usecase

import (
	"testing"

	"farewatch-service/internal/domain/entity"
)

func thresholdSettings() entity.SearchSettings {
	return entity.SearchSettings{
		BasePriceEUR:        20,
		BaseDurationMinutes: 90,
		PriceIncrementEUR:   10,
		IncrementMinutes:    30,
	}
}

func TestMaxPriceForDuration(t *testing.T) {
	settings := thresholdSettings()

	tests := []struct {
		name     string
		duration int
		want     float64
	}{
		{"WellUnderBase", 45, 20},
		{"ExactlyAtBase", 90, 20},
		{"JustOverBase", 91, 30},
		{"MidFirstStep", 100, 30},
		{"FirstStepBoundary", 120, 30},
		{"JustOverFirstStep", 121, 40},
		{"TwoFullSteps", 150, 40},
		{"LongHaul", 600, 190},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := MaxPriceForDuration(tc.duration, settings); got != tc.want {
				t.Fatalf("duration %d: expected threshold %v, got %v", tc.duration, tc.want, got)
			}
		})
	}
}

func TestMaxPriceForDurationBoundaries(t *testing.T) {
	settings := thresholdSettings()

	// A flight exactly at the base duration costs exactly the base price.
	if got := MaxPriceForDuration(settings.BaseDurationMinutes, settings); got != settings.BasePriceEUR {
		t.Fatalf("expected base price %v at base duration, got %v", settings.BasePriceEUR, got)
	}

	// One full increment past the base adds exactly one price increment.
	d := settings.BaseDurationMinutes + settings.IncrementMinutes
	want := settings.BasePriceEUR + settings.PriceIncrementEUR
	if got := MaxPriceForDuration(d, settings); got != want {
		t.Fatalf("expected %v at duration %d, got %v", want, d, got)
	}
}

func TestMaxPriceForDurationMonotonic(t *testing.T) {
	parameterSets := []entity.SearchSettings{
		thresholdSettings(),
		{BasePriceEUR: 15, BaseDurationMinutes: 60, PriceIncrementEUR: 5, IncrementMinutes: 20},
		{BasePriceEUR: 50, BaseDurationMinutes: 180, PriceIncrementEUR: 25, IncrementMinutes: 60},
	}

	for _, settings := range parameterSets {
		prev := MaxPriceForDuration(0, settings)
		for d := 1; d <= 720; d++ {
			cur := MaxPriceForDuration(d, settings)
			if cur < prev {
				t.Fatalf("threshold decreased at duration %d: %v -> %v (settings %+v)", d, prev, cur, settings)
			}
			prev = cur
		}
	}
}
