package health

import (
	"math"
	"testing"
)

func TestWeeksRemaining(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		burn float64
		want float64
	}{
		{"no burn is effectively infinite", 50, 0, EffectivelyInfiniteWeeks},
		{"negative burn is effectively infinite", 50, -2, EffectivelyInfiniteWeeks},
		{"empty stock with no burn is still infinite", 0, 0, EffectivelyInfiniteWeeks},
		{"empty stock with burn is depleted", 0, 5, 0},
		{"negative stock reads as depleted", -3, 5, 0},
		{"fractional weeks preserved", 17, 5, 3.4},
		{"whole weeks", 100, 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeksRemaining(tt.qty, tt.burn)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WeeksRemaining(%v, %v) = %v, want %v", tt.qty, tt.burn, got, tt.want)
			}
		})
	}
}

func TestRunwayHealthPercent(t *testing.T) {
	thresholds := DefaultRunwayThresholds()

	tests := []struct {
		name  string
		weeks float64
		want  int
	}{
		{"comfortable runway scores full", 10, 100},
		{"beyond comfortable stays full", 52, 100},
		{"infinite sentinel stays full", EffectivelyInfiniteWeeks, 100},
		{"depleted scores zero", 0, 0},
		// 1.5 of 10 weeks → 15%.
		{"low runway scores proportionally", 1.5, 15},
		{"half runway", 5, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := thresholds.HealthPercent(tt.weeks); got != tt.want {
				t.Errorf("HealthPercent(%v) = %d, want %d", tt.weeks, got, tt.want)
			}
		})
	}
}

func TestRunwayThresholdsOverride(t *testing.T) {
	// A stricter lab can demand twenty comfortable weeks.
	strict := RunwayThresholds{ComfortableWeeks: 20, CriticalWeeks: 4}

	if got := strict.HealthPercent(20); got != 100 {
		t.Errorf("HealthPercent(20) = %d, want 100", got)
	}
	if got := strict.HealthPercent(4); got != 0 {
		t.Errorf("HealthPercent(4) = %d, want 0", got)
	}
	// Midpoint of [4,20] → 50%.
	if got := strict.HealthPercent(12); got != 50 {
		t.Errorf("HealthPercent(12) = %d, want 50", got)
	}
}

func TestRunwayThresholdsDegenerate(t *testing.T) {
	// Equal anchors leave no linear band: at-or-above is full, below is zero.
	flat := RunwayThresholds{ComfortableWeeks: 5, CriticalWeeks: 5}

	if got := flat.HealthPercent(5); got != 100 {
		t.Errorf("HealthPercent(5) = %d, want 100", got)
	}
	if got := flat.HealthPercent(4.9); got != 0 {
		t.Errorf("HealthPercent(4.9) = %d, want 0", got)
	}
}
