package health

import "math"

// EffectivelyInfiniteWeeks is the runway reported for supplies with no
// consumption rate. It is a UI/arithmetic convenience standing in for
// "never runs out" — deliberately a large finite number rather than +Inf,
// so downstream math and formatting stay well-defined.
const EffectivelyInfiniteWeeks = 99.0

// RunwayThresholds holds the two anchor points of the linear scale that maps
// weeks of remaining supply to a health percentage.
type RunwayThresholds struct {
	// ComfortableWeeks is the runway at or above which a supply scores 100.
	ComfortableWeeks float64

	// CriticalWeeks is the runway at or below which a supply scores 0.
	CriticalWeeks float64
}

// DefaultRunwayThresholds returns the standard scale: full health at ten
// weeks of runway, zero health at depletion.
func DefaultRunwayThresholds() RunwayThresholds {
	return RunwayThresholds{ComfortableWeeks: 10, CriticalWeeks: 0}
}

// WeeksRemaining projects how many weeks of supply remain at the current
// consumption rate. Fractional weeks are meaningful and preserved.
//
// A burn rate of zero or less yields EffectivelyInfiniteWeeks; an empty
// stock with a positive burn rate yields 0.
func WeeksRemaining(currentQty, burnPerWeek float64) float64 {
	if burnPerWeek <= 0 {
		return EffectivelyInfiniteWeeks
	}
	if currentQty <= 0 {
		return 0
	}
	return currentQty / burnPerWeek
}

// HealthPercent maps a runway in weeks to an integer health percentage in
// [0,100]: 100 at or above ComfortableWeeks, 0 at or below CriticalWeeks,
// linear in between.
func (t RunwayThresholds) HealthPercent(weeks float64) int {
	if weeks >= t.ComfortableWeeks {
		return 100
	}
	if weeks <= t.CriticalWeeks {
		return 0
	}
	span := t.ComfortableWeeks - t.CriticalWeeks
	percent := math.Round(100 * (weeks - t.CriticalWeeks) / span)
	return clampPercent(int(percent))
}

// WeeksToHealthPercent is HealthPercent with the default thresholds.
func WeeksToHealthPercent(weeks float64) int {
	return DefaultRunwayThresholds().HealthPercent(weeks)
}
