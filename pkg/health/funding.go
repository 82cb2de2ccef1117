package health

import "github.com/shopspring/decimal"

// Priority classifies how urgently a funding allocation needs attention.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Band boundaries for FundingPriority, as percent of budget remaining.
// Half-open, left-inclusive: exactly 10 is medium, exactly 25 is low.
const (
	highBelowPercent   = 10.0
	mediumBelowPercent = 25.0
)

// FundingPriority maps the percentage of budget remaining to a risk tier.
func FundingPriority(percentRemaining float64) Priority {
	switch {
	case percentRemaining < highBelowPercent:
		return PriorityHigh
	case percentRemaining < mediumBelowPercent:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PercentRemaining returns remaining/allocated as a percentage. An
// allocation of zero or less reads as fully spent (0%).
func PercentRemaining(remaining, allocated decimal.Decimal) float64 {
	if allocated.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := remaining.Div(allocated).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
