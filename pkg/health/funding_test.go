package health

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFundingPriorityBoundaries(t *testing.T) {
	// The band edges are load-bearing: left-inclusive on each lower bound.
	tests := []struct {
		percent float64
		want    Priority
	}{
		{0, PriorityHigh},
		{9.9, PriorityHigh},
		{10, PriorityMedium},
		{10.1, PriorityMedium},
		{24.9, PriorityMedium},
		{25, PriorityLow},
		{25.1, PriorityLow},
		{50, PriorityLow},
		{100, PriorityLow},
	}

	for _, tt := range tests {
		if got := FundingPriority(tt.percent); got != tt.want {
			t.Errorf("FundingPriority(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestFundingPriorityMonotonic(t *testing.T) {
	rank := map[Priority]int{PriorityHigh: 2, PriorityMedium: 1, PriorityLow: 0}

	prev := FundingPriority(0)
	for pct := 0.5; pct <= 100; pct += 0.5 {
		cur := FundingPriority(pct)
		if rank[cur] > rank[prev] {
			t.Fatalf("risk increased from %q to %q at %v%% remaining", prev, cur, pct)
		}
		prev = cur
	}
}

func TestPercentRemaining(t *testing.T) {
	pct := PercentRemaining(decimal.NewFromInt(80), decimal.NewFromInt(1000))
	if pct != 8 {
		t.Errorf("PercentRemaining(80, 1000) = %v, want 8", pct)
	}

	if got := PercentRemaining(decimal.NewFromInt(50), decimal.Zero); got != 0 {
		t.Errorf("zero allocation: got %v, want 0", got)
	}
}

func TestLowBalanceScenario(t *testing.T) {
	// 80 of 1000 remaining → 8% → high priority, and with no prior warning
	// the throttle gate lets the alert through.
	pct := PercentRemaining(decimal.NewFromInt(80), decimal.NewFromInt(1000))

	if got := FundingPriority(pct); got != PriorityHigh {
		t.Errorf("FundingPriority(%v) = %q, want high", pct, got)
	}
	if !ShouldNotify(nil, DefaultWarningInterval) {
		t.Error("never-warned allocation should notify")
	}
}
