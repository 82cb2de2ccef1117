package health

import (
	"testing"
	"time"
)

func TestShouldNotify(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name      string
		last      *time.Time
		threshold time.Duration
		want      bool
	}{
		{"never warned", nil, DefaultWarningInterval, true},
		{"warned an hour ago", ago(time.Hour), DefaultWarningInterval, false},
		{"warned two days ago", ago(48 * time.Hour), DefaultWarningInterval, true},
		// The boundary is inclusive.
		{"warned exactly a day ago", ago(24 * time.Hour), DefaultWarningInterval, true},
		{"custom threshold allows", ago(30 * time.Hour), 24 * time.Hour, true},
		{"custom threshold blocks", ago(30 * time.Hour), 48 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldNotifyAt(now, tt.last, tt.threshold); got != tt.want {
				t.Errorf("shouldNotifyAt(%v, %v) = %v, want %v", tt.last, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestShouldNotifyStamp(t *testing.T) {
	if !ShouldNotifyStamp("", DefaultWarningInterval) {
		t.Error("empty stamp should read as never warned")
	}
	if !ShouldNotifyStamp("not-a-timestamp", DefaultWarningInterval) {
		t.Error("unparsable stamp should read as never warned")
	}

	recent := time.Now().Add(-time.Hour).Format(time.RFC3339)
	if ShouldNotifyStamp(recent, DefaultWarningInterval) {
		t.Error("stamp from an hour ago should be throttled")
	}

	stale := time.Now().Add(-72 * time.Hour).Format(time.RFC3339)
	if !ShouldNotifyStamp(stale, DefaultWarningInterval) {
		t.Error("stamp from three days ago should notify")
	}
}

func TestThrottleIndependentOfSeverity(t *testing.T) {
	// A high-priority allocation warned five hours ago stays high priority
	// but is throttled — severity never bypasses the cooldown.
	last := time.Now().Add(-5 * time.Hour)

	if got := FundingPriority(8); got != PriorityHigh {
		t.Fatalf("FundingPriority(8) = %q, want high", got)
	}
	if ShouldNotify(&last, DefaultWarningInterval) {
		t.Error("alert fired inside the cooldown window")
	}
}
