package health

import (
	"testing"
	"time"
)

func isoDaysAgo(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(maintenanceDateLayout)
}

func TestMaintenanceScore(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		lastMaintained string
		intervalDays   int
		want           int
	}{
		{"maintained today", isoDaysAgo(now, 0), 90, 100},
		{"halfway through interval", isoDaysAgo(now, 45), 90, 50},
		// 30 of 90 days elapsed → 100 * 2/3 = 66.67 → rounds to 67, not 66.
		{"two thirds remaining rounds up", isoDaysAgo(now, 30), 90, 67},
		{"exactly at interval", isoDaysAgo(now, 90), 90, 0},
		{"long overdue clamps to zero", isoDaysAgo(now, 400), 90, 0},
		{"future date clamps to hundred", isoDaysAgo(now, -5), 90, 100},
		{"one day interval maintained yesterday", isoDaysAgo(now, 1), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maintenanceScoreAt(now, tt.lastMaintained, tt.intervalDays)
			if got != tt.want {
				t.Errorf("maintenanceScoreAt(%q, %d) = %d, want %d",
					tt.lastMaintained, tt.intervalDays, got, tt.want)
			}
		})
	}
}

func TestMaintenanceScoreFailsafes(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	// Bad data must read as healthy, never as overdue — inverting these
	// would flood the lab with alarms over unparsable records.
	if got := maintenanceScoreAt(now, "invalid-date", 90); got != 100 {
		t.Errorf("unparsable date: got %d, want 100", got)
	}
	if got := maintenanceScoreAt(now, isoDaysAgo(now, 10), 0); got != 100 {
		t.Errorf("zero interval: got %d, want 100", got)
	}
	if got := maintenanceScoreAt(now, isoDaysAgo(now, 10), -7); got != 100 {
		t.Errorf("negative interval: got %d, want 100", got)
	}
}

func TestMaintenanceScoreUsesWallClock(t *testing.T) {
	today := time.Now().Format(maintenanceDateLayout)
	if got := MaintenanceScore(today, 30); got != 100 {
		t.Errorf("MaintenanceScore(today, 30) = %d, want 100", got)
	}
}
