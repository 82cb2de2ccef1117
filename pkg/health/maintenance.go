package health

import (
	"math"
	"time"
)

// maintenanceDateLayout is the ISO date format used by equipment records.
const maintenanceDateLayout = "2006-01-02"

// MaintenanceScore returns the maintenance freshness of a device as an
// integer percentage in [0,100]. Health decays linearly from 100 (maintained
// today) down to 0 (maintained intervalDays ago) and stays at 0 for any
// longer overdue period.
//
// Failsafes: an unparsable lastMaintained date returns 100, and an interval
// of zero or less returns 100. Bad data must read as "healthy" rather than
// raise a spurious alarm.
func MaintenanceScore(lastMaintained string, intervalDays int) int {
	return maintenanceScoreAt(time.Now(), lastMaintained, intervalDays)
}

func maintenanceScoreAt(now time.Time, lastMaintained string, intervalDays int) int {
	if intervalDays <= 0 {
		return 100
	}

	maintained, err := time.ParseInLocation(maintenanceDateLayout, lastMaintained, time.UTC)
	if err != nil {
		return 100
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daysSince := today.Sub(maintained).Hours() / 24

	percent := math.Round(100 * (1 - daysSince/float64(intervalDays)))
	return clampPercent(int(percent))
}

// clampPercent restricts v to the range [0, 100].
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
