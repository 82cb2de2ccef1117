package health

import "time"

// DefaultWarningInterval is the cooldown between repeat alerts for the same
// record when the caller does not configure one.
const DefaultWarningInterval = 24 * time.Hour

// ShouldNotify decides whether an alert may fire given the last time one was
// sent. A nil lastWarnedAt means "never warned" and always allows the send.
// The boundary is inclusive: exactly threshold elapsed allows the send.
//
// This is a pure decision over its inputs — it does not record that a
// notification went out. The caller owns the read-decide-write cycle and
// persists the new timestamp after a successful send. Two concurrent callers
// reading the same stale timestamp can both decide to send; a duplicate
// alert under that race is accepted behavior.
func ShouldNotify(lastWarnedAt *time.Time, threshold time.Duration) bool {
	return shouldNotifyAt(time.Now(), lastWarnedAt, threshold)
}

func shouldNotifyAt(now time.Time, lastWarnedAt *time.Time, threshold time.Duration) bool {
	if lastWarnedAt == nil {
		return true
	}
	return now.Sub(*lastWarnedAt) >= threshold
}

// ShouldNotifyStamp is ShouldNotify over an RFC3339 timestamp string as
// stored on records. An empty or unparsable stamp reads as "never warned".
func ShouldNotifyStamp(lastWarnedAt string, threshold time.Duration) bool {
	if lastWarnedAt == "" {
		return true
	}
	t, err := time.Parse(time.RFC3339, lastWarnedAt)
	if err != nil {
		return true
	}
	return ShouldNotify(&t, threshold)
}
