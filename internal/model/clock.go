package model

import (
	"fmt"
	"time"
)

// UnknownClock is shown when a duration is not known yet
const UnknownClock = "—"

// FormatClock returns d formatted as mm:ss, or hh:mm:ss past one hour.
// Non-positive durations are reported as UnknownClock.
func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	if total <= 0 {
		return UnknownClock
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
