package engine

import (
	"math"

	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

const minutesPerDay = 24 * 60

// DurationHours converts a clock-in/clock-out pair into worked hours. A
// clock-out that numerically precedes the clock-in is an overnight shift and
// gets 24h added, so the result is always in [0, 24). Malformed or empty
// times yield 0 so that a single bad log never aborts a whole report.
func DurationHours(clockIn, clockOut string) float64 {
	in, okIn := clockMinutes(clockIn)
	out, okOut := clockMinutes(clockOut)
	if !okIn || !okOut {
		return 0
	}

	minutes := out - in
	if minutes < 0 {
		minutes += minutesPerDay
	}

	return round2(float64(minutes) / 60)
}

// clockMinutes converts "HH:MM" to minutes since midnight.
func clockMinutes(clockStr string) (int, bool) {
	t, ok := validator.IsValidClockTime(clockStr)
	if !ok {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// round2 rounds half-up to 2 decimal places. Inputs are minute-granular, so
// the exact tie-breaking is not load-bearing downstream.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
