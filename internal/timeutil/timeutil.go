// Package timeutil provides helpers for working with dates and
// minute-based durations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const minutesInAnHour = 60

// Round rounds a time value in seconds, minutes, or hours to the
// nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMins renders a minutes value as a human-readable duration
// such as "45 minutes" or "2 hours 15 minutes".
func FormatMins(val int) string {
	if val < minutesInAnHour {
		return fmt.Sprintf("%d minutes", val)
	}

	hrs, mins := MinsToHoursAndMins(val)

	unit := "hours"
	if hrs == 1 {
		unit = "hour"
	}

	if mins == 0 {
		return fmt.Sprintf("%d %s", hrs, unit)
	}

	return fmt.Sprintf("%d %s %d minutes", hrs, unit, mins)
}

// Date returns the calendar date of t in YYYY-MM-DD form.
func Date(t time.Time) string {
	return t.Format(time.DateOnly)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}
