// Package duration parses the legacy attendance duration strings of the
// form "<hours>h <minutes>m" that the time-tracking feed still emits.
// Durations are converted to integer minutes at the ingestion boundary;
// everything past that point works with minutes only.
package duration

import (
	"regexp"
	"strconv"
)

var hoursMinutesRegex = regexp.MustCompile(`^\s*(\d+)h(?:\s+(\d+)m)?\s*$`)

// ParseMinutes converts "8h 30m" to 510 and "8h" to 480. A malformed or
// empty string yields 0 rather than an error; the attendance feed has
// historically produced garbage values and a zero row is preferable to
// rejecting the whole sync.
func ParseMinutes(s string) int {
	m := hoursMinutesRegex.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return 0
		}
	}

	return hours*60 + minutes
}

// Format renders minutes back to the "<hours>h <minutes>m" display form.
func Format(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}
