// Package timeslot provides same-day time range comparisons for the
// scheduling core. Times are "HH:MM" strings; the fixed width makes
// lexical order identical to numeric order, so no parsing is needed
// for comparisons.
package timeslot

import (
	"fmt"
	"regexp"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Overlaps reports whether [startA, endA) intersects [startB, endB).
// Touching boundaries (endA == startB) do not overlap. Zero-length
// ranges (start == end) are empty intervals and never overlap anything.
func Overlaps(startA, endA, startB, endB string) bool {
	if startA == endA || startB == endB {
		return false
	}
	return startA < endB && startB < endA
}

// ValidTime reports whether s is a well-formed 24h "HH:MM" value.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidRange reports whether start and end form a non-empty same-day range.
func ValidRange(start, end string) error {
	if !ValidTime(start) {
		return fmt.Errorf("invalid start time %q", start)
	}
	if !ValidTime(end) {
		return fmt.Errorf("invalid end time %q", end)
	}
	if start >= end {
		return fmt.Errorf("start time %s must be before end time %s", start, end)
	}
	return nil
}

// Minutes returns the length of the range in minutes.
func Minutes(start, end string) int {
	return toMinutes(end) - toMinutes(start)
}

func toMinutes(t string) int {
	if len(t) != 5 {
		return 0
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h*60 + m
}
