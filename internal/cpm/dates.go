package cpm

import (
	"math"
	"time"
)

// Accepted calendar date layouts, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// ParseDate parses a calendar date in any accepted layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// durationDays computes a task duration in whole days, never less than 1.
// Unparsable or inverted dates degrade to 1 rather than failing; malformed
// schedules still produce a usable analysis.
func durationDays(start, finish string) float64 {
	s, ok := ParseDate(start)
	if !ok {
		return 1
	}
	f, ok := ParseDate(finish)
	if !ok {
		return 1
	}
	days := math.Round(f.Sub(s).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
