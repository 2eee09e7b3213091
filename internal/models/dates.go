package models

import (
	"strings"
	"time"
)

// DayLayout is the calendar-day format used across the API.
const DayLayout = "2006-01-02"

var dayLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DayLayout,
	"2006/01/02",
	"2006.01.02",
	"2006. 1. 2.",
	"2006. 1. 2",
}

// DateOnly returns the YYYY-MM-DD part of s, or "" when s does not start
// with a calendar date. The time of day is discarded without converting
// time zones.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len(DayLayout) {
		if _, err := time.Parse(DayLayout, s[:len(DayLayout)]); err == nil {
			return s[:len(DayLayout)]
		}
	}
	return ""
}

// ParseDay extracts a calendar day from a date or timestamp string in any
// of the formats the hosted database or its formulas produce.
func ParseDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if d := DateOnly(s); d != "" {
		return d, true
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DayLayout), true
		}
	}
	return "", false
}
