package utils

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// ParseDate normalizes a date string to a calendar date at UTC midnight.
// time.Parse is strict, so impossible dates like 1990-02-30 are rejected
// rather than rolled over.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
