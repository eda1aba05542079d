package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FeedTimezone is the zone fixture times are published in when no offset is present.
const FeedTimezone = "Australia/Sydney"

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseTimestamp accepts the timestamp shapes seen in the fantasy feed.
// Values without an offset are read in FeedTimezone.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	loc := FeedLocation()
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FeedLocation resolves FeedTimezone, falling back to UTC when tzdata is unavailable.
func FeedLocation() *time.Location {
	if loc, err := time.LoadLocation(FeedTimezone); err == nil {
		return loc
	}
	return time.UTC
}
