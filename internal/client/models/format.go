package models

import (
	"fmt"
	"strings"
	"time"
)

// timestamp layouts the backend is known to emit.
var displayLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// FormatDisplayDate renders a backend timestamp as "2 January 2006" or
// "2 January 2006 - 15.04" when a time component is present. Blank or
// unparseable input renders as the placeholder.
func FormatDisplayDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Placeholder
	}

	for _, layout := range displayLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if len(layout) == len("2006-01-02") {
			return fmt.Sprintf("%d %s %d", t.Day(), t.Month(), t.Year())
		}
		return fmt.Sprintf("%d %s %d - %02d.%02d", t.Day(), t.Month(), t.Year(), t.Hour(), t.Minute())
	}
	return Placeholder
}

// OrPlaceholder returns the value, or the placeholder when it is blank.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}
