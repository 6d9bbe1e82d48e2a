package utils

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// ParseDate accepts the date shapes clients actually send (RFC 3339 or a
// bare day, French order tolerated).
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}
