package timeutil

import "time"

// TimestampLayout defines the canonical UTC timestamp format used in outputs.
const TimestampLayout = "2006-01-02T15:04:05Z"

// FormatTimestamp formats a time as a UTC timestamp string.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a canonical UTC timestamp string.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}
