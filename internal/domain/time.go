package domain

import "time"

// TimeLayout is the textual format of every stored and published timestamp (UTC, no zone suffix).
const TimeLayout = "2006-01-02T15:04:05.000000"

// parseLayout accepts TimeLayout as well as stamps whose fractional part was omitted.
const parseLayout = "2006-01-02T15:04:05"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a TimeLayout string as UTC.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(parseLayout, s, time.UTC)
}
