package domain

import (
	"fmt"
	"time"
)

// Now returns the current UTC time truncated to the second. Entity timestamps
// are always produced here so they survive a round trip through the flat
// record format unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatTime renders t in the flat record layout (YYYY-MM-DD HH:MM:SS, UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.DateTime)
}

// FormatOptionalTime is FormatTime for nullable timestamps. A zero time
// yields nil.
func FormatOptionalTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := FormatTime(t)
	return &s
}

// ParseTime parses a flat record timestamp. The value is interpreted as UTC.
func ParseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.DateTime, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, fmt.Sprintf("must match %s, got %q", time.DateTime, value))
	}
	return t, nil
}

// ParseOptionalTime is ParseTime for nullable timestamps. A nil value yields
// the zero time.
func ParseOptionalTime(field string, value *string) (time.Time, error) {
	if value == nil {
		return time.Time{}, nil
	}
	return ParseTime(field, *value)
}
