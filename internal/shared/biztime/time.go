// Package biztime provides time utilities for the checkout flow.
// All storage and transport use UTC. Epoch milliseconds are only produced
// for the outbound token's requestInitiationTime field, which the gateway
// expects as a string-encoded integer.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// EpochMillis returns the time as integer milliseconds since the Unix epoch.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// EpochMillisString formats the time as the string-encoded epoch-millisecond
// integer used in the checkout token payload.
func EpochMillisString(t time.Time) string {
	return fmt.Sprintf("%d", t.UnixMilli())
}

// FormatNoteTime formats a UTC time for order audit notes using RFC3339.
func FormatNoteTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseNoteTime parses a timestamp previously written by FormatNoteTime.
func ParseNoteTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid note timestamp format %q: %w", s, err)
	}
	return t, nil
}
