package timetable

import (
	"fmt"
	"time"
)

const clockLayout = "15:04:05"

const secondsPerDay = 24 * 60 * 60

// ParseClock parses an HH:MM:SS wall-clock value into seconds since
// midnight. Values carry no date component.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// FormatClock renders seconds since midnight as HH:MM:SS, wrapping at
// midnight.
func FormatClock(sec int) string {
	sec %= secondsPerDay
	if sec < 0 {
		sec += secondsPerDay
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec/60%60, sec%60)
}
