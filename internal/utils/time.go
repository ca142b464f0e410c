package utils

import (
	"fmt"
	"time"

	"github.com/lininnin/mindtrack/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// ValidDate reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidTime reports whether the string is a well-formed HH:MM time.
func ValidTime(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// ResolveDate expands the literal "today" to today's date and validates
// anything else as YYYY-MM-DD.
func ResolveDate(dateStr string) (string, error) {
	if dateStr == "" || dateStr == "today" {
		return Today(), nil
	}
	if !ValidDate(dateStr) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD or 'today')", dateStr)
	}
	return dateStr, nil
}

// AddDays returns the date string offset by the given number of days.
func AddDays(dateStr string, days int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat), nil
}
