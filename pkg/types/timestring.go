package types

import (
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

// TimeString represents a local time of day in "HH:MM" format.
// The zero-padded format makes lexicographic comparison equivalent
// to chronological comparison.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (date part is dropped).
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// Anything that does not round-trip through the layout is rejected.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string %q: %w", s, err)
	}
	if parsed.Format(timeStringLayout) != s {
		return "", fmt.Errorf("invalid time string %q: not in HH:MM format", s)
	}
	return TimeString(s), nil
}

// String returns the underlying "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Hour returns the hour component (0-23).
func (t TimeString) Hour() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour(), nil
}

// Minute returns the minute component (0-59).
func (t TimeString) Minute() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Minute(), nil
}

// TotalMinutes returns the number of minutes since midnight.
func (t TimeString) TotalMinutes() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number
// of minutes. The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string %q: %w", string(t), err)
	}
	return parsed, nil
}

// Validate reports whether the value is a well-formed "HH:MM" string.
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}
