package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// It is the wire, storage and arithmetic representation for slot times.
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// NewTimeString creates a TimeString from a time.Time, keeping only hours and minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// A trailing seconds component ("HH:MM:SS") is accepted and dropped.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s).truncateSeconds()
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the time string is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time of day.
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns the number of minutes since midnight.
// Any seconds component is ignored.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t.truncateSeconds()))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// The result wraps within a single day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse("15:04", string(t.truncateSeconds()))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Comparison on "HH:MM" strings is lexicographic and matches chronological order.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.truncateSeconds() < other.truncateSeconds()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.truncateSeconds() > other.truncateSeconds()
}

// Value implements driver.Valuer so TimeString can be written to TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as "HH:MM:SS";
// the seconds component is dropped.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v).truncateSeconds()
	case []byte:
		*t = TimeString(v).truncateSeconds()
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
	return nil
}

// truncateSeconds cuts "HH:MM:SS" down to "HH:MM".
func (t TimeString) truncateSeconds() TimeString {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
