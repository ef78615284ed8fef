// Package timex contains small time helpers shared by config and the alert
// layer.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration so JSON config can specify intervals either
// as strings like "30s" or as integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// DateOnly truncates t to midnight in its own location. All due-date
// arithmetic in the alert layer works on date-only values.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole number of days from 'from' to 'to' after
// both are reduced to date-only values. Negative when 'to' is earlier.
// Both dates are rebuilt as UTC midnights so spans containing a DST
// transition still count calendar days.
func DaysBetween(from, to time.Time) int {
	f := utcMidnight(from)
	t := utcMidnight(to)
	return int(t.Sub(f).Hours() / 24)
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
