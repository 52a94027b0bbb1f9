package fhir

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date represents a FHIR date with day precision, e.g. a birth date.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time, truncating to day precision.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. Partial
// dates (YYYY and YYYY-MM) are accepted and normalized to their first
// day.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, format := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(format, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("invalid date format: %s", s)
}
