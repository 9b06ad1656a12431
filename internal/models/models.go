// Package models provides the data structures used throughout the application.
// Every table produced by the mappers and aggregators is an immutable snapshot:
// transformations return new slices, nothing is mutated after construction.
package models

import (
	"time"

	"finprep/disclosure-csv/internal/dateutils"
)

// Date wraps time.Time so dates marshal to ISO form in CSV output and parse
// tolerantly on input.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalCSV renders the date as YYYY-MM-DD.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return dateutils.ToISODate(d.Time), nil
}

// UnmarshalCSV parses a date cell using the common statement formats.
func (d *Date) UnmarshalCSV(value string) error {
	if value == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := dateutils.ParseDate(value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MonthKey returns the "YYYY-MM" grouping key for the date.
func (d Date) MonthKey() string {
	return dateutils.MonthKey(d.Time)
}
