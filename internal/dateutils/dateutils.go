// Package dateutils provides tolerant date parsing and calendar helpers for
// messy real-world statement exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUK       = "02/01/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"

	// MonthLayout is the "YYYY-MM" grouping key used by the aggregators.
	MonthLayout = "2006-01"
)

// CommonFormats is the ordered list of layouts tried when parsing dates.
// UK day-first layouts are tried before the US month-first one.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUK,
	DateLayoutFull,
	"02-01-2006",
	"2006/01/02",
	"01/02/2006",
	"2-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common formats in order.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and normalizes whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespaceRe.ReplaceAllString(dateStr, " ")
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the "YYYY-MM" grouping key for a date.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
