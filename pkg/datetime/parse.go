// Package datetime provides date utility functions for closing-date math.
package datetime

import (
	"time"

	"github.com/homelend/mortgage-engine/pkg/constants"
)

const (
	// DateLayout is the format for closing dates in scenario files and output.
	DateLayout = constants.DateLayout

	// MonthLayout is the format for month-precision dates.
	MonthLayout = constants.MonthLayout
)

// MustParseDate parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known to
// be valid.
func MustParseDate(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseClosingDate parses a day-precision closing date.
func ParseClosingDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// ParseMonth parses a month-precision date.
func ParseMonth(date string) (time.Time, error) {
	return time.Parse(MonthLayout, date)
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DaysRemainingInMonth returns the number of days from t through the end of
// its month, counting the day of t itself. Closing on the last day of a month
// yields 1.
func DaysRemainingInMonth(t time.Time) int {
	return DaysInMonth(t) - t.Day() + 1
}

// MonthsBetween returns the number of whole calendar months from the month
// containing 'from' to the month containing 'to'. Never negative.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*constants.MonthsPerYear + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0
	}
	return months
}

// OffsetMonth returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetMonth(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}
