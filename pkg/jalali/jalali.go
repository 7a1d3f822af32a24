// Package jalali implements the Jalali (Persian solar) calendar.
//
// Dates are mapped to Julian day numbers using the 33-year arithmetic leap
// cycle, in which year y is a leap year when y mod 33 is one of
// 1, 5, 9, 13, 17, 22, 26 or 30. The mapping is exact for years
// MinYear..MaxYear and agrees with the widely used jdf/jalaali conversion.
package jalali

import (
	"fmt"
	"time"
)

const (
	// MinYear and MaxYear bound the supported Jalali years.
	// 9377/12/29 corresponds to 9999-03-19 in the proleptic Gregorian calendar.
	MinYear = 1
	MaxYear = 9377

	// EpochJDN is the Julian day number of 1 Farvardin 1 (0622-03-21 proleptic Gregorian).
	EpochJDN = 1948320
)

var monthNames = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// Date is a validated Jalali calendar date. The zero value is not a valid date.
type Date struct {
	year  int
	month int
	day   int
}

// New returns the Jalali date year/month/day, or a *RangeError when any field
// falls outside the calendar.
func New(year, month, day int) (Date, error) {
	if err := Validate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// package-level constants.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate reports whether year/month/day names a day of the Jalali calendar.
func Validate(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return &RangeError{Field: "year", Value: year, Min: MinYear, Max: MaxYear}
	}
	if month < 1 || month > 12 {
		return &RangeError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return &RangeError{Field: "day", Value: day, Min: 1, Max: n}
	}
	return nil
}

// IsLeap reports whether the Jalali year has 366 days (Esfand has 30 days).
func IsLeap(year int) bool {
	return mod(25*year+11, 33) < 8
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of the month: 31 for the first six months,
// 30 for the next five, and 29 or 30 for Esfand. Out of range months yield 0.
func DaysInMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsLeap(year) {
			return 30
		}
		return 29
	default:
		return 0
	}
}

// Year returns the year field.
func (d Date) Year() int { return d.year }

// Month returns the month field (1 = Farvardin).
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// MonthName returns the transliterated month name.
func (d Date) MonthName() string {
	if d.month < 1 || d.month > 12 {
		return ""
	}
	return monthNames[d.month-1]
}

// String formats the date as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.year, d.month, d.day)
}

// YearDay returns the zero-based day of the year.
func (d Date) YearDay() int {
	if d.month <= 7 {
		return 31*(d.month-1) + d.day - 1
	}
	return 186 + 30*(d.month-7) + d.day - 1
}

// JDN returns the Julian day number of d.
func (d Date) JDN() int {
	return EpochJDN + daysBeforeYear(d.year) + d.YearDay()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	a, b := d.JDN(), other.JDN()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d follows other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d == other }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// JDN 0 was a Monday.
	return time.Weekday((d.JDN() + 1) % 7)
}

// Gregorian converts d to the proleptic Gregorian calendar.
func (d Date) Gregorian() Gregorian {
	return ToGregorian(d)
}

// daysBeforeYear counts the days from 1 Farvardin 1 up to 1 Farvardin of year.
func daysBeforeYear(year int) int {
	n := year - 1
	return 365*n + (8*n+29)/33
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
