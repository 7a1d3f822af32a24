package domain

import (
	"github.com/jdiff/shamsi-calculator/pkg/decimal"
)

// Basis selects the calendar whose fields are subtracted when measuring a
// difference.
type Basis string

const (
	// BasisGregorian subtracts the Gregorian equivalents of both dates.
	BasisGregorian Basis = "gregorian"
	// BasisJalali subtracts the Jalali fields directly.
	BasisJalali Basis = "jalali"
)

// Valid reports whether b is a known basis.
func (b Basis) Valid() bool {
	return b == BasisGregorian || b == BasisJalali
}

// Endpoint is one side of a date pair in both calendars.
type Endpoint struct {
	Jalali    string `json:"jalali" yaml:"jalali"`
	Gregorian string `json:"gregorian" yaml:"gregorian"`
}

// Difference is the calendar-field distance between two dates in whole years
// and months. Years and Months are never negative; Reversed marks a pair
// whose second date precedes the first.
type Difference struct {
	Years       int      `json:"years" yaml:"years"`
	Months      int      `json:"months" yaml:"months"`
	Reversed    bool     `json:"reversed" yaml:"reversed"`
	TotalMonths int      `json:"total_months" yaml:"total_months"`
	Basis       Basis    `json:"basis" yaml:"basis"`
	First       Endpoint `json:"first" yaml:"first"`
	Second      Endpoint `json:"second" yaml:"second"`
}

// IsZero reports whether the difference is shorter than one month.
func (d Difference) IsZero() bool {
	return d.TotalMonths == 0
}

// DecimalYears returns the magnitude as a fractional number of years.
func (d Difference) DecimalYears() decimal.Years {
	return decimal.NewYearsFromMonths(d.TotalMonths)
}
