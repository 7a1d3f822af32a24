package dateutil

import (
	"time"
)

// Fields is a calendar-agnostic year/month/day triple. Month is 1-based.
type Fields struct {
	Year  int
	Month int
	Day   int
}

// MonthLengthFunc returns the number of days in a month of some calendar.
type MonthLengthFunc func(year, month int) int

// FieldsOf returns the Gregorian fields of a time in its own location.
func FieldsOf(t time.Time) Fields {
	y, m, d := t.Date()
	return Fields{Year: y, Month: int(m), Day: d}
}

// Compare orders two triples field by field.
func (f Fields) Compare(other Fields) int {
	switch {
	case f.Year != other.Year:
		return sign(f.Year - other.Year)
	case f.Month != other.Month:
		return sign(f.Month - other.Month)
	default:
		return sign(f.Day - other.Day)
	}
}

// AddMonthsClipped moves f by n months. When the target month is shorter than
// f.Day the day is clipped to the month's last day (Jan 31 + 1 month = Feb 28).
func AddMonthsClipped(f Fields, n int, monthLen MonthLengthFunc) Fields {
	idx := f.Year*12 + (f.Month - 1) + n
	year, month := floorDiv(idx, 12), floorMod(idx, 12)+1
	day := f.Day
	if last := monthLen(year, month); day > last {
		day = last
	}
	return Fields{Year: year, Month: month, Day: day}
}

// MonthsBetween returns the number of whole months from `from` to `to`
// (from must not be after to). A month counts once adding it to `from`
// lands on or before `to`.
func MonthsBetween(from, to Fields, monthLen MonthLengthFunc) int {
	months := (to.Year-from.Year)*12 + (to.Month - from.Month)
	if months > 0 && AddMonthsClipped(from, months, monthLen).Compare(to) > 0 {
		months--
	}
	return months
}

// SplitMonths converts a month count into whole years and remaining months.
func SplitMonths(total int) (years, months int) {
	return total / 12, total % 12
}

// GregorianMonthLength is the MonthLengthFunc of the proleptic Gregorian calendar.
func GregorianMonthLength(year, month int) int {
	return DaysInMonth(year, time.Month(month))
}

// DaysInMonth returns the number of days in a Gregorian month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonths adds months to a date, clipping to the end of shorter months
// instead of overflowing like time.AddDate does.
func AddMonths(date time.Time, months int) time.Time {
	f := AddMonthsClipped(FieldsOf(date), months, GregorianMonthLength)
	h, m, s := date.Clock()
	return time.Date(f.Year, time.Month(f.Month), f.Day, h, m, s, date.Nanosecond(), date.Location())
}

// MonthsUntilDate calculates the number of whole calendar months between two
// dates. The result is negative when toDate precedes fromDate.
func MonthsUntilDate(fromDate, toDate time.Time) int {
	from, to := FieldsOf(fromDate), FieldsOf(toDate)
	if from.Compare(to) > 0 {
		return -MonthsBetween(to, from, GregorianMonthLength)
	}
	return MonthsBetween(from, to, GregorianMonthLength)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
