package calculation

import (
	"github.com/jdiff/shamsi-calculator/internal/domain"
	"github.com/jdiff/shamsi-calculator/pkg/dateutil"
	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

// ComputeDifference parses two YYYY/MM/DD Jalali dates and measures the
// whole years and months between their Gregorian equivalents. A parse
// failure is returned as a *ParseError tagged with the failing side; a
// second date earlier than the first is not an error and sets Reversed.
func ComputeDifference(a, b string) (domain.Difference, error) {
	return computeDifference(a, b, domain.BasisGregorian)
}

func computeDifference(a, b string, basis domain.Basis) (domain.Difference, error) {
	first, err := ParseDate(a)
	if err != nil {
		return domain.Difference{}, withSide(err, SideFirst)
	}
	second, err := ParseDate(b)
	if err != nil {
		return domain.Difference{}, withSide(err, SideSecond)
	}
	return Measure(first, second, basis), nil
}

// Measure returns the calendar-field difference between two valid dates.
// Months are counted from the earlier date to the later one, so swapping
// the arguments only flips Reversed.
func Measure(first, second jalali.Date, basis domain.Basis) domain.Difference {
	reversed := second.Before(first)
	earlier, later := first, second
	if reversed {
		earlier, later = second, first
	}

	var total int
	switch basis {
	case domain.BasisJalali:
		total = dateutil.MonthsBetween(earlier.Fields(), later.Fields(), jalali.DaysInMonth)
	default:
		basis = domain.BasisGregorian
		total = dateutil.MonthsBetween(
			dateutil.FieldsOf(earlier.Gregorian().Time()),
			dateutil.FieldsOf(later.Gregorian().Time()),
			dateutil.GregorianMonthLength,
		)
	}

	years, months := dateutil.SplitMonths(total)
	return domain.Difference{
		Years:       years,
		Months:      months,
		Reversed:    reversed,
		TotalMonths: total,
		Basis:       basis,
		First:       endpoint(first),
		Second:      endpoint(second),
	}
}

func endpoint(d jalali.Date) domain.Endpoint {
	return domain.Endpoint{Jalali: d.String(), Gregorian: d.Gregorian().String()}
}
