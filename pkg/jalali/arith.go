package jalali

import "github.com/jdiff/shamsi-calculator/pkg/dateutil"

// Fields returns d as a calendar-agnostic triple.
func (d Date) Fields() dateutil.Fields {
	return dateutil.Fields{Year: d.year, Month: d.month, Day: d.day}
}

// AddMonths moves d by n Jalali months, clipping the day to the target
// month's length (6/31 + 1 month = 7/30).
func AddMonths(d Date, n int) (Date, error) {
	f := dateutil.AddMonthsClipped(d.Fields(), n, DaysInMonth)
	return New(f.Year, f.Month, f.Day)
}

// MonthsBetween counts whole Jalali months from `from` to `to`. The result
// is negative when to precedes from; its magnitude does not depend on order.
func MonthsBetween(from, to Date) int {
	if from.After(to) {
		return -dateutil.MonthsBetween(to.Fields(), from.Fields(), DaysInMonth)
	}
	return dateutil.MonthsBetween(from.Fields(), to.Fields(), DaysInMonth)
}
