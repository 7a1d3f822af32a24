package jalali

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Gregorian is a date in the proleptic Gregorian calendar. Values are only
// produced by converting a Jalali date.
type Gregorian struct {
	year  int
	month time.Month
	day   int
}

// Year returns the Gregorian year.
func (g Gregorian) Year() int { return g.year }

// Month returns the Gregorian month.
func (g Gregorian) Month() time.Month { return g.month }

// Day returns the day of month.
func (g Gregorian) Day() int { return g.day }

// Time returns midnight UTC of the date.
func (g Gregorian) Time() time.Time {
	return time.Date(g.year, g.month, g.day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.year, int(g.month), g.day)
}

// JDN returns the Julian day number of g.
func (g Gregorian) JDN() int {
	return gregorianToJDN(g.year, int(g.month), g.day)
}

// ToGregorian converts a valid Jalali date to its Gregorian equivalent.
func ToGregorian(d Date) Gregorian {
	y, m, day := jdnToGregorian(d.JDN())
	return Gregorian{year: y, month: time.Month(m), day: day}
}

// FromJDN returns the Jalali date for a Julian day number.
func FromJDN(jdn int) (Date, error) {
	days := jdn - EpochJDN
	if days < 0 || days >= daysBeforeYear(MaxYear+1) {
		return Date{}, &RangeError{Field: "julian day", Value: jdn, Min: EpochJDN, Max: EpochJDN + daysBeforeYear(MaxYear+1) - 1}
	}

	// 12053 days per 33-year cycle; the estimate is off by at most one year.
	year := 33*days/12053 + 1
	for daysBeforeYear(year+1) <= days {
		year++
	}
	for daysBeforeYear(year) > days {
		year--
	}

	yd := days - daysBeforeYear(year)
	if yd < 186 {
		return Date{year: year, month: yd/31 + 1, day: yd%31 + 1}, nil
	}
	yd -= 186
	return Date{year: year, month: yd/30 + 7, day: yd%30 + 1}, nil
}

// FromGregorian returns the Jalali date of t's calendar day in t's location.
func FromGregorian(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return FromJDN(gregorianToJDN(y, int(m), d))
}

// Today returns the current Jalali date in loc. A nil loc means Asia/Tehran.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = ptime.Iran()
	}
	pt := ptime.New(time.Now().In(loc))
	return Date{year: pt.Year(), month: int(pt.Month()), day: pt.Day()}
}

// Format renders t as a Jalali YYYY/MM/DD string.
func Format(t time.Time) string {
	return ptime.New(t).Format("yyyy/MM/dd")
}

// gregorianToJDN uses the Fliegel/Van Flandern integer formula.
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian inverts gregorianToJDN (Richards' algorithm).
func jdnToGregorian(jdn int) (year, month, day int) {
	f := jdn + 1401 + (((4*jdn+274277)/146097)*3)/4 - 38
	e := 4*f + 3
	g := (e % 1461) / 4
	h := 5*g + 2
	day = (h%153)/5 + 1
	month = (h/153+2)%12 + 1
	year = e/1461 - 4716 + (12+2-month)/12
	return year, month, day
}
