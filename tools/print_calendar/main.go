package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jdiff/shamsi-calculator/pkg/dateutil"
	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

// Prints Nowruz (1 Farvardin) and the leap status of each Jalali year in a range.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_calendar <from-year> [to-year]")
		return
	}
	from, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid year %q\n", os.Args[1])
		os.Exit(1)
	}
	to := from
	if len(os.Args) > 2 {
		if to, err = strconv.Atoi(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "invalid year %q\n", os.Args[2])
			os.Exit(1)
		}
	}

	fmt.Printf("%-6s %-12s %-10s %-5s %-5s %s\n", "Year", "Nowruz", "Weekday", "Days", "Leap", "Gregorian leap")
	for y := from; y <= to; y++ {
		nowruz, err := jalali.New(y, 1, 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%d: %v\n", y, err)
			os.Exit(1)
		}
		g := nowruz.Gregorian()
		fmt.Printf("%-6d %-12s %-10s %-5d %-5t %t\n",
			y, g, nowruz.Weekday(), jalali.DaysInYear(y), jalali.IsLeap(y), dateutil.IsLeapYear(g.Year()))
	}
}
