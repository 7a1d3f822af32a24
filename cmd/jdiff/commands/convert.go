package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jdiff/shamsi-calculator/internal/calculation"
	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

func newConvertCommand(root *rootOptions) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "convert [DATE...]",
		Short: "Convert dates between the Jalali and Gregorian calendars",
		Long: `Convert Jalali YYYY/MM/DD dates to Gregorian, or Gregorian YYYY-MM-DD dates
to Jalali with --reverse. Without arguments, today's date in Tehran is shown.`,
		Example: `  jdiff convert 1403/01/01
  jdiff convert --reverse 2024-03-20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, describe(jalali.Today(nil)))
				return nil
			}

			var failed int
			for _, arg := range args {
				d, err := convertArg(arg, reverse)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
					continue
				}
				fmt.Fprintln(out, describe(d))
			}
			if failed > 0 {
				return errors.Newf("%d of %d date(s) could not be converted", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "treat arguments as Gregorian YYYY-MM-DD dates")
	return cmd
}

func convertArg(arg string, reverse bool) (jalali.Date, error) {
	if !reverse {
		return calculation.ParseDate(arg)
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(arg))
	if err != nil {
		return jalali.Date{}, errors.WithHint(errors.Wrap(err, "invalid gregorian date"), "use YYYY-MM-DD")
	}
	return jalali.FromGregorian(t)
}

// describe renders "1403/01/01 = 2024-03-20 (Wednesday, Farvardin, leap year)".
func describe(d jalali.Date) string {
	leap := ""
	if jalali.IsLeap(d.Year()) {
		leap = ", leap year"
	}
	return fmt.Sprintf("%s = %s (%s, %s%s)", d, d.Gregorian(), d.Weekday(), d.MonthName(), leap)
}
