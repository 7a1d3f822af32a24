package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// CSVFormatter writes one row per processed line in input order.
type CSVFormatter struct {
	Options
}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Line", "Text", "Outcome", "Years", "Months", "Reversed", "TotalMonths", "DecimalYears", "FirstJalali", "FirstGregorian", "SecondJalali", "SecondGregorian", "Message"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if report != nil {
		m := MessagesFor(c.Locale)
		for _, r := range report.Lines {
			row := []string{strconv.Itoa(r.Number), r.Text, string(r.Outcome), "", "", "", "", "", "", "", "", "", m.Outcome(r)}
			if r.OK() {
				d := r.Difference
				row[3] = strconv.Itoa(d.Years)
				row[4] = strconv.Itoa(d.Months)
				row[5] = strconv.FormatBool(d.Reversed)
				row[6] = strconv.Itoa(d.TotalMonths)
				row[7] = d.DecimalYears().String()
				row[8] = d.First.Jalali
				row[9] = d.First.Gregorian
				row[10] = d.Second.Jalali
				row[11] = d.Second.Gregorian
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
