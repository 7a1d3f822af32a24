package output

import (
	"fmt"
	"strings"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// Messages is the user-facing wording of a report in one language.
type Messages struct {
	Locale string

	Title             string
	SimplifiedHeading string
	DetailedHeading   string
	DetailedLabel     string
	SummaryHeading    string
	GeneratedAt       string
	BasisLabel        string

	// DifferenceFormat takes years then months.
	DifferenceFormat string
	ReversedNote     string
	LineFormatError  string
	InvalidDate      string
	// LogLineFormat takes the trimmed line then its outcome text.
	LogLineFormat string

	EmptyInput  string
	NoSuccesses string

	SummaryCount    string
	SummaryReversed string
	SummaryMin      string
	SummaryMax      string
	SummaryMean     string
	YearsUnit       string
}

var persian = Messages{
	Locale:            "fa",
	Title:             "محاسبه‌گر اختلاف دو تاریخ شمسی",
	SimplifiedHeading: "نتایج محاسبات (فقط اختلاف سال و ماه)",
	DetailedHeading:   "گزارش کامل پردازش",
	DetailedLabel:     "جزئیات پردازش هر خط:",
	SummaryHeading:    "خلاصه",
	GeneratedAt:       "تاریخ تهیه",
	BasisLabel:        "مبنای محاسبه",
	DifferenceFormat:  "%d سال و %d ماه",
	ReversedNote:      "(تاریخ دوم کوچکتر از تاریخ اول است)",
	LineFormatError:   "خطا در فرمت خط. باید دو تاریخ جدا شده با کاما باشد.",
	InvalidDate:       "خطا: فرمت تاریخ وارد شده نامعتبر است. لطفاً از فرمت 'YYYY/MM/DD' استفاده کنید.",
	LogLineFormat:     "خط «%s»: %s",
	EmptyInput:        "لطفاً داده‌های تاریخ را وارد کنید.",
	NoSuccesses:       "هیچ نتیجه موفقیت آمیزی برای نمایش در لیست خلاصه وجود ندارد. لطفاً گزارش کامل را برای بررسی خطاها مشاهده کنید.",
	SummaryCount:      "تعداد نتایج",
	SummaryReversed:   "جفت‌های معکوس",
	SummaryMin:        "کمترین اختلاف",
	SummaryMax:        "بیشترین اختلاف",
	SummaryMean:       "میانگین اختلاف",
	YearsUnit:         "سال",
}

var english = Messages{
	Locale:            "en",
	Title:             "Jalali Date Difference Calculator",
	SimplifiedHeading: "Results (years and months only)",
	DetailedHeading:   "Full processing report",
	DetailedLabel:     "Per-line details:",
	SummaryHeading:    "Summary",
	GeneratedAt:       "Generated",
	BasisLabel:        "Basis",
	DifferenceFormat:  "%d years and %d months",
	ReversedNote:      "(second date precedes first)",
	LineFormatError:   "Line format error. Expected two dates separated by a comma.",
	InvalidDate:       "Error: invalid date format. Please use 'YYYY/MM/DD'.",
	LogLineFormat:     "Line «%s»: %s",
	EmptyInput:        "Please enter date data.",
	NoSuccesses:       "No successful results to show in the summary list. See the full report for errors.",
	SummaryCount:      "Results",
	SummaryReversed:   "Reversed pairs",
	SummaryMin:        "Shortest",
	SummaryMax:        "Longest",
	SummaryMean:       "Mean",
	YearsUnit:         "years",
}

var catalogs = map[string]Messages{
	"fa": persian,
	"en": english,
}

// DefaultLocale is used for unknown or empty locales.
const DefaultLocale = "fa"

// MessagesFor returns the catalog for locale, falling back to Persian.
func MessagesFor(locale string) Messages {
	if m, ok := catalogs[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return m
	}
	return catalogs[DefaultLocale]
}

// Locales lists the supported locales.
func Locales() []string {
	return []string{"fa", "en"}
}

// Difference renders the magnitude only, e.g. "3 سال و 10 ماه".
func (m Messages) Difference(d domain.Difference) string {
	return fmt.Sprintf(m.DifferenceFormat, d.Years, d.Months)
}

// DifferenceWithNote appends the reversed note when the pair was reversed.
func (m Messages) DifferenceWithNote(d domain.Difference) string {
	s := m.Difference(d)
	if d.Reversed {
		s += " " + m.ReversedNote
	}
	return s
}

// Outcome renders the detailed-log text of a line result without its prefix.
func (m Messages) Outcome(r domain.LineResult) string {
	switch {
	case r.OK():
		return m.DifferenceWithNote(*r.Difference)
	case r.Outcome == domain.OutcomeFormatError:
		return m.LineFormatError
	default:
		return m.InvalidDate
	}
}

// LogLine renders one detailed-log entry.
func (m Messages) LogLine(r domain.LineResult) string {
	return fmt.Sprintf(m.LogLineFormat, r.Text, m.Outcome(r))
}
