package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdiff/shamsi-calculator/internal/domain"
	"github.com/jdiff/shamsi-calculator/pkg/decimal"
)

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "fa", MessagesFor("fa").Locale)
	assert.Equal(t, "en", MessagesFor(" EN ").Locale)
	assert.Equal(t, "fa", MessagesFor("").Locale)
	assert.Equal(t, "fa", MessagesFor("de").Locale)
}

func TestMessagesLogLine(t *testing.T) {
	diff := &domain.Difference{Years: 9, Months: 5, TotalMonths: 113}
	reversed := &domain.Difference{Years: 0, Months: 3, TotalMonths: 3, Reversed: true}

	tests := []struct {
		name   string
		result domain.LineResult
		fa     string
		en     string
	}{
		{
			name:   "success",
			result: domain.LineResult{Text: "1390/05/11,1399/11/12", Outcome: domain.OutcomeSuccess, Difference: diff},
			fa:     "خط «1390/05/11,1399/11/12»: 9 سال و 5 ماه",
			en:     "Line «1390/05/11,1399/11/12»: 9 years and 5 months",
		},
		{
			name:   "reversed",
			result: domain.LineResult{Text: "1400/04/01,1400/01/01", Outcome: domain.OutcomeSuccess, Difference: reversed},
			fa:     "خط «1400/04/01,1400/01/01»: 0 سال و 3 ماه (تاریخ دوم کوچکتر از تاریخ اول است)",
			en:     "Line «1400/04/01,1400/01/01»: 0 years and 3 months (second date precedes first)",
		},
		{
			name:   "format error",
			result: domain.LineResult{Text: "1400/01/01", Outcome: domain.OutcomeFormatError},
			fa:     "خط «1400/01/01»: خطا در فرمت خط. باید دو تاریخ جدا شده با کاما باشد.",
			en:     "Line «1400/01/01»: Line format error. Expected two dates separated by a comma.",
		},
		{
			name:   "parse error",
			result: domain.LineResult{Text: "1400/13/01,1400/01/01", Outcome: domain.OutcomeParseError},
			fa:     "خط «1400/13/01,1400/01/01»: خطا: فرمت تاریخ وارد شده نامعتبر است. لطفاً از فرمت 'YYYY/MM/DD' استفاده کنید.",
			en:     "Line «1400/13/01,1400/01/01»: Error: invalid date format. Please use 'YYYY/MM/DD'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fa, MessagesFor("fa").LogLine(tt.result))
			assert.Equal(t, tt.en, MessagesFor("en").LogLine(tt.result))
		})
	}
}

func TestMessagesDifferenceOmitsNote(t *testing.T) {
	d := domain.Difference{Years: 1, Months: 2, Reversed: true}
	assert.Equal(t, "1 سال و 2 ماه", MessagesFor("fa").Difference(d))
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "3.83 years", FormatYears(MessagesFor("en"), decimal.NewYearsFromMonths(46).Round()))
	assert.Equal(t, "0.00 سال", FormatYears(MessagesFor("fa"), decimal.Zero()))
}
