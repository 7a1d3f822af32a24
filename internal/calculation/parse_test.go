package calculation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected jalali.Date
	}{
		{"canonical", "1370/01/10", jalali.MustNew(1370, 1, 10)},
		{"surrounding whitespace", "  1403/12/30\t", jalali.MustNew(1403, 12, 30)},
		{"no zero padding", "1370/1/1", jalali.MustNew(1370, 1, 1)},
		{"Persian digits", "۱۴۰۳/۰۱/۰۱", jalali.MustNew(1403, 1, 1)},
		{"Arabic-Indic digits", "١٣٧٠/٠٥/١١", jalali.MustNew(1370, 5, 11)},
		{"leap Esfand 30", "1399/12/30", jalali.MustNew(1399, 12, 30)},
		{"Shahrivar 31", "1402/06/31", jalali.MustNew(1402, 6, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		reason     string
		rangeError bool
	}{
		{"invalid month", "1370/13/01", "month 13 out of range [1,12]", true},
		{"wrong separator", "1370-01-01", "expected 3 components separated by '/', got 1", false},
		{"too many components", "1370/01/01/01", "got 4", false},
		{"too few components", "1370/01", "got 2", false},
		{"empty", "", "got 1", false},
		{"empty component", "1370//01", "month component \"\" is not an integer", false},
		{"letters", "1370/ab/01", "month component \"ab\" is not an integer", false},
		{"sign", "+1370/01/01", "year component \"+1370\" is not an integer", false},
		{"inner whitespace", "1370/ 1/01", "month component \" 1\" is not an integer", false},
		{"decimal", "1370/01/1.5", "day component \"1.5\" is not an integer", false},
		{"Esfand 30 in common year", "1400/12/30", "day 30 out of range [1,29]", true},
		{"Mehr 31", "1400/07/31", "day 31 out of range [1,30]", true},
		{"year zero", "0/01/01", "year 0 out of range", true},
		{"huge year", "99999999999999999999/01/01", "not an integer", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, SideNone, pe.Side)
			assert.Contains(t, pe.Reason, tt.reason)
			assert.Equal(t, tt.rangeError, errors.Is(err, jalali.ErrOutOfRange))
			assert.Contains(t, errors.FlattenHints(err), "YYYY/MM/DD")
		})
	}
}

func TestSplitPair(t *testing.T) {
	a, b, err := SplitPair(" 1370/01/01 , 1375/02/15 ", ",")
	require.NoError(t, err)
	assert.Equal(t, "1370/01/01", a)
	assert.Equal(t, "1375/02/15", b)

	a, b, err = SplitPair("1370/01/01;1375/02/15", ";")
	require.NoError(t, err)
	assert.Equal(t, "1370/01/01", a)
	assert.Equal(t, "1375/02/15", b)

	tests := []struct {
		line   string
		fields int
	}{
		{"1370/01/01,1375/02/15,extra", 3},
		{"1370/01/01", 1},
		{"1370/01/01 1375/02/15", 1},
		{",,,", 4},
	}
	for _, tt := range tests {
		_, _, err := SplitPair(tt.line, "")
		require.Error(t, err, tt.line)
		assert.ErrorIs(t, err, ErrInvalidLine)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, tt.fields, fe.Fields)
		assert.Equal(t, DefaultSeparator, fe.Separator)
	}
}

func TestSplitLines(t *testing.T) {
	lines := splitLines("\n1370/01/01,1375/02/15\r\n   \n1380/11/05,1382/01/20\n\n")
	require.Len(t, lines, 2)
	assert.Equal(t, numberedLine{number: 2, text: "1370/01/01,1375/02/15"}, lines[0])
	assert.Equal(t, numberedLine{number: 4, text: "1380/11/05,1382/01/20"}, lines[1])
	assert.Empty(t, splitLines(" \n\t\r\n"))
}
