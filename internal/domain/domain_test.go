package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisValid(t *testing.T) {
	assert.True(t, BasisGregorian.Valid())
	assert.True(t, BasisJalali.Valid())
	assert.False(t, Basis("").Valid())
	assert.False(t, Basis("hijri").Valid())
}

func TestDifferenceDecimalYears(t *testing.T) {
	d := Difference{Years: 3, Months: 10, TotalMonths: 46}
	assert.False(t, d.IsZero())
	assert.Equal(t, "3.83", d.DecimalYears().Round().String())

	assert.True(t, Difference{}.IsZero())
}

func TestLineResultOK(t *testing.T) {
	assert.True(t, LineResult{Outcome: OutcomeSuccess, Difference: &Difference{}}.OK())
	assert.False(t, LineResult{Outcome: OutcomeSuccess}.OK())
	assert.False(t, LineResult{Outcome: OutcomeParseError, Difference: &Difference{}}.OK())
}

func TestReportSuccesses(t *testing.T) {
	r := &Report{
		Lines: []LineResult{
			{Number: 1, Outcome: OutcomeSuccess, Difference: &Difference{Years: 1}},
			{Number: 2, Outcome: OutcomeFormatError},
			{Number: 4, Outcome: OutcomeSuccess, Difference: &Difference{Years: 2}},
		},
		Succeeded: 2,
	}

	got := r.Successes()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Number)
	assert.Equal(t, 4, got[1].Number)
}

func TestLineResultJSON(t *testing.T) {
	data, err := json.Marshal(LineResult{Number: 3, Text: "a", Outcome: OutcomeFormatError, Error: "bad", FieldCount: 1})
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, float64(3), m["line"])
	assert.Equal(t, "format_error", m["outcome"])
	assert.NotContains(t, m, "difference")
	assert.NotContains(t, m, "error_side")
}
