package decimal

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Years represents a span of time as a decimal number of years
type Years struct {
	decimal.Decimal
}

// NewYearsFromMonths creates a Years value from a whole number of months
func NewYearsFromMonths(months int) Years {
	return Years{decimal.NewFromInt(int64(months)).Div(twelve)}
}

// NewYearsFromString creates a Years value from a string
func NewYearsFromString(value string) (Years, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Years{}, err
	}
	return Years{d}, nil
}

// Round rounds to two decimal places
func (y Years) Round() Years {
	return Years{y.Decimal.Round(2)}
}

// Months converts back to the nearest whole number of months
func (y Years) Months() int {
	return int(y.Decimal.Mul(twelve).Round(0).IntPart())
}

// Add adds another span
func (y Years) Add(other Years) Years {
	return Years{y.Decimal.Add(other.Decimal)}
}

// LessThan checks if this span is shorter than another
func (y Years) LessThan(other Years) bool {
	return y.Decimal.LessThan(other.Decimal)
}

// GreaterThan checks if this span is longer than another
func (y Years) GreaterThan(other Years) bool {
	return y.Decimal.GreaterThan(other.Decimal)
}

// Equal checks if two spans are equal
func (y Years) Equal(other Years) bool {
	return y.Decimal.Equal(other.Decimal)
}

// Min returns the shorter of two spans
func Min(a, b Years) Years {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the longer of two spans
func Max(a, b Years) Years {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Mean returns the arithmetic mean of the spans, or zero for an empty slice
func Mean(values []Years) Years {
	if len(values) == 0 {
		return Zero()
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v.Decimal)
	}
	return Years{sum.Div(decimal.NewFromInt(int64(len(values))))}
}

// Zero returns a zero span
func Zero() Years {
	return Years{decimal.Zero}
}

// String returns the value with two decimal places
func (y Years) String() string {
	return y.Decimal.StringFixed(2)
}

// MarshalJSON emits the two-decimal representation as a JSON number
func (y Years) MarshalJSON() ([]byte, error) {
	return []byte(y.String()), nil
}

// MarshalYAML emits the two-decimal representation
func (y Years) MarshalYAML() (interface{}, error) {
	return y.String(), nil
}
