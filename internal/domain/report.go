package domain

import (
	"time"

	"github.com/jdiff/shamsi-calculator/pkg/decimal"
)

// Outcome classifies how a single input line was processed.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeFormatError Outcome = "format_error"
	OutcomeParseError  Outcome = "parse_error"
)

// LineResult is the outcome of one non-blank input line
type LineResult struct {
	Number     int         `json:"line" yaml:"line"`
	Text       string      `json:"text" yaml:"text"`
	Outcome    Outcome     `json:"outcome" yaml:"outcome"`
	Difference *Difference `json:"difference,omitempty" yaml:"difference,omitempty"`

	// Error details, set when Outcome is not OutcomeSuccess
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorSide  string `json:"error_side,omitempty" yaml:"error_side,omitempty"`
	ErrorText  string `json:"error_text,omitempty" yaml:"error_text,omitempty"`
	FieldCount int    `json:"field_count,omitempty" yaml:"field_count,omitempty"`
}

// OK reports whether the line produced a difference.
func (r LineResult) OK() bool {
	return r.Outcome == OutcomeSuccess && r.Difference != nil
}

// Summary aggregates the successful lines of a report
type Summary struct {
	Count     int           `json:"count" yaml:"count"`
	Reversed  int           `json:"reversed" yaml:"reversed"`
	MinYears  decimal.Years `json:"min_years" yaml:"min_years"`
	MaxYears  decimal.Years `json:"max_years" yaml:"max_years"`
	MeanYears decimal.Years `json:"mean_years" yaml:"mean_years"`
}

// Report holds the per-line results of one batch in input order
type Report struct {
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Basis       Basis        `json:"basis" yaml:"basis"`
	Lines       []LineResult `json:"lines" yaml:"lines"`
	Processed   int          `json:"processed" yaml:"processed"`
	Succeeded   int          `json:"succeeded" yaml:"succeeded"`
	Failed      int          `json:"failed" yaml:"failed"`
	Summary     *Summary     `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Successes returns the successful lines in input order.
func (r *Report) Successes() []LineResult {
	out := make([]LineResult, 0, r.Succeeded)
	for _, l := range r.Lines {
		if l.OK() {
			out = append(out, l)
		}
	}
	return out
}
