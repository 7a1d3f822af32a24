package calculation

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/jdiff/shamsi-calculator/internal/domain"
	"github.com/jdiff/shamsi-calculator/pkg/decimal"
)

// Engine turns lines of date pairs into per-line results.
// An Engine holds no per-batch state and may be shared between goroutines.
type Engine struct {
	Basis     domain.Basis
	Separator string
	Workers   int
	Logger    Logger
	Now       func() time.Time
}

// NewEngine creates an engine measuring on the Gregorian basis with one
// worker per CPU
func NewEngine() *Engine {
	return &Engine{
		Basis:     domain.BasisGregorian,
		Separator: DefaultSeparator,
		Workers:   runtime.NumCPU(),
		Logger:    NopLogger{},
		Now:       time.Now,
	}
}

// NewEngineWithSettings creates an engine from configured settings, falling
// back to defaults for zero values
func NewEngineWithSettings(s domain.EngineSettings) *Engine {
	e := NewEngine()
	if s.Basis != "" {
		e.Basis = s.Basis
	}
	if s.Separator != "" {
		e.Separator = s.Separator
	}
	if s.Workers > 0 {
		e.Workers = s.Workers
	}
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Difference measures one pair on the engine's basis.
func (e *Engine) Difference(a, b string) (domain.Difference, error) {
	return computeDifference(a, b, e.basis())
}

// ProcessLine classifies a single input line. It never fails: malformed
// input is reported through the result's Outcome.
func (e *Engine) ProcessLine(number int, line string) domain.LineResult {
	a, b, err := SplitPair(line, e.Separator)
	if err != nil {
		var fe *FormatError
		errors.As(err, &fe)
		return domain.LineResult{
			Number:     number,
			Text:       fe.Line,
			Outcome:    domain.OutcomeFormatError,
			Error:      err.Error(),
			FieldCount: fe.Fields,
		}
	}

	res := domain.LineResult{Number: number, Text: strings.TrimSpace(line)}
	diff, err := e.Difference(a, b)
	if err != nil {
		res.Outcome = domain.OutcomeParseError
		res.Error = err.Error()
		var pe *ParseError
		if errors.As(err, &pe) {
			res.ErrorSide = pe.Side.String()
			res.ErrorText = pe.Text
		}
		return res
	}
	res.Outcome = domain.OutcomeSuccess
	res.Difference = &diff
	return res
}

// ProcessText processes every non-blank line of text, preserving input order
// in the report. Lines are measured concurrently on up to Workers goroutines.
// It returns ErrNoInput when text holds no non-blank line.
func (e *Engine) ProcessText(ctx context.Context, text string) (*domain.Report, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrNoInput
	}
	e.logger().Debugf("processing %d line(s) on %s basis", len(lines), e.basis())

	results := make([]domain.LineResult, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, l := range lines {
		i, l := i, l
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.ProcessLine(l.number, l.text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "processing lines")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "processing lines")
	}

	report := &domain.Report{
		GeneratedAt: e.now(),
		Basis:       e.basis(),
		Lines:       results,
		Processed:   len(results),
	}
	for _, r := range results {
		if r.OK() {
			report.Succeeded++
			continue
		}
		report.Failed++
		e.logger().Debugf("line %d rejected: %s", r.Number, r.Error)
	}
	report.Summary = Summarize(results)
	e.logger().Infof("processed %d line(s): %d succeeded, %d failed", report.Processed, report.Succeeded, report.Failed)
	return report, nil
}

// Summarize aggregates the successful results. It returns nil when there are none.
func Summarize(results []domain.LineResult) *domain.Summary {
	var spans []decimal.Years
	s := &domain.Summary{}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		y := r.Difference.DecimalYears()
		if len(spans) == 0 {
			s.MinYears, s.MaxYears = y, y
		}
		s.MinYears = decimal.Min(s.MinYears, y)
		s.MaxYears = decimal.Max(s.MaxYears, y)
		if r.Difference.Reversed {
			s.Reversed++
		}
		spans = append(spans, y)
	}
	if len(spans) == 0 {
		return nil
	}
	s.Count = len(spans)
	s.MinYears = s.MinYears.Round()
	s.MaxYears = s.MaxYears.Round()
	s.MeanYears = decimal.Mean(spans).Round()
	return s
}

func (e *Engine) basis() domain.Basis {
	if e.Basis.Valid() {
		return e.Basis
	}
	return domain.BasisGregorian
}

func (e *Engine) workers() int {
	if e.Workers < 1 {
		return 1
	}
	return e.Workers
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
