package calculation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("ERROR", format, args...) }

func fixedNow() time.Time { return time.Date(2025, 3, 21, 10, 0, 0, 0, time.UTC) }

func TestProcessTextMixedLines(t *testing.T) {
	input := strings.Join([]string{
		"1370/01/01,1375/02/15",
		"",
		"1370/01/01,1375/02/15,extra",
		"1370/13/01,1375/02/15",
		"   ",
		"1375/02/15,1370/01/01",
		"1370-01-01,1375/02/15",
		"1390/05/11 , 1399/11/12",
	}, "\n")

	e := NewEngine()
	e.Now = fixedNow
	report, err := e.ProcessText(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, fixedNow(), report.GeneratedAt)
	assert.Equal(t, domain.BasisGregorian, report.Basis)
	assert.Equal(t, 6, report.Processed)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 3, report.Failed)

	require.Len(t, report.Lines, 6)
	numbers := make([]int, 0, len(report.Lines))
	for _, l := range report.Lines {
		numbers = append(numbers, l.Number)
	}
	assert.Equal(t, []int{1, 3, 4, 6, 7, 8}, numbers)

	first := report.Lines[0]
	require.True(t, first.OK())
	assert.Equal(t, 5, first.Difference.Years)
	assert.Equal(t, 1, first.Difference.Months)
	assert.False(t, first.Difference.Reversed)

	extra := report.Lines[1]
	assert.Equal(t, domain.OutcomeFormatError, extra.Outcome)
	assert.Equal(t, 3, extra.FieldCount)
	assert.Nil(t, extra.Difference)
	assert.Equal(t, "1370/01/01,1375/02/15,extra", extra.Text)

	badMonth := report.Lines[2]
	assert.Equal(t, domain.OutcomeParseError, badMonth.Outcome)
	assert.Equal(t, "first", badMonth.ErrorSide)
	assert.Equal(t, "1370/13/01", badMonth.ErrorText)

	reversed := report.Lines[3]
	require.True(t, reversed.OK())
	assert.True(t, reversed.Difference.Reversed)
	assert.Equal(t, 5, reversed.Difference.Years)
	assert.Equal(t, 1, reversed.Difference.Months)

	badSep := report.Lines[4]
	assert.Equal(t, domain.OutcomeParseError, badSep.Outcome)
	assert.Equal(t, "1370-01-01", badSep.ErrorText)

	last := report.Lines[5]
	require.True(t, last.OK())
	assert.Equal(t, "1390/05/11 , 1399/11/12", last.Text)
	assert.Equal(t, 9, last.Difference.Years)
	assert.Equal(t, 5, last.Difference.Months)

	require.NotNil(t, report.Summary)
	assert.Equal(t, 3, report.Summary.Count)
	assert.Equal(t, 1, report.Summary.Reversed)
	assert.Equal(t, "5.08", report.Summary.MinYears.String())
	assert.Equal(t, "9.42", report.Summary.MaxYears.String())
	assert.Equal(t, "6.53", report.Summary.MeanYears.String())
}

func TestProcessTextPreservesOrderWithManyWorkers(t *testing.T) {
	var b strings.Builder
	want := make([]int, 0, 500)
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&b, "1300/01/01,%d/01/01\n", 1300+i)
		want = append(want, i*12)
	}

	e := NewEngineWithSettings(domain.EngineSettings{Workers: 16, Basis: domain.BasisJalali})
	report, err := e.ProcessText(context.Background(), b.String())
	require.NoError(t, err)
	require.Len(t, report.Lines, 500)

	got := make([]int, 0, 500)
	for i, l := range report.Lines {
		require.True(t, l.OK(), "line %d: %s", l.Number, l.Error)
		assert.Equal(t, i+1, l.Number)
		got = append(got, l.Difference.TotalMonths)
	}
	assert.Equal(t, want, got)
}

func TestProcessTextEmptyInput(t *testing.T) {
	e := NewEngine()
	for _, input := range []string{"", "   ", "\n\n\r\n\t"} {
		report, err := e.ProcessText(context.Background(), input)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrNoInput)
	}
}

func TestProcessTextAllLinesFail(t *testing.T) {
	report, err := NewEngine().ProcessText(context.Background(), "garbage\n1370/01/01,1400/12/30")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	assert.Nil(t, report.Summary)
	assert.Empty(t, report.Successes())
}

func TestProcessTextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine().ProcessText(ctx, "1370/01/01,1375/02/15")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessTextCustomSeparator(t *testing.T) {
	e := NewEngineWithSettings(domain.EngineSettings{Separator: ";", Basis: domain.BasisJalali, Workers: 1})
	report, err := e.ProcessText(context.Background(), "1390/05/11;1399/11/12\n1390/05/11,1399/11/12")
	require.NoError(t, err)
	require.Len(t, report.Lines, 2)
	assert.Equal(t, domain.BasisJalali, report.Basis)
	require.True(t, report.Lines[0].OK())
	assert.Equal(t, 9, report.Lines[0].Difference.Years)
	assert.Equal(t, 6, report.Lines[0].Difference.Months)
	assert.Equal(t, domain.OutcomeFormatError, report.Lines[1].Outcome)
}

func TestEngineLogsFailures(t *testing.T) {
	rec := &recordingLogger{}
	e := NewEngine()
	e.SetLogger(rec)
	_, err := e.ProcessText(context.Background(), "1370/01/01,1375/02/15\nbad")
	require.NoError(t, err)

	joined := strings.Join(rec.lines, "\n")
	assert.Contains(t, joined, "DEBUG line 2 rejected")
	assert.Contains(t, joined, "INFO processed 2 line(s): 1 succeeded, 1 failed")

	e.SetLogger(nil)
	assert.IsType(t, NopLogger{}, e.Logger)
}

func TestNewEngineWithSettingsDefaults(t *testing.T) {
	e := NewEngineWithSettings(domain.EngineSettings{})
	assert.Equal(t, domain.BasisGregorian, e.Basis)
	assert.Equal(t, DefaultSeparator, e.Separator)
	assert.GreaterOrEqual(t, e.Workers, 1)

	zero := &Engine{}
	assert.Equal(t, 1, zero.workers())
	assert.Equal(t, domain.BasisGregorian, zero.basis())
	assert.IsType(t, NopLogger{}, zero.logger())
}
