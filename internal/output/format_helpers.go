package output

import (
	"fmt"

	"github.com/jdiff/shamsi-calculator/internal/domain"
	"github.com/jdiff/shamsi-calculator/pkg/decimal"
	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

type lineStatus int

const (
	statusPlain lineStatus = iota
	statusPass
	statusFail
	statusNotice
	statusMuted
)

type styledLine struct {
	text   string
	status lineStatus
}

type section struct {
	heading string
	label   string
	lines   []styledLine
}

// FormatYears renders a fractional year count with its unit.
func FormatYears(m Messages, y decimal.Years) string {
	return y.String() + " " + m.YearsUnit
}

// FormatEndpoints renders the Gregorian equivalents of a measured pair.
func FormatEndpoints(d domain.Difference) string {
	return fmt.Sprintf("[%s → %s]", d.First.Gregorian, d.Second.Gregorian)
}

// layout arranges a report into the sections shared by the text formatters:
// header, simplified results, detailed log and optional summary. A report
// with no processed lines yields only the empty-input warning.
func layout(report *domain.Report, opts Options) []section {
	m := MessagesFor(opts.Locale)
	if report == nil || report.Processed == 0 {
		return []section{{lines: []styledLine{{m.EmptyInput, statusNotice}}}}
	}

	header := section{heading: m.Title}
	if !report.GeneratedAt.IsZero() {
		header.lines = append(header.lines, styledLine{fmt.Sprintf("%s: %s", m.GeneratedAt, jalali.Format(report.GeneratedAt)), statusMuted})
	}
	header.lines = append(header.lines, styledLine{fmt.Sprintf("%s: %s", m.BasisLabel, report.Basis), statusMuted})

	simplified := section{heading: m.SimplifiedHeading}
	for _, r := range report.Successes() {
		simplified.lines = append(simplified.lines, styledLine{m.Difference(*r.Difference), statusPlain})
	}
	if len(simplified.lines) == 0 {
		simplified.heading = ""
		simplified.lines = []styledLine{{m.NoSuccesses, statusNotice}}
	}

	detailed := section{heading: m.DetailedHeading, label: m.DetailedLabel}
	for _, r := range report.Lines {
		text := m.LogLine(r)
		status := statusFail
		if r.OK() {
			status = statusPass
			if opts.ShowGregorian {
				text += " " + FormatEndpoints(*r.Difference)
			}
		}
		detailed.lines = append(detailed.lines, styledLine{text, status})
	}

	sections := []section{header, simplified, detailed}
	if opts.ShowSummary && report.Summary != nil {
		s := report.Summary
		sections = append(sections, section{
			heading: m.SummaryHeading,
			lines: []styledLine{
				{fmt.Sprintf("%s: %d", m.SummaryCount, s.Count), statusPlain},
				{fmt.Sprintf("%s: %d", m.SummaryReversed, s.Reversed), statusPlain},
				{fmt.Sprintf("%s: %s", m.SummaryMin, FormatYears(m, s.MinYears)), statusPlain},
				{fmt.Sprintf("%s: %s", m.SummaryMax, FormatYears(m, s.MaxYears)), statusPlain},
				{fmt.Sprintf("%s: %s", m.SummaryMean, FormatYears(m, s.MeanYears)), statusPlain},
			},
		})
	}
	return sections
}
