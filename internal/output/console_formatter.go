package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// Adaptive light/dark palette
var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMute = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorHead = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHead)
	labelStyle   = lipgloss.NewStyle().Italic(true)
	passStyle    = lipgloss.NewStyle().Foreground(colorPass)
	failStyle    = lipgloss.NewStyle().Foreground(colorFail)
	noticeStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMute)
	blockStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

// ConsoleFormatter renders the same sections as TextFormatter with terminal
// colors. Colors degrade to plain text when the output is not a terminal.
type ConsoleFormatter struct {
	Options
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	blocks := make([]string, 0, 4)
	for _, s := range layout(report, c.Options) {
		var b strings.Builder
		if s.heading != "" {
			b.WriteString(headingStyle.Render(s.heading))
			b.WriteString("\n")
		}
		if s.label != "" {
			b.WriteString(labelStyle.Render(s.label))
			b.WriteString("\n")
		}
		lines := make([]string, 0, len(s.lines))
		for _, l := range s.lines {
			lines = append(lines, styleFor(l.status).Render(l.text))
		}
		b.WriteString(blockStyle.Render(strings.Join(lines, "\n")))
		blocks = append(blocks, b.String())
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

func styleFor(s lineStatus) lipgloss.Style {
	switch s {
	case statusPass:
		return passStyle
	case statusFail:
		return failStyle
	case statusNotice:
		return noticeStyle
	case statusMuted:
		return mutedStyle
	default:
		return lipgloss.NewStyle()
	}
}
