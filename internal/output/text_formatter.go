package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// TextFormatter renders the plain report: the simplified result block
// followed by the detailed per-line log.
type TextFormatter struct {
	Options
}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for i, s := range layout(report, t.Options) {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		if s.heading != "" {
			fmt.Fprintln(&buf, s.heading)
			fmt.Fprintln(&buf, strings.Repeat("=", 32))
		}
		if s.label != "" {
			fmt.Fprintln(&buf, s.label)
		}
		for _, l := range s.lines {
			fmt.Fprintln(&buf, l.text)
		}
	}
	return buf.Bytes(), nil
}
