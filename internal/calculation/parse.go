package calculation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

// DefaultSeparator splits the two dates of an input line.
const DefaultSeparator = ","

var componentNames = [3]string{"year", "month", "day"}

// ParseDate parses a YYYY/MM/DD Jalali date. Surrounding whitespace is
// ignored; each component must consist of decimal digits only (ASCII, Persian
// or Arabic-Indic). Any other shape, or a date outside the calendar, yields a
// *ParseError.
func ParseDate(s string) (jalali.Date, error) {
	text := strings.TrimSpace(s)
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return jalali.Date{}, newParseError(text,
			fmt.Sprintf("expected 3 components separated by '/', got %d", len(parts)), nil)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := parseComponent(p)
		if err != nil {
			return jalali.Date{}, newParseError(text,
				fmt.Sprintf("%s component %q is not an integer", componentNames[i], p), err)
		}
		fields[i] = n
	}

	d, err := jalali.New(fields[0], fields[1], fields[2])
	if err != nil {
		return jalali.Date{}, newParseError(text, err.Error(), err)
	}
	return d, nil
}

// parseComponent accepts a non-empty run of decimal digits.
func parseComponent(p string) (int, error) {
	if p == "" {
		return 0, strconv.ErrSyntax
	}
	var b strings.Builder
	for _, r := range p {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		default:
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(b.String())
}

// SplitPair splits an input line into its two trimmed date fields. A line
// with any other number of fields yields a *FormatError.
func SplitPair(line, sep string) (string, string, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	text := strings.TrimSpace(line)
	parts := strings.Split(text, sep)
	if len(parts) != 2 {
		return "", "", &FormatError{Line: text, Fields: len(parts), Separator: sep}
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// numberedLine is a non-blank input line with its 1-based position.
type numberedLine struct {
	number int
	text   string
}

// splitLines drops blank lines and accepts both \n and \r\n endings.
func splitLines(text string) []numberedLine {
	var out []numberedLine
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		out = append(out, numberedLine{number: i + 1, text: line})
	}
	return out
}
