package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// Options carries presentation settings shared by all formatters.
type Options struct {
	Locale        string
	ShowGregorian bool
	ShowSummary   bool
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

// builtInFormatters maps canonical names to constructors.
var builtInFormatters = map[string]func(Options) Formatter{
	"text":    func(o Options) Formatter { return TextFormatter{Options: o} },
	"console": func(o Options) Formatter { return ConsoleFormatter{Options: o} },
	"json":    func(o Options) Formatter { return JSONFormatter{} },
	"csv":     func(o Options) Formatter { return CSVFormatter{Options: o} },
	"yaml":    func(o Options) Formatter { return YAMLFormatter{} },
}

// extensions maps canonical names to file extensions.
var extensions = map[string]string{
	"text":    "txt",
	"console": "txt",
	"json":    "json",
	"csv":     "csv",
	"yaml":    "yaml",
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"txt":         "text",
	"plain":       "text",
	"pretty":      "console",
	"color":       "console",
	"json-pretty": "json",
	"yml":         "yaml",
}

// NewFormatter returns the formatter registered under name or one of its aliases.
func NewFormatter(name string, opts Options) (Formatter, error) {
	if ctor, ok := builtInFormatters[NormalizeFormatName(name)]; ok {
		return ctor(opts), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q. Try one of: %s (aliases: %s)",
		name, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GetFormatterByName fetches a registered formatter with default options,
// or nil when name is unknown.
func GetFormatterByName(name string) Formatter {
	f, err := NewFormatter(name, Options{})
	if err != nil {
		return nil
	}
	return f
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for name := range builtInFormatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used for a formatter's output.
func Extension(f Formatter) string {
	if ext, ok := extensions[f.Name()]; ok {
		return ext
	}
	return "txt"
}

// WriteFormatted runs a formatter and writes its output to filename. An empty
// filename writes to a timestamped file in the working directory. It returns
// the name of the written file.
func WriteFormatted(f Formatter, report *domain.Report, filename string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", errors.Wrapf(err, "formatting %s report", f.Name())
	}
	if filename == "" {
		filename = fmt.Sprintf("jdiff_report_%s.%s", time.Now().Format("20060102_150405"), Extension(f))
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", errors.Wrapf(err, "writing %s", filename)
	}
	return filename, nil
}
