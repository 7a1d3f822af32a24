package output

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/jdiff/shamsi-calculator/internal/domain"
)

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return yaml.Marshal(report)
}

// GenerateReport renders report in the named format and writes it to w.
func GenerateReport(w io.Writer, report *domain.Report, format string, opts Options) error {
	f, err := NewFormatter(format, opts)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return errors.Wrapf(err, "formatting %s report", f.Name())
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "writing report")
	}
	return nil
}
