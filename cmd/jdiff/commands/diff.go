package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jdiff/shamsi-calculator/internal/calculation"
	"github.com/jdiff/shamsi-calculator/internal/config"
	"github.com/jdiff/shamsi-calculator/internal/domain"
	"github.com/jdiff/shamsi-calculator/internal/output"
)

// ErrLinesFailed is returned by "diff --fail-on-error" when any line failed.
var ErrLinesFailed = errors.New("one or more lines could not be processed")

type diffOptions struct {
	*rootOptions
	file          string
	format        string
	locale        string
	basis         string
	separator     string
	workers       int
	outputFile    string
	showGregorian bool
	summary       bool
	failOnError   bool
}

func newDiffCommand(root *rootOptions) *cobra.Command {
	opts := &diffOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "diff [PAIR...]",
		Short: "Compute year/month differences for date pairs",
		Long: `Compute the difference between the two Jalali dates of every pair.

Pairs come from the arguments, from --file (use - for stdin), or from stdin
when neither is given. Each pair is "YYYY/MM/DD,YYYY/MM/DD"; blank lines are
skipped and malformed lines are reported without stopping the batch.`,
		Example: `  jdiff diff 1384/12/12,1388/10/22
  jdiff diff -f pairs.txt --format csv --output report.csv
  printf '1370/01/01,1375/02/15\n' | jdiff diff --locale en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read pairs from file (- for stdin)")
	f.StringVar(&opts.format, "format", "", fmt.Sprintf("output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	f.StringVar(&opts.locale, "locale", "", "message language (fa, en)")
	f.StringVar(&opts.basis, "basis", "", "difference basis (gregorian, jalali)")
	f.StringVar(&opts.separator, "separator", "", "separator between the two dates of a line")
	f.IntVar(&opts.workers, "workers", 0, "number of concurrent workers (0 = one per CPU)")
	f.StringVarP(&opts.outputFile, "output", "o", "", "write the report to a file instead of stdout")
	f.BoolVar(&opts.showGregorian, "show-gregorian", false, "show Gregorian equivalents in the detailed log")
	f.BoolVar(&opts.summary, "summary", false, "append a summary of the successful lines")
	f.BoolVar(&opts.failOnError, "fail-on-error", false, "exit with an error status when any line fails")

	return cmd
}

// applyFlags overrides configuration values with explicitly set flags.
func (o *diffOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Output.Format = o.format
	}
	if f.Changed("locale") {
		cfg.App.Locale = o.locale
	}
	if f.Changed("basis") {
		cfg.Engine.Basis = domain.Basis(o.basis)
	}
	if f.Changed("separator") {
		cfg.Engine.Separator = o.separator
	}
	if f.Changed("workers") {
		cfg.Engine.Workers = o.workers
	}
	if f.Changed("show-gregorian") {
		cfg.Output.ShowGregorian = o.showGregorian
	}
	if f.Changed("summary") {
		cfg.Output.ShowSummary = o.summary
	}
	return cfg.Validate()
}

func runDiff(cmd *cobra.Command, opts *diffOptions, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if err := opts.applyFlags(cmd, cfg); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	formatter, err := output.NewFormatter(cfg.Output.Format, output.Options{
		Locale:        cfg.App.Locale,
		ShowGregorian: cfg.Output.ShowGregorian,
		ShowSummary:   cfg.Output.ShowSummary,
	})
	if err != nil {
		return err
	}

	log, err := opts.cliLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer log.Close()

	text, err := readPairs(cmd, opts.file, args)
	if err != nil {
		return err
	}

	engine := calculation.NewEngineWithSettings(cfg.Engine)
	engine.SetLogger(log.WithComponent("engine"))

	report, err := engine.ProcessText(commandContext(cmd), text)
	if errors.Is(err, calculation.ErrNoInput) {
		fmt.Fprintln(cmd.ErrOrStderr(), output.MessagesFor(cfg.App.Locale).EmptyInput)
		return err
	}
	if err != nil {
		return err
	}

	if opts.outputFile != "" {
		name, err := output.WriteFormatted(formatter, report, opts.outputFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", name)
	} else {
		data, err := formatter.Format(report)
		if err != nil {
			return errors.Wrapf(err, "formatting %s report", formatter.Name())
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}

	if opts.failOnError && report.Failed > 0 {
		return errors.Wrapf(ErrLinesFailed, "%d of %d line(s)", report.Failed, report.Processed)
	}
	return nil
}

// readPairs collects input text from arguments, a file, or stdin.
func readPairs(cmd *cobra.Command, file string, args []string) (string, error) {
	if len(args) > 0 {
		if file != "" {
			return "", errors.New("pairs given as arguments cannot be combined with --file")
		}
		return strings.Join(args, "\n"), nil
	}

	var r io.Reader = cmd.InOrStdin()
	if file != "" && file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return "", errors.Wrapf(err, "opening %s", file)
		}
		defer fh.Close()
		r = fh
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return string(data), nil
}

// commandContext returns the command's context, or Background when run
// outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
