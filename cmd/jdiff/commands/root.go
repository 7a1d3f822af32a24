// Package commands implements the jdiff command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/jdiff/shamsi-calculator/internal/config"
	"github.com/jdiff/shamsi-calculator/internal/logger"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile string
	verbose    bool
}

// NewRootCommand builds the jdiff command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "jdiff",
		Short: "Jalali date difference calculator",
		Long: `jdiff measures the distance between pairs of Jalali (Persian solar) dates
in whole years and months. Pairs are read one per line as "YYYY/MM/DD,YYYY/MM/DD".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file (JDIFF_* environment variables override it)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newDiffCommand(opts))
	rootCmd.AddCommand(newConvertCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadConfig reads the configuration named by --config.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configFile)
}

// cliLogger builds the logger for one-shot commands. Below --verbose, info
// chatter is suppressed so it does not interleave with the report.
func (o *rootOptions) cliLogger(cfg config.LoggerConfig) (*logger.Logger, error) {
	switch {
	case o.verbose:
		cfg.Level = "debug"
	case cfg.Level == "debug" || cfg.Level == "info":
		cfg.Level = "warn"
	}
	return logger.New(cfg)
}
