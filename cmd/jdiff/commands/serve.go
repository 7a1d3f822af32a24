package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jdiff/shamsi-calculator/internal/calculation"
	"github.com/jdiff/shamsi-calculator/internal/logger"
	"github.com/jdiff/shamsi-calculator/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Serve the date difference API, health check and Prometheus metrics over HTTP.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if root.verbose {
				cfg.Logger.Level = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid flags")
			}

			appLogger, err := logger.New(cfg.Logger)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			defer appLogger.Close()

			engine := calculation.NewEngineWithSettings(cfg.Engine)
			engine.SetLogger(appLogger.WithComponent("engine"))

			srv, err := server.New(cfg, engine, appLogger)
			if err != nil {
				return errors.Wrap(err, "failed to initialize server")
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "shutting down server")
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}
