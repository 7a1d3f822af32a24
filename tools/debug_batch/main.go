package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/jdiff/shamsi-calculator/internal/calculation"
	"github.com/jdiff/shamsi-calculator/internal/config"
	"github.com/jdiff/shamsi-calculator/internal/logger"
)

// Runs a pairs file through the engine with debug logging and prints every
// failed line with its full error chain and hints.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_batch <pairs-file> [config-file]")
		return
	}
	cfgFile := ""
	if len(os.Args) > 2 {
		cfgFile = os.Args[2]
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		panic(err)
	}
	cfg.Logger.Level = "debug"
	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer log.Close()

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calculation.NewEngineWithSettings(cfg.Engine)
	engine.SetLogger(log)
	report, err := engine.ProcessText(context.Background(), string(data))
	if err != nil {
		fmt.Printf("%+v\n", err)
		return
	}

	for _, r := range report.Lines {
		if r.OK() {
			fmt.Printf("%4d ok    %-25s %dy %dm reversed=%t months=%d\n", r.Number, r.Text,
				r.Difference.Years, r.Difference.Months, r.Difference.Reversed, r.Difference.TotalMonths)
			continue
		}
		fmt.Printf("%4d %-5s %-25s %s\n", r.Number, r.Outcome, r.Text, r.Error)
		// re-run the failing line to recover the typed error
		a, b, err := calculation.SplitPair(r.Text, engine.Separator)
		if err == nil {
			_, err = engine.Difference(a, b)
		}
		if err != nil {
			for _, h := range errors.GetAllHints(err) {
				fmt.Printf("       hint: %s\n", h)
			}
		}
	}
	fmt.Printf("processed=%d succeeded=%d failed=%d\n", report.Processed, report.Succeeded, report.Failed)
}
