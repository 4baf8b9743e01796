package main

import (
	"io"
	"log/slog"

	"github.com/rpgo/tvc-calculator/internal/calculation"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "tvc",
		Short:        "Compare a fee-bearing TVC vehicle against a tax-haircut non-TVC vehicle",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		projectCmd(opts),
		serveCmd(opts),
		exampleConfigCmd(),
		formatsCmd(),
	)
	return cmd
}

// newEngine builds a calculation engine logging to w at the level selected by --debug
func (o *rootOptions) newEngine(w io.Writer) *calculation.CalculationEngine {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	engine := calculation.NewCalculationEngine()
	engine.Debug = o.debug
	engine.SetLogger(calculation.NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))))
	return engine
}
