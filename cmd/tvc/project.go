package main

import (
	"fmt"

	"github.com/rpgo/tvc-calculator/internal/config"
	"github.com/rpgo/tvc-calculator/internal/domain"
	"github.com/rpgo/tvc-calculator/internal/output"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	configPath    string
	scenario      string
	returnPct     float64
	feePct        float64
	taxSavingPct  float64
	currentAge    int
	retirementAge int
	format        string
	outputDir     string
}

func projectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}

	c := &cobra.Command{
		Use:   "project",
		Short: "Project growth and the breakeven sweep for one or more scenarios",
		Long: "Project growth from the current age to retirement and the final value for every starting age.\n" +
			"Percent flags override the configuration defaults; per-scenario overrides in the file still apply.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfiguration(cmd)
			if err != nil {
				return err
			}

			engine := root.newEngine(cmd.ErrOrStderr())
			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if opts.outputDir == "" {
				return output.GenerateReport(results, opts.format, cmd.OutOrStdout())
			}
			paths, err := output.GenerateReportFiles(results, opts.format, opts.outputDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}

	d := domain.DefaultScenarioParameters()
	c.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (optional)")
	c.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "run only the named scenario from the configuration")
	c.Flags().Float64Var(&opts.returnPct, "return", d.ExpectedReturn*100, "expected annual return before fees, percent (0-15)")
	c.Flags().Float64Var(&opts.feePct, "fee", d.FeeTVC*100, "TVC annual fee, percent")
	c.Flags().Float64Var(&opts.taxSavingPct, "tax-saving", d.TaxSavingPercent*100, "tax saving applied to the non-TVC initial contribution, percent")
	c.Flags().IntVar(&opts.currentAge, "age", d.CurrentAge, "current age")
	c.Flags().IntVar(&opts.retirementAge, "retirement-age", d.RetirementAge, "retirement age")
	c.Flags().StringVarP(&opts.format, "format", "f", "console", "output format (see 'tvc formats'), or 'all' with --output-dir")
	c.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "write timestamped report files to this directory instead of stdout")
	return c
}

// loadConfiguration reads --config when given and applies explicitly set flags to the defaults.
func (o *projectOptions) loadConfiguration(cmd *cobra.Command) (*domain.Configuration, error) {
	parser := config.NewInputParser()

	cfg := &domain.Configuration{Defaults: domain.DefaultScenarioParameters()}
	if o.configPath != "" {
		loaded, err := parser.LoadFromFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("return") {
		cfg.Defaults.ExpectedReturn = o.returnPct / 100
	}
	if flags.Changed("fee") {
		cfg.Defaults.FeeTVC = o.feePct / 100
	}
	if flags.Changed("tax-saving") {
		cfg.Defaults.TaxSavingPercent = o.taxSavingPct / 100
	}
	if flags.Changed("age") {
		cfg.Defaults.CurrentAge = o.currentAge
	}
	if flags.Changed("retirement-age") {
		cfg.Defaults.RetirementAge = o.retirementAge
	}

	if o.scenario != "" {
		var picked []domain.NamedScenario
		for _, s := range cfg.Scenarios {
			if s.Name == o.scenario {
				picked = append(picked, s)
			}
		}
		if len(picked) == 0 {
			return nil, fmt.Errorf("scenario %q not found in configuration", o.scenario)
		}
		cfg.Scenarios = picked
	}

	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return cfg, nil
}
