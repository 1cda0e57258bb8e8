// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coactive/config"
	"github.com/katalvlaran/coactive/pipeline"
)

// inputFlags are shared by analyze and control.
type inputFlags struct {
	path        string
	format      string
	domain      string
	labelTrim   int
	parallelism int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "input", "i", "", "input CSV file or workspace directory")
	cmd.Flags().StringVar(&f.format, "input-format", config.FormatExcel, "input layout (excel|workspace)")
	cmd.Flags().StringVar(&f.domain, "domain", "", "restrict keycodes to a configured domain")
	cmd.Flags().IntVar(&f.labelTrim, "label-trim", 0, "characters cut from the end of region names")
	cmd.Flags().IntVarP(&f.parallelism, "parallelism", "p", 1, "worker count")
}

// apply copies the flags the user set onto cfg.
func (f *inputFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path = f.path
	}
	if flags.Changed("input-format") {
		cfg.Input.Format = f.format
	}
	if flags.Changed("domain") {
		cfg.Input.Domain = f.domain
	}
	if flags.Changed("label-trim") {
		cfg.Input.LabelTrim = f.labelTrim
	}
	if flags.Changed("parallelism") {
		cfg.Analysis.Parallelism = f.parallelism
	}
}

type analyzeFlags struct {
	inputFlags
	alpha      float64
	decision   string
	total      int
	cost       float64
	minWeight  float64
	topN       int
	zTransform bool
	legacy     bool
	control    bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full co-activation analysis",
		Long: `Run every analysis stage on the configured input and print a report.

Flags override the values of the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, rootOpts, f)
		},
	}

	f.register(cmd)
	cmd.Flags().Float64Var(&f.alpha, "alpha", 3.84, "significance level")
	cmd.Flags().StringVar(&f.decision, "decision", config.DecisionLiteral, "decision rule (literal|chisquare)")
	cmd.Flags().IntVar(&f.total, "total", 0, "total number of contrasts (0: universe size)")
	cmd.Flags().Float64Var(&f.cost, "cost", 1, "fraction of possible edges to keep")
	cmd.Flags().Float64Var(&f.minWeight, "min-weight", 0, "drop edges below this weight")
	cmd.Flags().IntVarP(&f.topN, "top", "n", 5, "ranked entries per metric")
	cmd.Flags().BoolVar(&f.zTransform, "z-transform", false, "z-transform Jaccard weights")
	cmd.Flags().BoolVar(&f.legacy, "legacy-offset", false, "use the historical cost cut position")
	cmd.Flags().BoolVar(&f.control, "control", false, "also summarize a control network")

	return cmd
}

func (f *analyzeFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f.inputFlags.apply(cmd, cfg)
	flags := cmd.Flags()
	a := &cfg.Analysis
	if flags.Changed("alpha") {
		a.Alpha = f.alpha
	}
	if flags.Changed("decision") {
		a.Decision = f.decision
	}
	if flags.Changed("total") {
		a.Total = f.total
	}
	if flags.Changed("cost") {
		a.Cost = f.cost
	}
	if flags.Changed("min-weight") {
		a.MinWeight = f.minWeight
	}
	if flags.Changed("top") {
		a.TopN = f.topN
	}
	if flags.Changed("z-transform") {
		a.ZTransform = f.zTransform
	}
	if flags.Changed("legacy-offset") {
		a.LegacyOffset = f.legacy
	}
	if flags.Changed("control") {
		cfg.Control.Enabled = f.control
	}
}

func runAnalyze(cmd *cobra.Command, opts *RootOptions, f *analyzeFlags) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	f.apply(cmd, cfg)

	runner, err := newRunner(cmd, opts, cfg)
	if err != nil {
		return err
	}
	regions, err := runner.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	rep, err := runner.Analyze(cmd.Context(), regions)
	if err != nil {
		return WrapExitError(ExitFailure, "analysis failed", err)
	}

	if opts.Format == "json" {
		return rep.WriteJSON(cmd.OutOrStdout())
	}

	return rep.WriteText(cmd.OutOrStdout())
}

func newRunner(cmd *cobra.Command, opts *RootOptions, cfg *config.Config) (*pipeline.Runner, error) {
	logger := newLogger(cfg.Log, opts.Verbose, cmd.ErrOrStderr())
	runner, err := pipeline.NewRunner(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	logger.Debug("configuration resolved",
		"input", cfg.Input.Path,
		"decision", cfg.Analysis.Decision,
		"cost", cfg.Analysis.Cost,
	)

	return runner, nil
}
