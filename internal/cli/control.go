// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

type controlFlags struct {
	inputFlags
	studies    int
	iterations int
	seed       int64
}

// NewControlCommand creates the control command.
func NewControlCommand(rootOpts *RootOptions) *cobra.Command {
	f := &controlFlags{}

	cmd := &cobra.Command{
		Use:   "control",
		Short: "Summarize a resampled control network",
		Long: `Average the Jaccard matrices of random keycode subsamples and summarize
the resulting network. The same seed always yields the same summary.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControl(cmd, rootOpts, f)
		},
	}

	f.register(cmd)
	cmd.Flags().IntVar(&f.studies, "studies", 100, "keycodes drawn per iteration")
	cmd.Flags().IntVar(&f.iterations, "iterations", 50, "number of subsamples")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "base seed (0: fixed default)")

	return cmd
}

func runControl(cmd *cobra.Command, opts *RootOptions, f *controlFlags) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	f.inputFlags.apply(cmd, cfg)
	flags := cmd.Flags()
	if flags.Changed("studies") {
		cfg.Control.Studies = f.studies
	}
	if flags.Changed("iterations") {
		cfg.Control.Iterations = f.iterations
	}
	if flags.Changed("seed") {
		cfg.Control.Seed = f.seed
	}
	cfg.Control.Enabled = true

	runner, err := newRunner(cmd, opts, cfg)
	if err != nil {
		return err
	}
	regions, err := runner.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	sum, err := runner.Control(cmd.Context(), regions)
	if err != nil {
		return WrapExitError(ExitFailure, "control network failed", err)
	}

	if opts.Format == "json" {
		return sum.WriteJSON(cmd.OutOrStdout())
	}

	return sum.WriteText(cmd.OutOrStdout())
}
