// SPDX-License-Identifier: MIT

// Package cli implements the coactive command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coactive/config"
)

// DefaultConfigFile is read when present and --config is not given.
const DefaultConfigFile = "coactive.yaml"

// ConfigEnv names the environment variable consulted when --config is unset.
const ConfigEnv = "COACTIVE_CONFIG"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config  string
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the coactive CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "coactive",
		Short: "Co-activation network analysis",
		Long: `Build co-activation networks from per-region keycode sets.

Counts shared keycodes between regions, keeps the pairs that pass a binomial
likelihood-ratio test, thresholds the Jaccard graph by cost and reports
degree, clustering, centrality, path length and influence.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "config file (default $"+ConfigEnv+" or "+DefaultConfigFile+")")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewControlCommand(opts))

	return cmd
}

// loadConfig reads the configuration named by the flags. An explicit path
// must exist; the default file is optional.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	path := opts.Config
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	var err error
	if path != "" {
		err = config.Load(path, cfg)
	} else {
		err = config.LoadWithDefaults(DefaultConfigFile, cfg)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	return cfg, nil
}

// newLogger builds the process logger on w and installs it as default.
// --verbose lowers the level to debug.
func newLogger(cfg config.LogConfig, verbose bool, w io.Writer) *slog.Logger {
	level := cfg.Level
	if verbose {
		level = slog.LevelDebug
	}
	hOpts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == config.LogJSON {
		h = slog.NewJSONHandler(w, hOpts)
	} else {
		h = slog.NewTextHandler(w, hOpts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}
