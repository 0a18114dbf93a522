// SPDX-License-Identifier: MIT

// Package cmd implements the linalg command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg Config
	log *zap.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "linalg: %v\n", err)
	}

	return err
}

// NewRootCommand builds a fresh command tree. Each call has its own state,
// so tests may run several trees side by side.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: zap.NewNop()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "linalg",
		Short: "Dense matrix determinant, inverse and product",
		Long: `linalg reads matrices from YAML files (a list of equal-length rows,
optionally under a top-level "matrix" key; ".zst" files are decompressed)
and prints determinants, inverses and products.

Examples:
  linalg det a.yaml b.yaml
  linalg det --method cofactor a.yaml
  linalg inverse --tolerance 1e-12 a.yaml
  linalg mul a.yaml b.yaml
  linalg random --rows 4 --cols 4 --seed 7 --out a.yaml.zst
  linalg check --size 5 --trials 500`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, cfgFile)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "TOML file with flag defaults")
	pf.String("log-level", string(LogLevelWarn), "log level (debug, info, warn, error)")
	pf.String("format", formatText, "output format (text, yaml)")

	root.AddCommand(
		newDetCommand(a),
		newInverseCommand(a),
		newMulCommand(a),
		newRandomCommand(a),
		newCheckCommand(a),
		newVersionCommand(),
	)

	return root
}

// setup resolves the configuration (file, then flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		cfg, err := LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	a.cfg.LogLevel = LogLevel(stringFlagOr(cmd, "log-level", a.cfg.LogLevel.String()))
	a.cfg.Format = stringFlagOr(cmd, "format", a.cfg.Format)
	if a.cfg.Format != formatText && a.cfg.Format != formatYAML {
		return fmt.Errorf("unknown format %q (want %s or %s)", a.cfg.Format, formatText, formatYAML)
	}

	a.log = newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel)
	a.log.Debug("configuration resolved",
		zap.String("command", cmd.Name()),
		zap.String("config", cfgFile),
		zap.String("format", a.cfg.Format),
	)

	return nil
}

// stringFlagOr returns the flag value when it was set explicitly, else fallback.
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return fallback
	}

	return v
}
