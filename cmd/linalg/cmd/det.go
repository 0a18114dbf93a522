// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type detResult struct {
	File        string  `yaml:"file"`
	Determinant float64 `yaml:"determinant"`
}

func newDetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det FILE...",
		Short: "Print the determinant of each matrix file",
		Long: `Computes the determinant of every listed matrix. Files are processed
concurrently; output keeps the argument order. With one file only the value
is printed.`,
		Args: cobra.MatchAll(cobra.MinimumNArgs(1), stdinOnce),
		RunE: a.runDet,
	}
	addKernelFlags(cmd)

	return cmd
}

func (a *app) runDet(cmd *cobra.Command, args []string) error {
	opts, err := a.kernelOptions(cmd)
	if err != nil {
		return err
	}

	results := make([]detResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := readMatrix(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.log.Debug("computing determinant", zap.String("file", path), zap.Int("n", m.Rows()))

			d, err := m.Determinant(opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = detResult{File: path, Determinant: d}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	return a.writeDeterminants(cmd.OutOrStdout(), results)
}

func (a *app) writeDeterminants(w io.Writer, results []detResult) error {
	if a.cfg.Format == formatYAML {
		return encodeYAML(w, results)
	}
	if len(results) == 1 {
		_, err := fmt.Fprintln(w, formatFloat(results[0].Determinant))
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.File, formatFloat(r.Determinant)); err != nil {
			return err
		}
	}

	return nil
}
