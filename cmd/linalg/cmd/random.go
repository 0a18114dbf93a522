// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRandomCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a matrix of uniform random integers",
		Long: `Draws every entry independently from [min, max]. Without --seed the
clock seeds the generator. With --out the matrix is written as YAML to the
file (zstd-compressed for a ".zst" suffix) instead of stdout.`,
		Args: cobra.NoArgs,
		RunE: a.runRandom,
	}
	f := cmd.Flags()
	f.Int("rows", 3, "row count")
	f.Int("cols", 3, "column count")
	f.Int("min", -9, "smallest entry")
	f.Int("max", 9, "largest entry")
	f.Int64("seed", 0, "generator seed")
	f.String("out", "", "output file")

	return cmd
}

func (a *app) runRandom(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	rows, _ := f.GetInt("rows")
	cols, _ := f.GetInt("cols")
	lo, _ := f.GetInt("min")
	hi, _ := f.GetInt("max")
	out, _ := f.GetString("out")

	var opts []matrix.Option
	if f.Changed("seed") {
		seed, _ := f.GetInt64("seed")
		opts = append(opts, matrix.WithSeed(seed))
	}

	m, err := matrix.RandomMatrix(rows, cols, lo, hi, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("random matrix", zap.Int("rows", rows), zap.Int("cols", cols), zap.Int("min", lo), zap.Int("max", hi))

	if out != "" {
		if err = writeMatrixFile(out, m); err != nil {
			return err
		}
		a.log.Info("matrix written", zap.String("file", out))

		return nil
	}

	return writeMatrix(cmd.OutOrStdout(), m, a.cfg.Format)
}
