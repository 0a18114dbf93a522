// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxCheckSize bounds --size; the cofactor oracle is O(n!).
const maxCheckSize = 9

var errCheckFailed = errors.New("elimination disagrees with cofactor expansion")

type checkReport struct {
	Trials      int     `yaml:"trials"`
	Size        int     `yaml:"size"`
	Pivot       string  `yaml:"pivot"`
	MaxRelError float64 `yaml:"max_rel_error"`
	Mismatches  int     `yaml:"mismatches"`
}

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check the elimination kernel against cofactor expansion",
		Long: `Generates --trials random integer matrices of order --size (seeds
seed, seed+1, ...) and compares the elimination determinant with the cofactor
oracle. A relative error above --tolerance counts as a mismatch; any mismatch
makes the command fail.`,
		Args: cobra.NoArgs,
		RunE: a.runCheck,
	}
	f := cmd.Flags()
	f.Int("size", 4, "matrix order (1-9)")
	f.Int("trials", 100, "number of random matrices")
	f.Int("min", -9, "smallest entry")
	f.Int("max", 9, "largest entry")
	f.Int64("seed", 1, "first seed")
	f.Float64("tolerance", matrix.DefaultEpsilon, "relative error threshold")
	f.String("pivot", matrix.DefaultPivoting.String(), "elimination pivot strategy (first, largest)")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	size, _ := f.GetInt("size")
	trials, _ := f.GetInt("trials")
	lo, _ := f.GetInt("min")
	hi, _ := f.GetInt("max")
	seed, _ := f.GetInt64("seed")
	tol, _ := f.GetFloat64("tolerance")
	if size < 1 || size > maxCheckSize {
		return fmt.Errorf("size %d out of range [1,%d]", size, maxCheckSize)
	}
	if trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}
	piv, err := parsePivoting(stringFlagOr(cmd, "pivot", a.cfg.Determinant.Pivot))
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(trials,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("cross-checking determinants"),
		progressbar.OptionShowCount(),
	)
	report := checkReport{Trials: trials, Size: size, Pivot: piv.String()}
	for i := 0; i < trials; i++ {
		m, err := matrix.RandomMatrix(size, size, lo, hi, matrix.WithSeed(seed+int64(i)))
		if err != nil {
			return err
		}
		want, err := m.DeterminantCofactor()
		if err != nil {
			return err
		}
		got, err := m.DeterminantElimination(matrix.WithPivoting(piv))
		if err != nil {
			return err
		}

		rel := math.Abs(want-got) / math.Max(1, math.Abs(want))
		report.MaxRelError = math.Max(report.MaxRelError, rel)
		if rel > tol {
			report.Mismatches++
			a.log.Warn("determinant mismatch",
				zap.Int64("seed", seed+int64(i)),
				zap.Float64("cofactor", want),
				zap.Float64("elimination", got),
			)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())

	if err = a.writeReport(cmd, report); err != nil {
		return err
	}
	if report.Mismatches > 0 {
		return fmt.Errorf("%d of %d trials: %w", report.Mismatches, trials, errCheckFailed)
	}

	return nil
}

func (a *app) writeReport(cmd *cobra.Command, r checkReport) error {
	w := cmd.OutOrStdout()
	if a.cfg.Format == formatYAML {
		return encodeYAML(w, r)
	}
	_, err := fmt.Fprintf(w, "trials=%d size=%d pivot=%s max_rel_error=%s mismatches=%d\n",
		r.Trials, r.Size, r.Pivot, formatFloat(r.MaxRelError), r.Mismatches)

	return err
}
