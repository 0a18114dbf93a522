// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInverseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverse FILE",
		Short: "Print the inverse of a square matrix",
		Long: `Computes adj(A)/det(A). A matrix whose |det| is at or below --tolerance
is reported as singular.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runInverse,
	}
	addKernelFlags(cmd)
	cmd.Flags().Float64("tolerance", matrix.DefaultSingularTolerance, "singular threshold on |det|")

	return cmd
}

func (a *app) runInverse(cmd *cobra.Command, args []string) error {
	opts, err := a.kernelOptions(cmd)
	if err != nil {
		return err
	}
	tol := a.cfg.Inverse.Tolerance
	if cmd.Flags().Changed("tolerance") {
		if tol, err = cmd.Flags().GetFloat64("tolerance"); err != nil {
			return err
		}
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("tolerance %v must be finite and non-negative", tol)
	}
	opts = append(opts, matrix.WithSingularTolerance(tol))

	path := args[0]
	m, err := readMatrix(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	inv, err := m.Inverse(opts...)
	if errors.Is(err, matrix.ErrSingular) {
		a.log.Warn("matrix is singular", zap.String("file", path), zap.Float64("tolerance", tol))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("inverse computed", zap.String("file", path), zap.Int("n", inv.Rows()))

	return writeMatrix(cmd.OutOrStdout(), inv, a.cfg.Format)
}
