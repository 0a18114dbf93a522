// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
)

// addKernelFlags registers --method and --pivot on cmd.
func addKernelFlags(cmd *cobra.Command) {
	cmd.Flags().String("method", matrix.DefaultAlgorithm.String(), "determinant kernel (elimination, cofactor)")
	cmd.Flags().String("pivot", matrix.DefaultPivoting.String(), "elimination pivot strategy (first, largest)")
}

// kernelOptions turns --method/--pivot (or their config defaults) into matrix options.
func (a *app) kernelOptions(cmd *cobra.Command) ([]matrix.Option, error) {
	alg, err := parseAlgorithm(stringFlagOr(cmd, "method", a.cfg.Determinant.Method))
	if err != nil {
		return nil, err
	}
	piv, err := parsePivoting(stringFlagOr(cmd, "pivot", a.cfg.Determinant.Pivot))
	if err != nil {
		return nil, err
	}

	return []matrix.Option{matrix.WithAlgorithm(alg), matrix.WithPivoting(piv)}, nil
}

func parseAlgorithm(s string) (matrix.Algorithm, error) {
	for _, alg := range []matrix.Algorithm{matrix.AlgorithmElimination, matrix.AlgorithmCofactor} {
		if alg.String() == s {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("unknown method %q (want %s or %s)", s, matrix.AlgorithmElimination, matrix.AlgorithmCofactor)
}

func parsePivoting(s string) (matrix.Pivoting, error) {
	for _, p := range []matrix.Pivoting{matrix.PivotFirstNonZero, matrix.PivotLargest} {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown pivot %q (want %s or %s)", s, matrix.PivotFirstNonZero, matrix.PivotLargest)
}
