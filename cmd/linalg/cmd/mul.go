// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMulCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul FILE FILE...",
		Short: "Print the product of two or more matrices",
		Long:  `Multiplies the listed matrices left to right: A·B·C...`,
		Args:  cobra.MatchAll(cobra.MinimumNArgs(2), stdinOnce),
		RunE:  a.runMul,
	}
}

func (a *app) runMul(cmd *cobra.Command, args []string) error {
	acc, err := readMatrix(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	for _, path := range args[1:] {
		next, err := readMatrix(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		a.log.Debug("multiplying",
			zap.Int("left_rows", acc.Rows()), zap.Int("left_cols", acc.Cols()),
			zap.String("right", path), zap.Int("right_rows", next.Rows()), zap.Int("right_cols", next.Cols()),
		)
		if acc, err = acc.Mul(next); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return writeMatrix(cmd.OutOrStdout(), acc, a.cfg.Format)
}
