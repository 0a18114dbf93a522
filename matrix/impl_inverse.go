// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Inverse computes A⁻¹ = adj(A) / det(A).
// The input must be non-nil and square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options.
//   - Stage 2: det via the selected kernel; |det| ≤ singular tolerance → ErrSingular.
//   - Stage 3: adjugate with the same kernel, scaled by 1/det.
//
// Behavior highlights:
//   - Default tolerance 0 means only an exactly zero determinant is singular.
//   - 1×1 input [[a]] yields [[1/a]].
//
// Inputs:
//   - opts: WithAlgorithm, WithPivoting, WithSingularTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Elimination kernel: n² cofactors of O(n³) each → O(n⁵).
//   - Cofactor kernel: O(n² · (n-1)!).
//
// Notes:
//   - Forming the inverse through the adjugate is exact for small integer
//     matrices up to the final division; for large n prefer solving systems.
func (m *Dense) Inverse(opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	det := detKernel(o)

	d, err := det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(d) <= o.singularTol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", d, ErrSingular))
	}

	c, err := m.cofactorMatrix(det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	inv := c.Transpose().Scale(1 / d)
	for idx, v := range inv.data {
		if v == 0 {
			inv.data[idx] = 0 // fold -0 from negative determinants
		}
	}

	return inv, nil
}
