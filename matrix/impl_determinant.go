// SPDX-License-Identifier: MIT

// Package matrix - determinant engine.
//
// Purpose:
//   - DeterminantElimination: Gaussian elimination with partial pivoting on a
//     private copy of the rows, O(n³). This is the production kernel.
//   - DeterminantCofactor: recursive first-column cofactor expansion, O(n!).
//     It is kept as an independent oracle; tests require both to agree.
//   - Determinant: facade selecting a kernel via WithAlgorithm.
//
// Determinism:
//   - Fixed pivot order (pos ascending), fixed expansion column (0).
//   - The input is never mutated; elimination works on RowVectors() copies.
package matrix

import "math"

const (
	// epsilon is the float64 machine epsilon (2⁻⁵²).
	epsilon = 0x1p-52

	// roundingGuard scales n·ε into the residue threshold of the elimination
	// kernel; two roundings per update, doubled for headroom.
	roundingGuard = 4
)

// detFunc is a determinant kernel over a non-nil square matrix.
type detFunc func(*Dense) (float64, error)

// detKernel resolves the kernel selected by o.
func detKernel(o Options) detFunc {
	if o.algorithm == AlgorithmCofactor {
		return (*Dense).detCofactor
	}
	pivoting := o.pivoting

	return func(m *Dense) (float64, error) { return m.detElimination(pivoting) }
}

// Determinant returns det(m) using the kernel chosen by WithAlgorithm
// (AlgorithmElimination by default).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func (m *Dense) Determinant(opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := detKernel(gatherOptions(opts...))(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// DeterminantCofactor computes det(m) by cofactor expansion along the first column.
// MAIN DESCRIPTION:
//   - Reference oracle: exponential time, exact for integer-valued input
//     below 2^53 because it only multiplies and adds.
//
// Implementation:
//   - Stage 1: 1×1 → the sole entry; 2×2 → a*d - b*c.
//   - Stage 2: n ≥ 3 → Σ_i m[i,0] * Cofactor(i,0), recursing on submatrices.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level; recursion depth n-2.
func (m *Dense) DeterminantCofactor() (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetCofactor, err)
	}
	det, err := m.detCofactor()
	if err != nil {
		return 0, matrixErrorf(opDetCofactor, err)
	}

	return det, nil
}

func (m *Dense) detCofactor() (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return det2x2(m.data), nil
	}

	var (
		det, a, c float64
		err       error
	)
	for i := 0; i < m.r; i++ {
		a = m.data[i*m.c]
		if a == 0 {
			continue // term vanishes; skip the whole subtree
		}
		c, err = m.cofactorWith(i, 0, (*Dense).detCofactor)
		if err != nil {
			return 0, err
		}
		det += a * c
	}

	return det, nil
}

// DeterminantElimination computes det(m) by Gaussian elimination.
// MAIN DESCRIPTION:
//   - Production kernel. Reduces a private copy to upper-triangular form and
//     multiplies the diagonal, flipping the sign once per row swap.
//
// Implementation:
//   - Stage 1: validate; 1×1 and 2×2 return closed forms.
//   - Stage 2: copy rows as Vectors; for pos = 0..n-2 pick a pivot row
//     (WithPivoting), swap it into place counting swaps; if the column has no
//     nonzero entry at or below pos the matrix is singular → return 0.
//   - Stage 3: for each r > pos replace row r by row[r] + row[pos]*(-m[r,pos]/pivot),
//     then flush rounding residue in the updated row.
//   - Stage 4: multiply the post-elimination diagonal; apply (-1)^swaps.
//
// Behavior highlights:
//   - Pivot search is bounded by n; a fully zero column short-circuits to 0.
//   - Each entry carries the sum of magnitudes that were combined into it. An
//     entry no larger than 4·n·ε times that sum is cancellation residue and is
//     flushed to exact 0, so singular input yields exactly 0 and residue is
//     never chosen as a pivot.
//   - The diagonal is read after elimination, so swaps into (0,0) are honored.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the private copy.
//
// AI-Hints:
//   - PivotLargest (default) keeps |factor| ≤ 1; PivotFirstNonZero follows the
//     textbook order and agrees on integer input.
func (m *Dense) DeterminantElimination(opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDetElimination, err)
	}
	det, err := m.detElimination(gatherOptions(opts...).pivoting)
	if err != nil {
		return 0, matrixErrorf(opDetElimination, err)
	}

	return det, nil
}

func (m *Dense) detElimination(pivoting Pivoting) (float64, error) {
	n := m.r
	switch n {
	case 1:
		return m.data[0], nil
	case 2:
		return det2x2(m.data), nil
	}

	rows := m.RowVectors() // private working set; m stays untouched
	bounds := make([]Vector, n)
	for r := range rows {
		bounds[r] = rows[r].abs()
	}
	flush := roundingGuard * float64(n) * epsilon

	var (
		pos, r, pivotRow, swaps int
		pivot, factor           float64
		err                     error
	)
	for pos = 0; pos < n-1; pos++ {
		pivotRow = selectPivot(rows, pos, pivoting)
		if pivotRow < 0 {
			return 0, nil // no usable pivot in this column: singular
		}
		if pivotRow != pos {
			rows[pos], rows[pivotRow] = rows[pivotRow], rows[pos]
			bounds[pos], bounds[pivotRow] = bounds[pivotRow], bounds[pos]
			swaps++
		}

		pivot = rows[pos].data[pos]
		for r = pos + 1; r < n; r++ {
			factor = rows[r].data[pos] / pivot
			if factor == 0 {
				continue
			}
			rows[r], err = rows[r].Add(rows[pos].Scale(-factor))
			if err != nil {
				return 0, err
			}
			bounds[r], err = bounds[r].Add(bounds[pos].Scale(math.Abs(factor)))
			if err != nil {
				return 0, err
			}
			rows[r].data[pos] = 0 // exact zero below the pivot
			flushResidue(rows[r], bounds[r], pos+1, flush)
		}
	}

	det := 1.0
	for pos = 0; pos < n; pos++ {
		det *= rows[pos].data[pos]
	}
	if det == 0 {
		return 0, nil // normalize -0
	}
	if swaps&1 == 1 {
		det = -det
	}

	return det, nil
}

// flushResidue zeroes entries of row (from column `from` on) whose magnitude
// is within rounding distance of the magnitudes that produced them.
// bound[j] is Σ|terms| accumulated into row[j], so cancellation residue
// satisfies |row[j]| ≤ k·ε·bound[j] after k updates.
func flushResidue(row, bound Vector, from int, flush float64) {
	for j := from; j < len(row.data); j++ {
		if math.Abs(row.data[j]) <= flush*bound.data[j] {
			row.data[j] = 0
		}
	}
}

// selectPivot returns the row index (≥ pos) to use as pivot for column pos,
// or -1 when every candidate is zero.
// Complexity: O(n - pos).
func selectPivot(rows []Vector, pos int, pivoting Pivoting) int {
	n := len(rows)
	if pivoting == PivotLargest {
		best, bestAbs := pos, math.Abs(rows[pos].data[pos])
		for r := pos + 1; r < n; r++ {
			if v := math.Abs(rows[r].data[pos]); v > bestAbs {
				best, bestAbs = r, v
			}
		}
		if bestAbs == 0 {
			return -1
		}

		return best
	}

	for r := pos; r < n; r++ {
		if rows[r].data[pos] != 0 {
			return r
		}
	}

	return -1
}

// det2x2 returns a*d - b*c for row-major [a b c d], with -0 folded to 0.
func det2x2(d []float64) float64 {
	if det := d[0]*d[3] - d[1]*d[2]; det != 0 {
		return det
	}

	return 0
}
