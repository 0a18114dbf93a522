// SPDX-License-Identifier: MIT

// Package matrix - submatrix extraction, cofactors and the adjugate.
//
// Purpose:
//   - Submatrix(i,j): copy with row i and column j removed (never aliases m).
//   - Cofactor(i,j) = (-1)^(i+j) * det(Submatrix(i,j)).
//   - CofactorMatrix / Adjugate (transpose of the cofactor matrix) feed Inverse.
//
// AI-Hints:
//   - All cofactor entry points accept WithAlgorithm so the cofactor oracle can
//     be used end to end (e.g. Inverse(WithAlgorithm(AlgorithmCofactor))).
package matrix

import "fmt"

// Submatrix returns a new matrix with row i and column j removed.
// Implementation:
//   - Stage 1: validate non-nil, indices in range, shape ≥ 2×2.
//   - Stage 2: copy the remaining entries in row-major order.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad i or j), ErrBadShape (rows < 2 or cols < 2).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Submatrix(i, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("%dx%d has no submatrix: %w", m.r, m.c, ErrBadShape))
	}

	return m.submatrix(i, j), nil
}

// submatrix is the unchecked kernel behind Submatrix.
func (m *Dense) submatrix(skipRow, skipCol int) *Dense {
	res := newDense(m.r-1, m.c-1)
	var i, j, dst int
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == skipCol {
				continue
			}
			res.data[dst] = m.data[i*m.c+j]
			dst++
		}
	}

	return res
}

// Cofactor returns (-1)^(i+j) * det(Submatrix(i, j)).
// Even i+j keeps the sign, odd i+j negates it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrBadShape (1×1 input).
func (m *Dense) Cofactor(i, j int, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if m.r < 2 {
		return 0, matrixErrorf(opCofactor, ErrBadShape)
	}
	c, err := m.cofactorWith(i, j, detKernel(gatherOptions(opts...)))
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return c, nil
}

// cofactorWith evaluates one cofactor with the given determinant kernel.
func (m *Dense) cofactorWith(i, j int, det detFunc) (float64, error) {
	d, err := det(m.submatrix(i, j))
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nil // never -0
	}
	if (i+j)&1 == 1 {
		return -d, nil
	}

	return d, nil
}

// CofactorMatrix returns C with C[i,j] = Cofactor(i,j).
// A 1×1 matrix yields [[1]] (the determinant of the empty minor).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - n² determinant evaluations of size n-1.
func (m *Dense) CofactorMatrix(opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	c, err := m.cofactorMatrix(detKernel(gatherOptions(opts...)))
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}

	return c, nil
}

func (m *Dense) cofactorMatrix(det detFunc) (*Dense, error) {
	n := m.r
	res := newDense(n, n)
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}
	var (
		i, j int
		c    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c, err = m.cofactorWith(i, j, det)
			if err != nil {
				return nil, fmt.Errorf("cofactor(%d,%d): %w", i, j, err)
			}
			res.data[i*n+j] = c
		}
	}

	return res, nil
}

// Adjugate returns adj(m), whose (row, col) entry is Cofactor(col, row),
// i.e. the transposed cofactor matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func (m *Dense) Adjugate(opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	c, err := m.cofactorMatrix(detKernel(gatherOptions(opts...)))
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return c.Transpose(), nil
}
