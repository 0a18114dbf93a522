// SPDX-License-Identifier: MIT
// Package matrix provides the structural kernels on Dense: scalar scaling,
// matrix multiplication, matrix-vector product and transpose. All kernels
// perform fail-fast validation and return fresh results; operands are never
// mutated.
//
// Notes:
//   - Determinant kernels live in impl_determinant.go, cofactor/adjugate in
//     impl_cofactor.go, inversion in impl_inverse.go.
//   - All kernels use central validators and wrap with matrixErrorf at the facade.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul            = "Mul"
	opMulVec         = "MulVec"
	opSubmatrix      = "Submatrix"
	opCofactor       = "Cofactor"
	opCofactorMatrix = "CofactorMatrix"
	opAdjugate       = "Adjugate"
	opDeterminant    = "Determinant"
	opDetCofactor    = "DeterminantCofactor"
	opDetElimination = "DeterminantElimination"
	opInverse        = "Inverse"
	opRandomMatrix   = "RandomMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns a new matrix whose elements are k * m[i,j].
// The original matrix is never mutated; a nil receiver yields nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Scale(k float64) *Dense {
	if m == nil {
		return nil
	}
	res := newDense(m.r, m.c)
	for idx, v := range m.data { // deterministic 0..n-1
		res.data[idx] = k * v
	}

	return res
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] entries are skipped.
//
// Behavior highlights:
//   - Deterministic triple loop; no temporary tiles; one allocation for C.
//
// Inputs:
//   - m: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c), C[i,j] = Σ_k A[i,k]*B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIncompatibleShape (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := m.r, m.c, b.c
	res := newDense(aRows, bCols)

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m * v for a column vector v.
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleShape (len(v) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Dense) MulVec(v Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}

	out := make([]float64, m.r)
	var s float64
	for i := 0; i < m.r; i++ {
		// Row views share storage with m but are only read here.
		s, _ = Vector{data: m.data[i*m.c : (i+1)*m.c]}.Dot(v)
		out[i] = s
	}

	return Vector{data: out}, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// A nil receiver yields nil.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	if m == nil {
		return nil
	}
	res := newDense(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}
