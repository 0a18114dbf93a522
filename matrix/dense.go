// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Immutability: there is no exported mutator; every operation returns a new Dense,
//     so a *Dense may be shared freely between goroutines.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) at construction time.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At: O(1); Row: O(c); RowVectors/ToSlices: O(r*c).
package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

const _fmtRowSep = "\n"

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix with at least one row and one column.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
	_ fmt.Stringer = Vector{}
)

// newDense allocates a zero r×c Dense without validation (internal; r,c ≥ 1).
func newDense(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// NewDense builds a matrix from a rectangular sequence of rows.
// MAIN DESCRIPTION:
//   - Public constructor with strict structural validation and the numeric policy.
//
// Implementation:
//   - Stage 1: reject empty input and empty first row.
//   - Stage 2: reject ragged rows (every row must have len(rows[0]) entries).
//   - Stage 3: convert to float64 into a fresh buffer; enforce finite values
//     when the policy is on.
//
// Inputs:
//   - rows: at least one row; integer or floating element type.
//   - opts: WithNoValidateNaNInf to relax the finite-only policy.
//
// Returns:
//   - *Dense: independent of the caller's slices.
//
// Errors:
//   - ErrInvalidArgument (empty, ragged); ErrInvalidArgument+ErrNaNInf (non-finite).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows [][]T, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDense: no rows: %w", ErrInvalidArgument)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("NewDense: row 0 is empty: %w", ErrInvalidArgument)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDense: row %d has %d entries, want %d: %w", i, len(rows[i]), cols, ErrInvalidArgument)
		}
	}

	o := gatherOptions(opts...)
	m := newDense(len(rows), cols)
	var i, j int
	var x float64
	for i = range rows {
		for j = 0; j < cols; j++ {
			x = float64(rows[i][j])
			if o.validateNaNInf {
				if err := validateFinite(x, i, j); err != nil {
					return nil, fmt.Errorf("NewDense: %w", err)
				}
			}
			m.data[i*cols+j] = x
		}
	}

	return m, nil
}

// NewFromVectors stacks equal-length vectors as rows.
//
// Errors:
//   - ErrInvalidArgument when rows is empty, the vectors are empty or ragged.
func NewFromVectors(rows []Vector) (*Dense, error) {
	if len(rows) == 0 || rows[0].Len() == 0 {
		return nil, fmt.Errorf("NewFromVectors: %w", ErrInvalidArgument)
	}
	cols := rows[0].Len()
	m := newDense(len(rows), cols)
	for i, v := range rows {
		if v.Len() != cols {
			return nil, fmt.Errorf("NewFromVectors: row %d has %d entries, want %d: %w", i, v.Len(), cols, ErrInvalidArgument)
		}
		copy(m.data[i*cols:(i+1)*cols], v.data)
	}

	return m, nil
}

// NewZeros returns a rows×cols zero matrix or ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use as the neutral element when checking Mul and Inverse.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count (0 for a nil receiver). Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil receiver). Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsSquare reports Rows() == Cols() for a non-nil matrix.
func (m *Dense) IsSquare() bool { return m != nil && m.r == m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i as a Vector, or ErrOutOfRange.
func (m *Dense) Row(i int) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return Vector{}, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return Vector{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

// row copies row i without bounds checks (internal).
func (m *Dense) row(i int) Vector {
	data := make([]float64, m.c)
	copy(data, m.data[i*m.c:(i+1)*m.c])

	return Vector{data: data}
}

// RowVectors returns a fresh copy of every row. Mutating-free by construction:
// the elimination kernel uses it as its private working set.
// Complexity: O(r*c).
func (m *Dense) RowVectors() []Vector {
	if m == nil {
		return nil
	}
	out := make([]Vector, m.r)
	for i := range out {
		out[i] = m.row(i)
	}

	return out
}

// ToSlices returns a deep copy as [][]float64.
func (m *Dense) ToSlices() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports identical shape and exactly equal entries.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.r == other.r && m.c == other.c && floats.Equal(m.data, other.data)
}

// EqualApprox reports identical shape and entries equal within an absolute or
// relative tolerance eps.
func (m *Dense) EqualApprox(other *Dense, eps float64) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.r == other.r && m.c == other.c && floats.EqualApprox(m.data, other.data, eps)
}

// String renders rows separated by newlines and entries separated by single
// spaces, without a trailing newline, e.g. "1 2\n3 4".
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(formatScalar(m.data[base+j]))
		}
	}

	return b.String()
}
