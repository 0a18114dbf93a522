// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by constructors, kernels and options.
// This file contains ONLY domain-facing types (scalar constraint, the
// read-only Matrix surface, algorithm selectors). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Scalar is the set of element types accepted by the generic constructors.
// Storage is always float64; integers are converted exactly up to 2^53.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Matrix is the read-only surface shared by validators and kernels.
// *Dense is the only implementation in this package; the interface exists so
// validators can be reused by adapters without exposing storage.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Algorithm selects the determinant kernel used by Determinant, Cofactor,
// Adjugate and Inverse.
type Algorithm int

const (
	// AlgorithmElimination is Gaussian elimination with partial pivoting, O(n³).
	AlgorithmElimination Algorithm = iota
	// AlgorithmCofactor is recursive first-column cofactor expansion, O(n!).
	// It is the reference oracle for the elimination kernel.
	AlgorithmCofactor
)

// String returns the CLI/log name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmElimination:
		return "elimination"
	case AlgorithmCofactor:
		return "cofactor"
	default:
		return "unknown"
	}
}

// Pivoting selects how the elimination kernel chooses a pivot row.
type Pivoting int

const (
	// PivotFirstNonZero keeps the diagonal entry unless it is zero and then
	// swaps in the first row below with a nonzero entry in that column.
	// Rounding residue has already been flushed to 0 at that point.
	PivotFirstNonZero Pivoting = iota
	// PivotLargest swaps in the row at or below the diagonal with the largest
	// magnitude in the pivot column (classic partial pivoting). Default.
	PivotLargest
)

// String returns the CLI/log name of the pivoting strategy.
func (p Pivoting) String() string {
	switch p {
	case PivotFirstNonZero:
		return "first"
	case PivotLargest:
		return "largest"
	default:
		return "unknown"
	}
}
