// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// nonsensical Option parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Public operations wrap with their op tag via
// matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (square/compatible) -> index -> numeric (singular).

var (
	// ErrInvalidArgument is returned when constructor input is not a rectangular,
	// one-dimensional-per-row sequence of finite numbers (empty input, ragged
	// rows, nested elements, non-numeric elements) or a parameter range is empty.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrBadShape is returned when an operation needs a larger shape than it got,
	// e.g. Submatrix on a matrix with fewer than two rows or columns.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row/Submatrix/Cofactor) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrIncompatibleShape indicates that inner dimensions of a product do not
	// match (a.Cols != b.Rows, or len(v) != a.Cols for MulVec).
	ErrIncompatibleShape = errors.New("matrix: incompatible shapes")

	// ErrSizeMismatch indicates that two vectors of different length were combined.
	ErrSizeMismatch = errors.New("matrix: vector size mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is zero (within the configured singular tolerance).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy. Constructors report it joined with
	// ErrInvalidArgument.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// BACKWARD-COMPATIBILITY ALIASES.
// They are semantically identical sentinels so errors.Is keeps matching.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrDimensionMismatch historically named the product-shape condition.
var ErrDimensionMismatch = ErrIncompatibleShape // Deprecated: use ErrIncompatibleShape.
