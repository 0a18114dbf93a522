// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrIncompatibleShape.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrIncompatibleShape)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < Rows and 0 ≤ j < Cols.
// Assumes m is not nil. Complexity: O(1).
func ValidateIndex(m Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", i, j), ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Used by MatVec-like routines; a mismatch is a product-shape violation.
func ValidateVecLen(v Vector, n int) error {
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", ErrIncompatibleShape)
	}

	return nil
}

// ValidateSameLen ensures two vectors can be combined element-wise.
func ValidateSameLen(a, b Vector) error {
	if a.Len() != b.Len() {
		return validatorErrorf("ValidateSameLen", ErrSizeMismatch)
	}

	return nil
}

// validateFinite rejects NaN/±Inf under the numeric policy.
// The error matches both ErrInvalidArgument and ErrNaNInf.
func validateFinite(v float64, i, j int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("element (%d,%d): %w: %w", i, j, ErrInvalidArgument, ErrNaNInf)
	}

	return nil
}
