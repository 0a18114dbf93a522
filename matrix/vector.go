// SPDX-License-Identifier: MIT

// Package matrix - Vector value type.
//
// Purpose:
//   - Fixed-length ordered sequence of float64 used as the elimination
//     engine's row abstraction and as the MulVec operand.
//   - Immutable: Add/Sub/Scale allocate a fresh Vector; the backing slice is
//     never handed out (Values returns a copy).
//
// AI-Hints:
//   - Element-wise kernels delegate to gonum/floats; lengths are validated
//     here first because floats panics on mismatched slices.
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- Formatting literals  ----------
const (
	_fmtVecOpen  = "["
	_fmtVecClose = "]"
	_fmtSep      = " "
)

// Vector is an immutable, one-dimensional sequence of scalars.
// The zero value is a valid empty vector.
type Vector struct {
	data []float64 // private storage; never aliased with caller slices
}

// NewVector copies xs into a new Vector.
// One-dimensionality is guaranteed by the element type; use VectorFromAny for
// dynamically typed input.
// Complexity: O(n).
func NewVector[T Scalar](xs []T) Vector {
	data := make([]float64, len(xs))
	for i, x := range xs {
		data[i] = float64(x)
	}

	return Vector{data: data}
}

// VectorFromAny builds a Vector from decoded data (e.g. []any from YAML/JSON).
//
// Errors:
//   - ErrInvalidArgument when v is not a sequence, an element is itself a
//     sequence, or an element is not numeric.
func VectorFromAny(v any) (Vector, error) {
	data, err := flatFromAny(v, 0)
	if err != nil {
		return Vector{}, fmt.Errorf("VectorFromAny: %w", err)
	}

	return Vector{data: data}, nil
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the entries.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Add returns v + other.
//
// Errors:
//   - ErrSizeMismatch when lengths differ.
//
// Complexity:
//   - Time O(n), Space O(n).
func (v Vector) Add(other Vector) (Vector, error) {
	if err := ValidateSameLen(v, other); err != nil {
		return Vector{}, fmt.Errorf("Vector.Add: %w", err)
	}
	dst := make([]float64, len(v.data))
	floats.AddTo(dst, v.data, other.data)

	return Vector{data: dst}, nil
}

// Sub returns v - other, or ErrSizeMismatch.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := ValidateSameLen(v, other); err != nil {
		return Vector{}, fmt.Errorf("Vector.Sub: %w", err)
	}
	dst := make([]float64, len(v.data))
	floats.SubTo(dst, v.data, other.data)

	return Vector{data: dst}, nil
}

// Scale returns k * v.
func (v Vector) Scale(k float64) Vector {
	dst := make([]float64, len(v.data))
	floats.ScaleTo(dst, k, v.data)

	return Vector{data: dst}
}

// abs returns |v| element-wise.
func (v Vector) abs() Vector {
	dst := make([]float64, len(v.data))
	for i, x := range v.data {
		dst[i] = math.Abs(x)
	}

	return Vector{data: dst}
}

// Dot returns Σ v[i]*other[i]. Two empty vectors yield 0.
//
// Errors:
//   - ErrSizeMismatch when lengths differ.
func (v Vector) Dot(other Vector) (float64, error) {
	if err := ValidateSameLen(v, other); err != nil {
		return 0, fmt.Errorf("Vector.Dot: %w", err)
	}
	if len(v.data) == 0 {
		return 0, nil
	}

	return floats.Dot(v.data, other.data), nil
}

// Magnitude returns the Euclidean norm √(Σ v[i]²).
func (v Vector) Magnitude() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(v.data, 2)
}

// Equal reports exact element-wise equality (and equal length).
func (v Vector) Equal(other Vector) bool {
	return floats.Equal(v.data, other.data)
}

// EqualApprox reports element-wise equality within an absolute or relative tolerance eps.
func (v Vector) EqualApprox(other Vector, eps float64) bool {
	return floats.EqualApprox(v.data, other.data, eps)
}

// String renders "[e0 e1 ... en-1]" with shortest float formatting.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtVecOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatScalar(x))
	}
	b.WriteString(_fmtVecClose)

	return b.String()
}

// formatScalar prints x the way %g would, with the shortest exact representation.
func formatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
