// SPDX-License-Identifier: MIT

// Package matrix - conversions between Dense and external representations.
//
// Purpose:
//   - FromAny: validate dynamically typed input (decoded YAML/JSON, []any)
//     into a Dense, reporting every structural violation as ErrInvalidArgument.
//   - ToGonum / FromGonum: interop with gonum.org/v1/gonum/mat for callers
//     that need factorizations this package does not provide.
//
// Determinism:
//   - Fixed row-major traversal; no map iteration.
package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// FromAny builds a Dense from a sequence of sequences of numbers held in an
// interface value, e.g. the result of yaml.Unmarshal into `any`.
// Implementation:
//   - Stage 1: require a non-empty slice/array.
//   - Stage 2: convert each row via flatFromAny (rejects nested/non-numeric).
//   - Stage 3: enforce equal row lengths and the numeric policy.
//
// Errors:
//   - ErrInvalidArgument (non-sequence, empty, non-sequence row, nested
//     element, non-numeric element, ragged rows, NaN/Inf under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromAny(v any, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	rv, ok := sequenceValue(v)
	if !ok {
		return nil, fmt.Errorf("FromAny: input is not a sequence: %w", ErrInvalidArgument)
	}
	rows := rv.Len()
	if rows == 0 {
		return nil, fmt.Errorf("FromAny: input is empty: %w", ErrInvalidArgument)
	}

	var (
		cols int
		data []float64
	)
	for i := 0; i < rows; i++ {
		row, err := flatFromAny(rv.Index(i).Interface(), i)
		if err != nil {
			return nil, fmt.Errorf("FromAny: %w", err)
		}
		if i == 0 {
			cols = len(row)
			if cols == 0 {
				return nil, fmt.Errorf("FromAny: row 0 is empty: %w", ErrInvalidArgument)
			}
			data = make([]float64, 0, rows*cols)
		} else if len(row) != cols {
			return nil, fmt.Errorf("FromAny: row %d has %d entries, want %d: %w", i, len(row), cols, ErrInvalidArgument)
		}
		data = append(data, row...)
	}

	if o.validateNaNInf {
		for idx, x := range data {
			if err := validateFinite(x, idx/cols, idx%cols); err != nil {
				return nil, fmt.Errorf("FromAny: %w", err)
			}
		}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// flatFromAny converts one flat sequence of numbers. row is used for messages only.
func flatFromAny(v any, row int) ([]float64, error) {
	rv, ok := sequenceValue(v)
	if !ok {
		return nil, fmt.Errorf("row %d is not a sequence: %w", row, ErrInvalidArgument)
	}
	out := make([]float64, rv.Len())
	for j := range out {
		x, err := scalarFromValue(rv.Index(j))
		if err != nil {
			return nil, fmt.Errorf("element (%d,%d): %w", row, j, err)
		}
		out[j] = x
	}

	return out, nil
}

// sequenceValue unwraps v (through interfaces and pointers) into a
// slice/array reflect.Value. Strings and maps are not sequences.
func sequenceValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// scalarFromValue converts a numeric reflect.Value to float64.
func scalarFromValue(rv reflect.Value) (float64, error) {
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, fmt.Errorf("nil element: %w", ErrInvalidArgument)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Slice, reflect.Array:
		return 0, fmt.Errorf("element is a sequence, want one-dimensional: %w", ErrInvalidArgument)
	default:
		return 0, fmt.Errorf("element of kind %s is not numeric: %w", rv.Kind(), ErrInvalidArgument)
	}
}

// ToGonum copies m into a new *mat.Dense.
// Returns nil for a nil receiver.
func (m *Dense) ToGonum() *mat.Dense {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrInvalidDimensions for an empty source.
//   - ErrInvalidArgument wrapping ErrNaNInf for non-finite entries under policy.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromGonum: %w", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	out := newDense(r, c)
	var i, j int
	var x float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x = src.At(i, j)
			if o.validateNaNInf {
				if err := validateFinite(x, i, j); err != nil {
					return nil, fmt.Errorf("FromGonum: %w", err)
				}
			}
			out.data[i*c+j] = x
		}
	}

	return out, nil
}
