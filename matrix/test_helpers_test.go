// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and integer-valued where exactness matters.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// relTol is the relative tolerance used when comparing floating kernels
// against the exact cofactor oracle.
const relTol = matrix.DefaultEpsilon

// MustDense builds a *Dense from rows or fails the test (fatal on error).
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// MustRandom returns a reproducible r×c integer matrix with entries in [lo, hi].
func MustRandom(t testing.TB, r, c, lo, hi int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.RandomMatrix(r, c, lo, hi, matrix.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// requireClose asserts |want-got| ≤ relTol*max(1,|want|).
func requireClose(t testing.TB, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, want, got, relTol*math.Max(1, math.Abs(want)), msgAndArgs...)
}

// swapRows returns a copy of rows with rows i and j exchanged.
func swapRows(rows [][]float64, i, j int) [][]float64 {
	out := make([][]float64, len(rows))
	for k := range rows {
		out[k] = append([]float64(nil), rows[k]...)
	}
	out[i], out[j] = out[j], out[i]

	return out
}
