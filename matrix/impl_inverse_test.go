// SPDX-License-Identifier: MIT
// Package matrix_test contains unit and property tests for Inverse.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestInverse_Known checks hand-computed inverses.
func TestInverse_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"1x1", [][]float64{{4}}, [][]float64{{0.25}}},
		{"2x2", [][]float64{{4, 7}, {2, 6}}, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}},
		{"3x3 unimodular", [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}, [][]float64{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}}},
		{"3x3", cofactorFixture, [][]float64{
			{24.0 / 22, -12.0 / 22, -2.0 / 22},
			{5.0 / 22, 3.0 / 22, -5.0 / 22},
			{-4.0 / 22, 2.0 / 22, 4.0 / 22},
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := MustDense(t, tc.in).Inverse()
			require.NoError(t, err)
			require.True(t, MustDense(t, tc.want).EqualApprox(got, 1e-12), "got\n%s", got)
		})
	}
}

// TestInverse_Identity: I⁻¹ = I.
func TestInverse_Identity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		got, err := MustIdentity(t, n).Inverse()
		require.NoError(t, err)
		require.True(t, got.Equal(MustIdentity(t, n)), "n=%d", n)
	}
}

// TestInverse_Singular rejects zero determinants.
func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{
		{{0}},
		{{1, 2}, {2, 4}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}},
	} {
		m := MustDense(t, rows)
		_, err := m.Inverse()
		require.ErrorIs(t, err, matrix.ErrSingular, "%v", rows)
		_, err = m.Inverse(matrix.WithAlgorithm(matrix.AlgorithmCofactor))
		require.ErrorIs(t, err, matrix.ErrSingular, "%v", rows)
	}

	_, err := MustDense(t, [][]float64{{1, 2, 3}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse_Tolerance: a near-singular matrix is rejected only under a tolerance.
func TestInverse_Tolerance(t *testing.T) {
	t.Parallel()

	m := MustDense(t, [][]float64{{1, 0}, {0, 1e-6}})

	got, err := m.Inverse()
	require.NoError(t, err)
	require.True(t, got.EqualApprox(MustDense(t, [][]float64{{1, 0}, {0, 1e6}}), 1e-9))

	_, err = m.Inverse(matrix.WithSingularTolerance(1e-3))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_RoundTrip: M·M⁻¹ ≈ I and M⁻¹·M ≈ I for random nonsingular M,
// and ErrSingular for every singular one, under every kernel.
func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	kernels := [][]matrix.Option{
		nil,
		{matrix.WithPivoting(matrix.PivotFirstNonZero)},
		{matrix.WithPivoting(matrix.PivotLargest)},
		{matrix.WithAlgorithm(matrix.AlgorithmCofactor)},
	}
	var inverted, singular int
	for n := 1; n <= 5; n++ {
		id := MustIdentity(t, n)
		for _, rg := range oracleRanges {
			for seed := int64(1); seed <= 15; seed++ {
				m := MustRandom(t, n, n, rg[0], rg[1], seed)
				d, err := m.DeterminantCofactor()
				require.NoError(t, err)

				for _, opts := range kernels {
					inv, err := m.Inverse(opts...)
					if d == 0 {
						require.ErrorIs(t, err, matrix.ErrSingular, "n=%d range=%v seed=%d\n%s", n, rg, seed, m)
						singular++
						continue
					}
					require.NoError(t, err)
					inverted++

					left, err := m.Mul(inv)
					require.NoError(t, err)
					right, err := inv.Mul(m)
					require.NoError(t, err)
					require.True(t, left.EqualApprox(id, 1e-8), "n=%d range=%v seed=%d\n%s", n, rg, seed, left)
					require.True(t, right.EqualApprox(id, 1e-8), "n=%d range=%v seed=%d\n%s", n, rg, seed, right)
				}
			}
		}
	}
	require.Positive(t, inverted)
	require.Positive(t, singular)
}

// TestInverse_CancellationResidue: rounding residue in the determinant does
// not make a singular matrix invertible.
func TestInverse_CancellationResidue(t *testing.T) {
	t.Parallel()

	m := MustDense(t, residueSingular)
	for _, opts := range [][]matrix.Option{
		nil,
		{matrix.WithPivoting(matrix.PivotFirstNonZero)},
		{matrix.WithAlgorithm(matrix.AlgorithmCofactor)},
	} {
		_, err := m.Inverse(opts...)
		require.ErrorIs(t, err, matrix.ErrSingular)
	}
}

// TestInverse_AgainstGonum cross-checks with gonum's LU-based inverse.
func TestInverse_AgainstGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(50); seed < 60; seed++ {
		m := MustRandom(t, 4, 4, -9, 9, seed)
		if d, _ := m.DeterminantCofactor(); d == 0 {
			continue
		}
		got, err := m.Inverse(matrix.WithAlgorithm(matrix.AlgorithmCofactor))
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(m.ToGonum()))
		back, err := matrix.FromGonum(&want)
		require.NoError(t, err)
		require.True(t, back.EqualApprox(got, 1e-8), "seed=%d\nwant\n%s\ngot\n%s", seed, back, got)
	}
}

// TestInverse_DoesNotMutate leaves the receiver intact.
func TestInverse_DoesNotMutate(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	m := MustDense(t, rows)
	_, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, rows, m.ToSlices())
}
