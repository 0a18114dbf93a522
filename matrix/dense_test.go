// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction, accessors
// and formatting.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Invalid ensures structural violations surface as ErrInvalidArgument.
func TestNewDense_Invalid(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense([][]int{})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewDense([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewDense([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewDense([][]float64{{1, 2}, {3, 4, 5}})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestNewDense_NaNInf checks the numeric policy and its opt-out.
func TestNewDense_NaNInf(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := matrix.NewDense([][]float64{{1, bad}})
		require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	}

	m, err := matrix.NewDense([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestDense_ShapeAndAccess verifies Rows/Cols/Shape/At/Row on a 2×3 matrix.
func TestDense_ShapeAndAccess(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.False(t, m.IsSquare())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row.Values())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_Isolation ensures the matrix owns its storage on both sides.
func TestDense_Isolation(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustDense(t, rows)
	rows[0][0] = 100

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	out := m.ToSlices()
	out[1][1] = -7
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToSlices())

	rv := m.RowVectors()
	rv[0] = rv[0].Scale(10)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToSlices())
}

// TestDense_String checks the row/space layout without a trailing newline.
func TestDense_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want string
	}{
		{"2x2", [][]float64{{1, 2}, {3, 4}}, "1 2\n3 4"},
		{"1x1", [][]float64{{-5}}, "-5"},
		{"fractions", [][]float64{{0.5, -1.25}}, "0.5 -1.25"},
		{"column", [][]float64{{1}, {2}, {3}}, "1\n2\n3"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, MustDense(t, tc.rows).String())
		})
	}

	var nilM *matrix.Dense
	require.Equal(t, "<nil>", nilM.String())
}

// TestDense_NilReceiver documents nil-safe accessors.
func TestDense_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.False(t, m.IsSquare())
	require.Nil(t, m.ToSlices())
	require.Nil(t, m.Transpose())
	require.Nil(t, m.Scale(2))

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Determinant()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Inverse()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNewFromVectors stacks rows and rejects ragged input.
func TestNewFromVectors(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromVectors([]matrix.Vector{
		matrix.NewVector([]int{1, 2}),
		matrix.NewVector([]int{3, 4}),
	})
	require.NoError(t, err)
	require.True(t, m.Equal(MustDense(t, [][]float64{{1, 2}, {3, 4}})))

	_, err = matrix.NewFromVectors(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromVectors([]matrix.Vector{
		matrix.NewVector([]int{1, 2}),
		matrix.NewVector([]int{3}),
	})
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestNewZerosIdentity covers the dimension checks and the diagonal layout.
func TestNewZerosIdentity(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewZeros(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.ToSlices())

	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, MustIdentity(t, 3).ToSlices())
}

// TestDense_Equal covers exact and tolerant comparison including shape.
func TestDense_Equal(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})
	row := MustDense(t, [][]float64{{1, 2, 3, 4}})

	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.True(t, a.EqualApprox(b, 1e-9))
	require.False(t, a.Equal(row))
	require.False(t, a.EqualApprox(row, 1))
	require.False(t, a.Equal(nil))
}
