// Package matrix_test exercises Dense storage: construction, bounds-checked
// access, cloning and string rendering.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	// The empty graph is representable.
	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 4.5))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		_, err = m.At(c[0], c[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", c[0], c[1])
		require.ErrorIs(t, m.Set(c[0], c[1], 1), matrix.ErrOutOfRange, "Set(%d,%d)", c[0], c[1])
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 5},
		{0, 0, 1},
		{0, 0, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	empty, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1, 2.5}, {0, -1}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
