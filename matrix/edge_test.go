package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/stretchr/testify/require"
)

func TestDecodeWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
		some bool
	}{
		{"positive", 2.5, 2.5, true},
		{"tiny", 1e-9, 1e-9, true},
		{"zero", 0, 0, false},
		{"negative", -3, 0, false},
		{"negative inf", math.Inf(-1), 0, false},
		{"positive inf", math.Inf(1), 0, false},
		{"nan", math.NaN(), 0, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := matrix.DecodeWeight(tc.in)
			require.Equal(t, tc.some, got.IsSome())
			if tc.some {
				require.Equal(t, tc.want, got.UnwrapOr(-1))
			}
		})
	}
}

func TestEdgeWeight(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 2},
		{-1, 0},
	})
	require.NoError(t, err)

	w, err := matrix.EdgeWeight(m, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, w.UnwrapOr(0))

	w, err = matrix.EdgeWeight(m, 1, 0)
	require.NoError(t, err)
	require.True(t, w.IsNone())

	_, err = matrix.EdgeWeight(m, 0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
