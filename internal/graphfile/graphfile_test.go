package graphfile_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvpath/internal/graphfile"
	"github.com/katalvlaran/lvpath/matrix"
	"github.com/stretchr/testify/require"
)

const chain = `
vertices: [A, B, C]
weights:
  - [0, 2, 5]
  - [.inf, 0, 1]
  - [-1, 0, 0]
`

func TestParse_Labelled(t *testing.T) {
	t.Parallel()

	g, err := graphfile.Parse([]byte(chain))
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())
	require.Equal(t, []string{"A", "B", "C"}, g.Labels)
	require.Equal(t, "B", g.Label(1))

	w, err := g.Weights.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(w, 1))

	e, err := matrix.EdgeWeight(g.Weights, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, e.UnwrapOr(0))
}

func TestParse_DefaultLabels(t *testing.T) {
	t.Parallel()

	g, err := graphfile.Parse([]byte("weights:\n  - [0, 1]\n  - [0, 0]\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, g.Labels)
}

func TestGraph_Lookup(t *testing.T) {
	t.Parallel()

	g, err := graphfile.Parse([]byte(chain))
	require.NoError(t, err)

	v, err := g.Lookup("C")
	require.NoError(t, err)
	require.Equal(t, 2, v)

	// Numeric fallback.
	v, err = g.Lookup("1")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	for _, name := range []string{"Z", "3", "-1", ""} {
		_, err = g.Lookup(name)
		require.ErrorIs(t, err, graphfile.ErrUnknownVertex, "name %q", name)
	}

	require.Equal(t, "7", g.Label(7))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "vertices: []\n", graphfile.ErrEmptyGraph},
		{"ragged", "weights:\n  - [0, 1]\n  - [0]\n", matrix.ErrDimensionMismatch},
		{"rectangular", "weights:\n  - [0, 1, 2]\n  - [0, 0, 3]\n", matrix.ErrNonSquare},
		{"label count", "vertices: [A]\nweights:\n  - [0, 1]\n  - [0, 0]\n", graphfile.ErrLabelCount},
		{"duplicate", "vertices: [A, A]\nweights:\n  - [0, 1]\n  - [0, 0]\n", graphfile.ErrDuplicateLabel},
		{"blank label", "vertices: [A, \"\"]\nweights:\n  - [0, 1]\n  - [0, 0]\n", graphfile.ErrDuplicateLabel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graphfile.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := graphfile.Parse([]byte("weights: [[0, x]]"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chain), 0o600))

	g, err := graphfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())

	_, err = graphfile.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
