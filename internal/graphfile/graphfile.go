// Package graphfile loads weighted digraphs from YAML files.
//
// File layout:
//
//	vertices: [A, B, C]   # optional, defaults to "0".."n-1"
//	weights:
//	  - [0, 2, 5]
//	  - [0, 0, 1]
//	  - [.inf, 0, 0]
//
// Row i, column j holds the weight of edge i→j; zero, negative values and
// .inf mean "no edge" (see matrix.DecodeWeight).
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lvpath/matrix"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the loader.
var (
	// ErrEmptyGraph indicates a file without any weight rows.
	ErrEmptyGraph = errors.New("graphfile: no weight rows")

	// ErrLabelCount indicates that the number of labels differs from the
	// number of weight rows.
	ErrLabelCount = errors.New("graphfile: label count does not match order")

	// ErrDuplicateLabel indicates an empty or repeated vertex label.
	ErrDuplicateLabel = errors.New("graphfile: empty or duplicate vertex label")

	// ErrUnknownVertex indicates a lookup that matches neither a label nor
	// an index.
	ErrUnknownVertex = errors.New("graphfile: unknown vertex")
)

// document is the on-disk YAML shape.
type document struct {
	Vertices []string    `yaml:"vertices"`
	Weights  [][]float64 `yaml:"weights"`
}

// Graph is a loaded weight matrix together with its vertex labels.
type Graph struct {
	Labels  []string
	Weights *matrix.Dense

	index map[string]int
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.Labels)
}

// Label returns the label of vertex v.
func (g *Graph) Label(v int) string {
	if v < 0 || v >= len(g.Labels) {
		return strconv.Itoa(v)
	}

	return g.Labels[v]
}

// Lookup resolves a vertex by label first, then by decimal index.
func (g *Graph) Lookup(name string) (int, error) {
	if v, ok := g.index[name]; ok {
		return v, nil
	}
	if v, err := strconv.Atoi(name); err == nil && v >= 0 && v < len(g.Labels) {
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
}

// Load reads and parses the graph file at path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse decodes a YAML graph document and validates that the weights form
// a square matrix with one unique label per vertex.
func Parse(data []byte) (*Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if len(doc.Weights) == 0 {
		return nil, ErrEmptyGraph
	}

	m, err := matrix.NewDenseFromRows(doc.Weights)
	if err != nil {
		return nil, fmt.Errorf("graphfile: weights: %w", err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("graphfile: weights: %w", err)
	}

	n := m.Rows()
	labels := doc.Vertices
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels, %d rows", ErrLabelCount, len(labels), n)
	}

	index := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := index[l]; dup || l == "" {
			return nil, fmt.Errorf("%w: %q at %d", ErrDuplicateLabel, l, i)
		}
		index[l] = i
	}

	return &Graph{Labels: labels, Weights: m, index: index}, nil
}
