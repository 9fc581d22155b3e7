// Package dijkstra defines sentinel errors and configuration options
// for the adjacency-matrix shortest-path solver.
//
// Options:
//
//	– FullTree:     keep finalizing vertices after the target is reached.
//	– MaxDistance:  candidate distances above this cap are never recorded.
//	– StrictMatrix: validate the matrix shape and entries in New.
//
// Errors (sentinel):
//
//	– ErrNilMatrix            if New receives a nil matrix.
//	– ErrNegativeVertexCount  if New receives n < 0.
//	– ErrVertexOutOfRange     if a source or target is outside [0, n).
//	– ErrNotComputed          if a path is requested before any computation.
//	– ErrNoPath               if the predecessor chain does not lead back to the source.
//	– ErrBadMaxDistance       if MaxDistance is negative or NaN (raised via panic).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates that a nil matrix was passed to New.
	ErrNilMatrix = errors.New("dijkstra: weight matrix is nil")

	// ErrNegativeVertexCount indicates that New received a negative vertex count.
	ErrNegativeVertexCount = errors.New("dijkstra: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates that a source or target index is outside [0, n).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNotComputed indicates that a path was requested before any shortest-path
	// computation completed on the solver.
	ErrNotComputed = errors.New("dijkstra: no computation available")

	// ErrNoPath indicates that the predecessor tree holds no path from the source
	// to the requested target.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Solver.
//
// FullTree     – if true, the run continues past the target until every reachable
//
//	vertex is finalized, so the Result answers Path(source, v) for any v.
//
// MaxDistance  – cap on recorded distances. Default is +Inf (no cap).
// StrictMatrix – if true, New validates the matrix (square, order n, no NaN).
type Options struct {
	FullTree     bool    // Finalize the whole reachable set, not just up to the target
	MaxDistance  float64 // Maximum distance to record
	StrictMatrix bool    // Validate the matrix at construction time
}

// Option represents a functional option for configuring the Solver.
type Option func(*Options)

// WithFullTree makes every run build the complete shortest-path tree rooted
// at the source instead of stopping once the target is finalized.
// Costs and paths to the target are unchanged; only the amount of work differs.
func WithFullTree() Option {
	return func(o *Options) {
		o.FullTree = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed max are treated as unreachable (cost +Inf).
// Panics with ErrBadMaxDistance on negative or NaN input.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithStrictMatrix enables matrix validation in New. Without it, a malformed
// matrix surfaces as a wrapped matrix.ErrOutOfRange during computation.
func WithStrictMatrix() Option {
	return func(o *Options) {
		o.StrictMatrix = true
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - FullTree:     false (stop once the target is finalized).
//   - MaxDistance:  +Inf (no cap).
//   - StrictMatrix: false (no validation at construction).
func DefaultOptions() Options {
	return Options{
		FullTree:     false,
		MaxDistance:  math.Inf(1),
		StrictMatrix: false,
	}
}
