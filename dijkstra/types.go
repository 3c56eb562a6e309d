// Package dijkstra defines route results, configuration options and sentinel
// errors for the shortest-path router.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/transitcat/core"
)

// Sentinel errors returned by the router.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to NewRouter.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrVertexNotFound indicates that a query vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that the target cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxWeight indicates that MaxWeight was set to a negative value.
	ErrBadMaxWeight = errors.New("dijkstra: MaxWeight must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// RouteInfo is one optimal path.
type RouteInfo struct {
	// Weight is the total weight of the path.
	Weight float64

	// Edges lists the path edges from source to target.
	// Empty when source == target.
	Edges []core.EdgeID
}

// Options configures the router.
//
// MaxWeight        – vertices whose shortest weight exceeds this are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxWeight        float64 // Maximum total weight to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring the router.
type Option func(*Options)

// WithMaxWeight sets a cap on explored path weight.
// Targets farther than max are reported as ErrUnreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxWeight.
func WithMaxWeight(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Invalid configuration is a programmer error.
		panic(ErrBadMaxWeight.Error())
	}

	return func(o *Options) {
		o.MaxWeight = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxWeight:        math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
