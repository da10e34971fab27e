// SPDX-License-Identifier: MIT

// Package search provides result types, options and error definitions
// shared by AStar, Dijkstra and BFS.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/citynav/metric"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNoPath is returned when the destination is unreachable from the origin.
	ErrNoPath = errors.New("search: no path")

	// ErrUnknownAlgorithm is returned for an algorithm name that is not supported.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrEmptyPath is returned by PathCost for a path without nodes.
	ErrEmptyPath = errors.New("search: empty path")
)

// Algorithm names a search strategy.
type Algorithm string

const (
	AlgorithmAStar    Algorithm = "astar"
	AlgorithmDijkstra Algorithm = "dijkstra"
	AlgorithmBFS      Algorithm = "bfs"
)

// Algorithms returns every supported strategy in reporting order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmAStar, AlgorithmDijkstra, AlgorithmBFS}
}

// Label is the display name used in reports.
func (a Algorithm) Label() string {
	switch a {
	case AlgorithmAStar:
		return "A*"
	case AlgorithmDijkstra:
		return "Dijkstra"
	case AlgorithmBFS:
		return "BFS"
	}
	return string(a)
}

// ParseAlgorithm accepts the canonical names plus a few common spellings
// ("a*", "a-star", "ucs", "uniform-cost"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	case "dijkstra", "ucs", "uniform-cost":
		return AlgorithmDijkstra, nil
	case "bfs", "breadth-first":
		return AlgorithmBFS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of one query.
//
//   - Path: node IDs from origin to destination, inclusive (len ≥ 1).
//   - Cost: sum of street weights along Path; 0 when origin == destination.
//   - Expanded: number of nodes finalized (best-first) or dequeued (BFS).
type Result struct {
	Algorithm Algorithm `json:"algorithm"`
	Path      []string  `json:"path"`
	Cost      float64   `json:"cost"`
	Expanded  int       `json:"expanded"`
}

// Hops returns the number of streets on the path.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Heuristic overrides the A* estimate. Nil means metric.Euclidean.
	// Ignored by Dijkstra and BFS.
	Heuristic metric.Heuristic

	// OnExpand is called each time a node is finalized (best-first)
	// or dequeued (BFS).
	OnExpand func(id string)
}

// DefaultOptions returns Options with the Euclidean heuristic and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: nil,
		OnExpand:  func(string) {},
	}
}

// WithHeuristic sets the A* heuristic.
func WithHeuristic(h metric.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
