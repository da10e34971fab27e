// SPDX-License-Identifier: MIT

package metric

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/citynav/core"
)

// Heuristic estimates the remaining cost from node to goal.
// An admissible Heuristic never exceeds the true shortest-path cost.
type Heuristic func(node, goal string) float64

// Distance returns the Euclidean distance between a and b.
// It is symmetric, non-negative and satisfies the triangle inequality.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Zero is the trivial heuristic. Best-first search with Zero is Dijkstra.
func Zero(_, _ string) float64 { return 0 }

// Euclidean returns the straight-line heuristic over g's node positions.
//
// Unknown IDs estimate 0, which is still admissible; search validates its
// endpoints before the heuristic is ever consulted.
func Euclidean(g *core.Graph) Heuristic {
	return func(node, goal string) float64 {
		h, err := Estimate(g, node, goal)
		if err != nil {
			return 0
		}
		return h
	}
}

// Estimate returns Distance(Coordinate(node), Coordinate(goal)).
// Errors: core.ErrUnknownNode if either ID is absent.
func Estimate(g *core.Graph, node, goal string) (float64, error) {
	a, err := g.Coordinate(node)
	if err != nil {
		return 0, err
	}
	b, err := g.Coordinate(goal)
	if err != nil {
		return 0, err
	}

	return Distance(a, b), nil
}
