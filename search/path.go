// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Run dispatches to AStar, Dijkstra or BFS.
func Run(alg Algorithm, g *core.Graph, origin, destination string, opts ...Option) (*Result, error) {
	switch alg {
	case AlgorithmAStar:
		return AStar(g, origin, destination, opts...)
	case AlgorithmDijkstra:
		return Dijkstra(g, origin, destination, opts...)
	case AlgorithmBFS:
		return BFS(g, origin, destination, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}

// PathCost sums the street weights along path, left to right.
//
// Errors: ErrEmptyPath, core.ErrUnknownNode or core.ErrEdgeNotFound (wrapped)
// if consecutive nodes are not joined by a street.
func PathCost(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if !g.HasNode(path[0]) {
		return 0, fmt.Errorf("search: path start: %w: %q", core.ErrUnknownNode, path[0])
	}

	var cost float64
	for i := 1; i < len(path); i++ {
		w, err := g.EdgeWeight(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("search: path step %d: %w", i, err)
		}
		cost += w
	}

	return cost, nil
}

// validate checks the graph and both endpoints before any search state is built.
func validate(g *core.Graph, origin, destination string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(origin) {
		return fmt.Errorf("search: origin: %w: %q", core.ErrUnknownNode, origin)
	}
	if !g.HasNode(destination) {
		return fmt.Errorf("search: destination: %w: %q", core.ErrUnknownNode, destination)
	}
	return nil
}

// reconstruct follows prev from dest back to origin and reverses the result.
func reconstruct(prev map[string]string, origin, dest string) []string {
	path := []string{dest}
	for cur := dest; cur != origin; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
