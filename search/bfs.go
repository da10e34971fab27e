// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     Options
	queue    []string
	visited  map[string]bool
	parent   map[string]string
	expanded int
}

// BFS returns the route with the fewest streets from origin to destination.
//
// Weights are ignored while searching: nodes are explored in strict level order
// and each node keeps its first-seen parent. The reported Cost is the sum of
// the real street weights along the chosen path and may exceed the AStar cost.
//
// Errors: ErrNilGraph, core.ErrUnknownNode (wrapped), ErrNoPath (wrapped).
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, origin, destination string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	if err := validate(g, origin, destination); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
	}
	w.enqueue(origin, "")

	found, err := w.loop(destination)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, origin, destination)
	}

	path := reconstruct(w.parent, origin, destination)
	cost, err := PathCost(g, path)
	if err != nil {
		return nil, err
	}

	return &Result{Algorithm: AlgorithmBFS, Path: path, Cost: cost, Expanded: w.expanded}, nil
}

// enqueue marks id seen, records its parent and appends it to the queue.
func (w *walker) enqueue(id, parent string) {
	w.visited[id] = true
	if parent != "" {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// loop dequeues until dest is dequeued or the queue is empty.
func (w *walker) loop(dest string) (bool, error) {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.expanded++
		w.opts.OnExpand(id)

		if id == dest {
			return true, nil
		}

		neighbors, err := w.graph.Neighbors(id)
		if err != nil {
			return false, fmt.Errorf("search: failed to get neighbors of %q: %w", id, err)
		}
		for _, nb := range neighbors {
			if !w.visited[nb.ID] {
				w.enqueue(nb.ID, id)
			}
		}
	}

	return false, nil
}
