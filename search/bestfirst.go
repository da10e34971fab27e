// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metric"
)

// AStar returns the least-cost route from origin to destination, expanding
// nodes in order of g(n) + h(n) where h is the straight-line distance to the
// destination (override with WithHeuristic).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. origin and destination must exist (core.ErrUnknownNode, wrapped).
//
// Returns ErrNoPath (wrapped) if the frontier empties before the destination is popped.
//
// Complexity: O((V + E) log V) time, O(V) space.
func AStar(g *core.Graph, origin, destination string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	if err := validate(g, origin, destination); err != nil {
		return nil, err
	}
	h := o.Heuristic
	if h == nil {
		h = metric.Euclidean(g)
	}

	return bestFirst(g, origin, destination, h, AlgorithmAStar, o)
}

// Dijkstra returns the least-cost route from origin to destination by
// uniform-cost search: AStar with the zero heuristic. Same guarantees, same
// tie-break policy, same failure mode.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *core.Graph, origin, destination string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	if err := validate(g, origin, destination); err != nil {
		return nil, err
	}

	return bestFirst(g, origin, destination, metric.Zero, AlgorithmDijkstra, o)
}

// runner holds the mutable state for a single best-first execution.
type runner struct {
	g        *core.Graph        // read-only within the search
	dest     string             // destination node ID
	h        metric.Heuristic   // estimate to dest; metric.Zero for Dijkstra
	opts     Options            // hooks
	dist     map[string]float64 // best known g(n) from origin
	prev     map[string]string  // predecessor used to reach n at dist[n]
	closed   map[string]bool    // finalized nodes
	open     *frontier          // priority g(n) + h(n)
	expanded int
}

// bestFirst is the shared engine behind AStar and Dijkstra.
func bestFirst(g *core.Graph, origin, dest string, h metric.Heuristic, alg Algorithm, o Options) (*Result, error) {
	n := g.NodeCount()
	r := &runner{
		g:      g,
		dest:   dest,
		h:      h,
		opts:   o,
		dist:   make(map[string]float64, n),
		prev:   make(map[string]string, n),
		closed: make(map[string]bool, n),
		open:   newFrontier(n),
	}
	r.init(origin)

	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, origin, dest)
	}

	return &Result{
		Algorithm: alg,
		Path:      reconstruct(r.prev, origin, dest),
		Cost:      r.dist[dest],
		Expanded:  r.expanded,
	}, nil
}

// init sets g(origin) = 0 and pushes origin with priority h(origin).
func (r *runner) init(origin string) {
	r.dist[origin] = 0
	r.open.push(origin, r.h(origin, r.dest))
}

// process pops the best entry until the destination is finalized or the
// frontier is empty. It reports whether the destination was reached.
func (r *runner) process() (bool, error) {
	for r.open.len() > 0 {
		// 1) Smallest g+h; ties pop in insertion order.
		item, _ := r.open.pop()
		u := item.id

		// 2) u is final from here on.
		r.closed[u] = true
		r.expanded++
		r.opts.OnExpand(u)

		// 3) Goal test on pop, not on push: only then is dist[u] minimal.
		if u == r.dest {
			return true, nil
		}

		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax improves the g-value of every open neighbor of u reachable through u.
// Only a strictly shorter candidate replaces the known one, so among equal-cost
// routes the first discovered wins.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("search: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, nb := range neighbors {
		if r.closed[nb.ID] {
			continue
		}
		candidate := du + nb.Weight
		if best, ok := r.dist[nb.ID]; ok && candidate >= best {
			continue
		}
		r.dist[nb.ID] = candidate
		r.prev[nb.ID] = u
		r.open.push(nb.ID, candidate+r.h(nb.ID, r.dest))
	}

	return nil
}
