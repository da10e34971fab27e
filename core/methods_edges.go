// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns canonical edges (From < To) sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge joins a and b with an undirected street of the given weight.
//
// Steps:
//  1. Validate IDs, self-loop and weight.
//  2. Lock, check both endpoints exist.
//  3. Reject a second street between the same pair.
//  4. Insert into adjacency[a][b] and adjacency[b][a] under the same lock.
//
// Errors: ErrEmptyNodeID (also ErrUnknownNode), ErrSelfLoop, ErrInvalidWeight, ErrUnknownNode, ErrDuplicateEdge.
// On error the graph is unchanged.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string, weight float64) error {
	// 1) Input validation
	// An empty ID is never present, so it also matches ErrUnknownNode.
	if a == "" || b == "" {
		return fmt.Errorf("%w: %w", ErrUnknownNode, ErrEmptyNodeID)
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s—%s weight=%v", ErrInvalidWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must already exist
	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}

	// 3) Simple graph: one street per pair
	if _, ok := g.adjacency[a][b]; ok {
		return fmt.Errorf("%w: %s—%s", ErrDuplicateEdge, a, b)
	}

	// 4) Mirror
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	g.edgeCount++

	return nil
}

// HasEdge reports whether a street joins a and b (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeWeight returns the weight of the street a—b.
//
// Errors: ErrUnknownNode if either endpoint is missing, ErrEdgeNotFound otherwise.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	if _, ok = g.nodes[b]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}
	w, ok := adj[b]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, a, b)
	}

	return w, nil
}

// Edges returns every street once, with From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for from, adj := range g.adjacency {
		for to, w := range adj {
			if from < to {
				out = append(out, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of streets.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
