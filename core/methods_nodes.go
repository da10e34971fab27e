// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// AddNode inserts a location with the given position.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrInvalidCoordinate if either component of pos is NaN or infinite.
//   - ErrDuplicateNode if id is already present; the stored position is left untouched.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string, pos orb.Point) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if !finite(pos[0]) || !finite(pos[1]) {
		return fmt.Errorf("%w: %q at %v", ErrInvalidCoordinate, id, pos)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Position: pos}
	g.adjacency[id] = make(map[string]float64)

	return nil
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the stored node.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return *n, nil
}

// Coordinate returns the stored position of id, or ErrUnknownNode.
// Complexity: O(1).
func (g *Graph) Coordinate(id string) (orb.Point, error) {
	n, err := g.Node(id)
	if err != nil {
		return orb.Point{}, err
	}

	return n.Position, nil
}

// Neighbors returns the adjacency list of id sorted by neighbor ID.
//
// The returned slice is freshly allocated; callers may keep or modify it.
//
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Neighbor, 0, len(adj))
	for nbr, w := range adj {
		out = append(out, Neighbor{ID: nbr, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
