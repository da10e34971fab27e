// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Versioning. A changed map is a Clone with extra nodes or streets;
// the source graph is never touched, so searches running on it are unaffected.

package core

// Clone returns a deep copy of the Graph: nodes, positions and adjacency.
//
// Complexity: O(V + E)
// Concurrency: read lock on the source only.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:     make(map[string]*Node, len(g.nodes)),
		adjacency: make(map[string]map[string]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Position: n.Position}
	}
	for id, adj := range g.adjacency {
		inner := make(map[string]float64, len(adj))
		for nbr, w := range adj {
			inner[nbr] = w
		}
		clone.adjacency[id] = inner
	}

	return clone
}
