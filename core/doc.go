// SPDX-License-Identifier: MIT

// Package core provides the in-memory city map store: named locations with a
// planar position, joined by weighted undirected streets.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: AddEdge inserts the street into both endpoints'
//     adjacency maps in one step, so the mirror invariant never depends on the caller.
//   - Simple graph: no self-loops (ErrSelfLoop) and no parallel streets (ErrDuplicateEdge).
//   - Non-negative, finite float64 weights (ErrInvalidWeight otherwise).
//   - Positions are orb.Point values and are immutable once a node is added.
//   - Deterministic iteration: Nodes(), Edges() and Neighbors() return sorted results,
//     which is what makes search tie-breaking reproducible.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, pos orb.Point) error  // O(1)
//	HasNode(id string) bool                  // O(1)
//	Node(id string) (Node, error)            // O(1)
//	Coordinate(id string) (orb.Point, error) // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, weight float64) error     // O(1)
//	HasEdge(a, b string) bool                      // O(1)
//	EdgeWeight(a, b string) (float64, error)       // O(1)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)  // O(d·log d), sorted by neighbor ID
//	Nodes() []string                          // O(V·log V)
//	Edges() []Edge                            // O(E·log E), From < To
//	NodeCount(), EdgeCount() int              // O(1)
//
//	// Versioning
//	Clone() *Graph                            // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrDuplicateNode  – AddNode with an ID already present
//	ErrUnknownNode    – operation referenced a missing node
//	ErrDuplicateEdge  – AddEdge on a pair that already has a street
//	ErrInvalidWeight  – negative, NaN or infinite weight
//	ErrSelfLoop       – AddEdge(v, v)
//	ErrEdgeNotFound   – EdgeWeight on a pair without a street
//
// Concurrency: a Graph is guarded by a single sync.RWMutex. Once built it is
// read-only in practice and may be shared by any number of concurrent searches.
// To model a changed map, Clone it and mutate the clone; a search running on the
// original keeps observing the original.
package core
