// SPDX-License-Identifier: MIT

// Package search finds routes between two locations of a core.Graph with three
// strategies that share one result type:
//
//   - AStar:    best-first search ordered by g(n) + h(n), h = Euclidean distance to goal.
//   - Dijkstra: the same runner with h ≡ 0 (uniform-cost search).
//   - BFS:      level-order search that ignores weights; fewest streets, not least cost.
//
// What
//
//	Each call returns a *Result (ordered Path from origin to destination inclusive,
//	total Cost, number of Expanded nodes) or an error. Cost is the sum of the street
//	weights along Path; for BFS it is computed after the fact with PathCost.
//
// Why one runner
//
//	AStar and Dijkstra are the same algorithm with a different metric.Heuristic.
//	bestFirst takes the heuristic as a parameter, so relaxation, tie-breaking and
//	termination are written once.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors sorted by ID, and the frontier orders
//	entries by (priority, insertion sequence). Equal priorities therefore pop in
//	insertion order, and repeated runs on the same graph return identical Results.
//
// Termination and closed set
//
//	The runner stops when the destination is popped. A popped node is final and is
//	never relaxed again. This is sound because street weights are Euclidean lengths,
//	so the Euclidean heuristic is consistent. A custom heuristic passed through
//	WithHeuristic must be consistent as well for the optimality guarantee to hold.
//
// Complexity (V = |nodes|, E = |streets|)
//
//   - AStar, Dijkstra: O((V + E) log V) time, O(V) space; the frontier holds at most
//     one entry per node (decrease-key by delete + reinsert).
//   - BFS:             O(V + E) time, O(V) space.
//
// Errors
//
//   - ErrNilGraph               if the graph pointer is nil.
//   - core.ErrUnknownNode       (wrapped) if origin or destination is absent.
//   - ErrNoPath                 if the destination is unreachable; a normal outcome.
//   - ErrUnknownAlgorithm       from ParseAlgorithm / Run.
//   - core.ErrEdgeNotFound      (wrapped) from PathCost on a broken path.
//
// Concurrency
//
//	Every call owns its frontier and bookkeeping maps; the graph is only read.
//	Independent queries may run concurrently on one graph.
package search
