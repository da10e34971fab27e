// SPDX-License-Identifier: MIT

// Package metric is the single distance function of the map.
//
// The same Euclidean metric is used twice: citymap derives every street weight
// from it when a map is built, and search uses it as the A* heuristic. Because
// every street weight equals the straight-line distance between its endpoints,
// the triangle inequality guarantees that no route can be shorter than the
// straight line to the goal. The heuristic is therefore admissible, and also
// consistent (h(u) ≤ w(u,v) + h(v) on every street), which is what lets the
// search finalize a node the first time it is popped.
//
// Functions:
//
//	Distance(a, b orb.Point) float64           // sqrt((x2-x1)^2 + (y2-y1)^2)
//	Euclidean(g *core.Graph) Heuristic         // straight-line estimate to goal
//	Zero(node, goal string) float64            // trivial heuristic (Dijkstra)
//	Estimate(g, node, goal) (float64, error)   // one-shot Euclidean estimate
package metric
