// SPDX-License-Identifier: MIT

// Package report runs AStar, Dijkstra and BFS on the same query and renders
// the outcome side by side, as text for terminals or as JSON for the HTTP API.
//
// A query that has no route is not an error here: each algorithm's ErrNoPath is
// recorded on its Entry and the comparison is still produced. Unknown locations
// and a nil graph abort Compare.
package report
