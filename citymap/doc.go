// SPDX-License-Identifier: MIT

// Package citymap turns a map definition (named locations with planar
// coordinates plus the streets that join them) into a read-only core.Graph.
//
// Street weights are never supplied by the definition: Build derives each one
// as metric.Distance between its endpoints. That single rule is what keeps the
// A* heuristic admissible on every map this package produces.
//
// Definitions are YAML documents:
//
//	name: default-city
//	locations:
//	  - {name: Casa, x: 1, y: 1}
//	  - {name: Padaria, x: 2, y: 3}
//	connections:
//	  - {from: Casa, to: Padaria}
//
// Default returns the nine-location demo city (Casa, Padaria, Mercado, Escola,
// Hospital, Farmacia, Banco, Centro, Parque) with its eleven streets.
//
// Grid and Random produce synthetic definitions for benchmarks and property
// tests. Encode writes any definition back as YAML.
//
// Index is a companion R-tree over the node positions used to snap an
// arbitrary point to the closest location.
package citymap
