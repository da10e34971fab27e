// Package citynav finds and compares shortest routes on a small city map.
//
// A city is a set of named locations with planar coordinates and a set of
// streets between them. Every street weighs exactly the straight-line distance
// between its endpoints, which is what makes the straight-line estimate to the
// destination an admissible, consistent heuristic for A*.
//
// Under the hood, everything is organized in small packages:
//
//	core/    : Graph, Node, Edge: thread-safe undirected store with sorted adjacency
//	metric/  : Euclidean distance and the Heuristic contract (Euclidean, Zero)
//	search/  : AStar, Dijkstra (A* with h ≡ 0) and BFS over one Result type
//	citymap/ : YAML city definitions, the built-in demo city, generators, nearest-location index
//	report/  : side-by-side comparison of the three strategies (text and JSON)
//	render/  : GeoJSON of the map with the chosen route highlighted
//	metrics/ : Prometheus collectors for searches and HTTP requests
//	cmd/citynav: CLI and HTTP server
//
// Quick ASCII example of the demo city (x →, y ↑):
//
//	7 |                     Centro
//	6 |           Hospital                 Parque
//	5 |                     Farmacia
//	4 |                          Escola
//	3 |      Padaria
//	2 |                Mercado        Banco
//	1 | Casa
//	  +----------------------------------------
//	    1    2    3    4    5    6    7    8
//
//	go run ./cmd/citynav compare -from Casa -to Parque
package citynav
