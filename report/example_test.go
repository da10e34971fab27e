package report_test

import (
	"os"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/report"
)

// ExampleWriteText prints the demo comparison of the default city.
func ExampleWriteText() {
	g := citymap.MustBuild(citymap.Default())
	c, err := report.Compare(g, "Casa", "Parque")
	if err != nil {
		panic(err)
	}
	_ = report.WriteText(os.Stdout, c)
	// Output:
	// Query:     Casa → Parque
	// Route:     Casa → Mercado → Banco → Parque
	// Cost:      10.29
	// Nodes:     4
	// Heuristic: 8.60 (straight line at origin)
	//
	// ALGORITHM  COST   NODES  EXPANDED
	// A*         10.29  4      6
	// Dijkstra   10.29  4      9
	// BFS        10.29  4      7
	//
	// Admissible heuristic: yes
	// Optimal solution:     guaranteed (A* agrees with Dijkstra)
}
