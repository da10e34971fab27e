package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/search"
)

// ExampleAStar runs the demo query over the default city.
func ExampleAStar() {
	g := citymap.MustBuild(citymap.Default())

	res, err := search.AStar(g, "Casa", "Parque")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: %s (cost %.2f)\n", res.Algorithm.Label(), strings.Join(res.Path, " → "), res.Cost)
	fmt.Println("expanded:", res.Expanded)
	// Output:
	// A*: Casa → Mercado → Banco → Parque (cost 10.29)
	// expanded: 6
}

// ExampleBFS shows that fewest streets is not the cheapest route.
func ExampleBFS() {
	g := citymap.MustBuild(citymap.Default())

	for _, alg := range []search.Algorithm{search.AlgorithmBFS, search.AlgorithmAStar} {
		res, _ := search.Run(alg, g, "Mercado", "Centro")
		fmt.Printf("%-4s %d streets, cost %.2f\n", res.Algorithm.Label(), res.Hops(), res.Cost)
	}
	// Output:
	// BFS  3 streets, cost 10.29
	// A*   3 streets, cost 6.24
}
