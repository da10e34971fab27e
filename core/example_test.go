package core_test

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/citynav/core"
)

// ExampleGraph builds a three-location map and lists its streets.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode("Casa", orb.Point{1, 1})
	_ = g.AddNode("Padaria", orb.Point{2, 3})
	_ = g.AddNode("Mercado", orb.Point{4, 2})
	_ = g.AddEdge("Casa", "Padaria", 2.24)
	_ = g.AddEdge("Casa", "Mercado", 3.16)

	for _, e := range g.Edges() {
		fmt.Printf("%s—%s %.2f\n", e.From, e.To, e.Weight)
	}
	nbs, _ := g.Neighbors("Padaria")
	fmt.Println("Padaria neighbors:", len(nbs))

	err := g.AddEdge("Mercado", "Casa", 1)
	fmt.Println(errors.Is(err, core.ErrDuplicateEdge))
	// Output:
	// Casa—Mercado 3.16
	// Casa—Padaria 2.24
	// Padaria neighbors: 1
	// true
}
