// SPDX-License-Identifier: MIT

package citymap

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metric"
)

// Build constructs the graph described by def.
//
// Steps:
//  1. Add every location as a node (core.ErrDuplicateNode on repeated names).
//  2. For every connection, weight = metric.Distance(from, to), then AddEdge
//     (core.ErrUnknownNode, core.ErrDuplicateEdge, core.ErrSelfLoop).
//
// Any error aborts construction and no graph is returned.
//
// Complexity: O(V + E).
func Build(def *Definition) (*core.Graph, error) {
	if def == nil || len(def.Locations) == 0 {
		return nil, ErrEmptyDefinition
	}

	g := core.NewGraph()
	for i, loc := range def.Locations {
		if err := g.AddNode(loc.Name, orb.Point{loc.X, loc.Y}); err != nil {
			return nil, fmt.Errorf("citymap: location #%d: %w", i, err)
		}
	}

	for i, c := range def.Connections {
		a, err := g.Coordinate(c.From)
		if err != nil {
			return nil, fmt.Errorf("citymap: connection #%d: %w", i, err)
		}
		b, err := g.Coordinate(c.To)
		if err != nil {
			return nil, fmt.Errorf("citymap: connection #%d: %w", i, err)
		}
		if err = g.AddEdge(c.From, c.To, metric.Distance(a, b)); err != nil {
			return nil, fmt.Errorf("citymap: connection #%d: %w", i, err)
		}
	}

	return g, nil
}

// MustBuild is Build for definitions known to be valid, such as Default().
func MustBuild(def *Definition) *core.Graph {
	g, err := Build(def)
	if err != nil {
		panic(err)
	}
	return g
}
