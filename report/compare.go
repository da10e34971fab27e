// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metric"
	"github.com/katalvlaran/citynav/search"
)

// costTolerance absorbs summation-order differences between equal routes.
const costTolerance = 1e-9

// Entry is the outcome of one algorithm.
type Entry struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Label     string           `json:"label"`
	Path      []string         `json:"path,omitempty"`
	Cost      float64          `json:"cost"`
	Expanded  int              `json:"expanded"`
	Error     string           `json:"error,omitempty"`
}

// Found reports whether the algorithm reached the destination.
func (e Entry) Found() bool { return e.Error == "" }

// Nodes is the number of locations on the path, endpoints included.
func (e Entry) Nodes() int { return len(e.Path) }

// Comparison holds one Entry per algorithm in search.Algorithms order.
type Comparison struct {
	Origin           string  `json:"origin"`
	Destination      string  `json:"destination"`
	InitialHeuristic float64 `json:"initial_heuristic"`
	Entries          []Entry `json:"results"`
}

// Compare runs every algorithm from origin to destination on g.
// opts are forwarded to each search.
//
// Errors: search.ErrNilGraph, core.ErrUnknownNode (wrapped). search.ErrNoPath
// is recorded per Entry instead.
func Compare(g *core.Graph, origin, destination string, opts ...search.Option) (*Comparison, error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	h0, err := metric.Estimate(g, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	c := &Comparison{Origin: origin, Destination: destination, InitialHeuristic: h0}
	for _, alg := range search.Algorithms() {
		res, err := search.Run(alg, g, origin, destination, opts...)
		switch {
		case errors.Is(err, search.ErrNoPath):
			c.Entries = append(c.Entries, Entry{Algorithm: alg, Label: alg.Label(), Cost: math.Inf(1), Error: err.Error()})
		case err != nil:
			return nil, fmt.Errorf("report: %s: %w", alg.Label(), err)
		default:
			c.Entries = append(c.Entries, Entry{
				Algorithm: alg,
				Label:     alg.Label(),
				Path:      res.Path,
				Cost:      res.Cost,
				Expanded:  res.Expanded,
			})
		}
	}

	return c, nil
}

// Entry returns the outcome of alg.
func (c *Comparison) Entry(alg search.Algorithm) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Algorithm == alg {
			return e, true
		}
	}
	return Entry{}, false
}

// Found reports whether a route exists at all.
func (c *Comparison) Found() bool {
	e, ok := c.Entry(search.AlgorithmAStar)
	return ok && e.Found()
}

// Optimal reports that A* and Dijkstra agree: both found a route of the same
// cost, or neither found one.
func (c *Comparison) Optimal() bool {
	a, okA := c.Entry(search.AlgorithmAStar)
	d, okD := c.Entry(search.AlgorithmDijkstra)
	if !okA || !okD || a.Found() != d.Found() {
		return false
	}
	if !a.Found() {
		return true
	}
	return math.Abs(a.Cost-d.Cost) <= costTolerance
}

// Admissible reports that the straight-line estimate at the origin does not
// exceed the cost of the A* route.
func (c *Comparison) Admissible() bool {
	a, ok := c.Entry(search.AlgorithmAStar)
	if !ok || !a.Found() {
		return true
	}
	return c.InitialHeuristic <= a.Cost+costTolerance
}

// MarshalJSON adds the derived optimal and admissible flags. Costs of entries
// without a route are encoded as null.
func (c *Comparison) MarshalJSON() ([]byte, error) {
	type entryJSON struct {
		Entry
		Cost *float64 `json:"cost"`
		Hops int      `json:"hops"`
	}
	type comparisonJSON struct {
		Origin           string      `json:"origin"`
		Destination      string      `json:"destination"`
		InitialHeuristic float64     `json:"initial_heuristic"`
		Optimal          bool        `json:"optimal"`
		Admissible       bool        `json:"admissible"`
		Entries          []entryJSON `json:"results"`
	}

	out := comparisonJSON{
		Origin:           c.Origin,
		Destination:      c.Destination,
		InitialHeuristic: c.InitialHeuristic,
		Optimal:          c.Optimal(),
		Admissible:       c.Admissible(),
		Entries:          make([]entryJSON, 0, len(c.Entries)),
	}
	for _, e := range c.Entries {
		ej := entryJSON{Entry: e}
		if e.Found() {
			cost := e.Cost
			ej.Cost = &cost
			ej.Hops = e.Nodes() - 1
		}
		out.Entries = append(out.Entries, ej)
	}

	return json.Marshal(out)
}
