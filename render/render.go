// SPDX-License-Identifier: MIT

// Package render draws a city map and a highlighted route as a GeoJSON
// FeatureCollection in planar map coordinates. Any GeoJSON viewer can display
// the result. Locations are colored by role and route streets are flagged.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/citynav/core"
)

// ErrNilGraph is returned when no graph is given.
var ErrNilGraph = errors.New("render: graph is nil")

// Location roles, stored in the "role" property of Point features.
const (
	RoleOrigin      = "origin"
	RoleDestination = "destination"
	RolePath        = "path"
	RoleLocation    = "location"
	RoleRoute       = "route"
)

// GeoJSON builds a FeatureCollection of g:
//
//   - one Point per location, properties name and role;
//   - one LineString per street, properties from, to, weight and on_path;
//   - when path has at least two locations, a final LineString along the
//     whole route with role "route", hops and cost.
//
// origin and destination may be empty. Every ID in path must exist in g
// and consecutive IDs must be joined by a street.
func GeoJSON(g *core.Graph, origin, destination string, path []string) (*geojson.FeatureCollection, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	onPath := make(map[string]bool, len(path))
	onStreet := make(map[[2]string]bool, len(path))
	route := make(orb.LineString, 0, len(path))
	var cost float64
	for i, id := range path {
		p, err := g.Coordinate(id)
		if err != nil {
			return nil, fmt.Errorf("render: path: %w", err)
		}
		route = append(route, p)
		onPath[id] = true
		if i == 0 {
			continue
		}
		w, err := g.EdgeWeight(path[i-1], id)
		if err != nil {
			return nil, fmt.Errorf("render: path step %d: %w", i, err)
		}
		cost += w
		onStreet[streetKey(path[i-1], id)] = true
	}

	fc := geojson.NewFeatureCollection()
	points := make(orb.MultiPoint, 0, g.NodeCount())

	// 1) locations
	for _, id := range g.Nodes() {
		p, err := g.Coordinate(id)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		points = append(points, p)

		f := geojson.NewFeature(p)
		f.ID = id
		f.Properties["name"] = id
		f.Properties["role"] = role(id, origin, destination, onPath)
		fc.Append(f)
	}

	// 2) streets
	for _, e := range g.Edges() {
		a, _ := g.Coordinate(e.From)
		b, _ := g.Coordinate(e.To)

		f := geojson.NewFeature(orb.LineString{a, b})
		f.Properties["from"] = e.From
		f.Properties["to"] = e.To
		f.Properties["weight"] = e.Weight
		f.Properties["on_path"] = onStreet[streetKey(e.From, e.To)]
		fc.Append(f)
	}

	// 3) the route as one line
	if len(route) >= 2 {
		f := geojson.NewFeature(route)
		f.Properties["role"] = RoleRoute
		f.Properties["hops"] = len(route) - 1
		f.Properties["cost"] = cost
		fc.Append(f)
	}

	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}

	return fc, nil
}

// WriteGeoJSON writes GeoJSON(g, origin, destination, path) as indented JSON.
func WriteGeoJSON(w io.Writer, g *core.Graph, origin, destination string, path []string) error {
	fc, err := GeoJSON(g, origin, destination, path)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

func role(id, origin, destination string, onPath map[string]bool) string {
	switch {
	case id == origin:
		return RoleOrigin
	case id == destination:
		return RoleDestination
	case onPath[id]:
		return RolePath
	}
	return RoleLocation
}

func streetKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
