// SPDX-License-Identifier: MIT

package citymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metric"
)

// ErrEmptyIndex is returned by lookups on an index without locations.
var ErrEmptyIndex = errors.New("citymap: index is empty")

// pointTolerance is the half-width of the box stored for each location;
// rtreego rejects zero-size rectangles.
const pointTolerance = 1e-9

// locationEntry wraps a node position for R-tree storage.
type locationEntry struct {
	id   string
	pos  orb.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *locationEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Match is one result of a nearest-location query.
type Match struct {
	ID       string    `json:"id"`
	Position orb.Point `json:"position"`
	Distance float64   `json:"distance"`
}

// Index answers nearest-location queries over a graph's node positions.
// It is built once and is read-only afterwards.
type Index struct {
	tree  *rtreego.Rtree
	bound orb.Bound
	size  int
}

// NewIndex indexes every node of g.
// Complexity: O(V log V).
func NewIndex(g *core.Graph) (*Index, error) {
	tree := rtreego.NewTree(2, 4, 16) // 2D, min 4, max 16 entries per node
	ids := g.Nodes()
	points := make(orb.MultiPoint, 0, len(ids))

	for _, id := range ids {
		pos, err := g.Coordinate(id)
		if err != nil {
			return nil, fmt.Errorf("citymap: index %q: %w", id, err)
		}
		rect, err := rtreego.NewRect(
			rtreego.Point{pos[0] - pointTolerance, pos[1] - pointTolerance},
			[]float64{2 * pointTolerance, 2 * pointTolerance},
		)
		if err != nil {
			return nil, fmt.Errorf("citymap: index %q: %w", id, err)
		}
		tree.Insert(&locationEntry{id: id, pos: pos, bbox: rect})
		points = append(points, pos)
	}

	ix := &Index{tree: tree, size: len(ids)}
	if len(points) > 0 {
		ix.bound = points.Bound()
	}

	return ix, nil
}

// Len returns the number of indexed locations.
func (ix *Index) Len() int { return ix.size }

// Bound returns the bounding box of all indexed locations.
func (ix *Index) Bound() orb.Bound { return ix.bound }

// Nearest returns the ID of the location closest to p.
func (ix *Index) Nearest(p orb.Point) (string, error) {
	matches, err := ix.NearestN(p, 1)
	if err != nil {
		return "", err
	}
	return matches[0].ID, nil
}

// NearestN returns up to k locations ordered by distance to p, then by ID.
func (ix *Index) NearestN(p orb.Point, k int) ([]Match, error) {
	if ix.size == 0 {
		return nil, ErrEmptyIndex
	}
	if k <= 0 {
		return nil, fmt.Errorf("citymap: NearestN: k must be positive (%d)", k)
	}
	if k > ix.size {
		k = ix.size
	}

	found := ix.tree.NearestNeighbors(k, rtreego.Point{p[0], p[1]})
	out := make([]Match, 0, len(found))
	for _, s := range found {
		e, ok := s.(*locationEntry)
		if !ok || e == nil {
			continue
		}
		out = append(out, Match{ID: e.id, Position: e.pos, Distance: metric.Distance(p, e.pos)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].ID < out[j].ID
	})
	if len(out) == 0 {
		return nil, ErrEmptyIndex
	}

	return out, nil
}
