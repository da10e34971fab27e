package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/report"
	"github.com/katalvlaran/citynav/search"
)

func TestCompare_DefaultCity(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())

	c, err := report.Compare(g, "Mercado", "Centro")
	require.NoError(t, err)
	require.Len(t, c.Entries, 3)
	assert.InDelta(t, math.Sqrt(26), c.InitialHeuristic, 1e-12)

	a, ok := c.Entry(search.AlgorithmAStar)
	require.True(t, ok)
	d, ok := c.Entry(search.AlgorithmDijkstra)
	require.True(t, ok)
	b, ok := c.Entry(search.AlgorithmBFS)
	require.True(t, ok)

	assert.Equal(t, "A*", a.Label)
	assert.Equal(t, a.Path, d.Path)
	assert.Greater(t, b.Cost, a.Cost, "BFS minimizes streets, not length")
	assert.Equal(t, 4, b.Nodes())
	assert.True(t, c.Found())
	assert.True(t, c.Optimal())
	assert.True(t, c.Admissible())
}

func TestCompare_Errors(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())

	_, err := report.Compare(nil, "Casa", "Parque")
	require.ErrorIs(t, err, search.ErrNilGraph)
	_, err = report.Compare(g, "Casa", "Atlantis")
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func islands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("X", orb.Point{0, 0}))
	require.NoError(t, g.AddNode("Y", orb.Point{3, 4}))
	return g
}

func TestCompare_NoRoute(t *testing.T) {
	c, err := report.Compare(islands(t), "X", "Y")
	require.NoError(t, err)
	for _, e := range c.Entries {
		assert.False(t, e.Found(), e.Label)
		assert.Contains(t, e.Error, "no path")
		assert.Empty(t, e.Path)
	}
	assert.False(t, c.Found())
	assert.True(t, c.Optimal(), "neither strategy found a route")

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, c))
	assert.Contains(t, buf.String(), "Route:     no route")
	assert.Contains(t, buf.String(), "A*         no route  -      0")
}

func TestComparison_OptimalDetectsDisagreement(t *testing.T) {
	c := &report.Comparison{
		Origin: "A", Destination: "B", InitialHeuristic: 5,
		Entries: []report.Entry{
			{Algorithm: search.AlgorithmAStar, Label: "A*", Path: []string{"A", "C", "B"}, Cost: 7},
			{Algorithm: search.AlgorithmDijkstra, Label: "Dijkstra", Path: []string{"A", "B"}, Cost: 6},
		},
	}
	assert.False(t, c.Optimal())
	assert.True(t, c.Admissible())

	c.InitialHeuristic = 8
	assert.False(t, c.Admissible())

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, c))
	assert.Contains(t, buf.String(), "Admissible heuristic: no")
	assert.Contains(t, buf.String(), "NOT confirmed")
}

func TestComparison_JSON(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())
	c, err := report.Compare(g, "Casa", "Parque")
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
		Optimal     bool   `json:"optimal"`
		Admissible  bool   `json:"admissible"`
		Results     []struct {
			Algorithm string   `json:"algorithm"`
			Path      []string `json:"path"`
			Cost      *float64 `json:"cost"`
			Hops      int      `json:"hops"`
			Expanded  int      `json:"expanded"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Casa", got.Origin)
	assert.True(t, got.Optimal)
	assert.True(t, got.Admissible)
	require.Len(t, got.Results, 3)
	assert.Equal(t, "astar", got.Results[0].Algorithm)
	require.NotNil(t, got.Results[0].Cost)
	assert.InDelta(t, 10.285383, *got.Results[0].Cost, 1e-6)
	assert.Equal(t, 3, got.Results[0].Hops)
	assert.Equal(t, 6, got.Results[0].Expanded)

	// unreachable entries encode a null cost instead of failing on +Inf
	c, err = report.Compare(islands(t), "X", "Y")
	require.NoError(t, err)
	data, err = json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cost":null`)
}
