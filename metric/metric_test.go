package metric_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metric"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, metric.Distance(orb.Point{0, 0}, orb.Point{3, 4}))
	assert.Equal(t, 0.0, metric.Distance(orb.Point{2, 2}, orb.Point{2, 2}))
	assert.InDelta(t, math.Sqrt(17), metric.Distance(orb.Point{7, 2}, orb.Point{8, 6}), 1e-12)
}

// TestDistanceMetricAxioms checks symmetry and the triangle inequality on random points.
func TestDistanceMetricAxioms(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	pt := func() orb.Point { return orb.Point{r.Float64()*200 - 100, r.Float64()*200 - 100} }
	for i := 0; i < 1000; i++ {
		a, b, c := pt(), pt(), pt()
		ab, ba := metric.Distance(a, b), metric.Distance(b, a)
		require.Equal(t, ab, ba, "symmetry")
		require.GreaterOrEqual(t, ab, 0.0)
		require.LessOrEqual(t, metric.Distance(a, c), ab+metric.Distance(b, c)+1e-9, "triangle inequality")
	}
}

func TestHeuristics(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", orb.Point{1, 1}))
	require.NoError(t, g.AddNode("B", orb.Point{4, 5}))

	h := metric.Euclidean(g)
	assert.Equal(t, 5.0, h("A", "B"))
	assert.Equal(t, 0.0, h("A", "A"))
	assert.Equal(t, 0.0, h("A", "missing"), "unknown IDs estimate zero")
	assert.Equal(t, 0.0, metric.Zero("A", "B"))

	est, err := metric.Estimate(g, "B", "A")
	require.NoError(t, err)
	assert.Equal(t, 5.0, est)

	_, err = metric.Estimate(g, "missing", "A")
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = metric.Estimate(g, "A", "missing")
	require.ErrorIs(t, err, core.ErrUnknownNode)
}
