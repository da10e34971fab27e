package metrics_test

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metrics"
	"github.com/katalvlaran/citynav/search"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeFound, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeNoPath, metrics.Outcome(fmt.Errorf("wrapped: %w", search.ErrNoPath)))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(core.ErrUnknownNode))
}

func TestTimedRun(t *testing.T) {
	g := citymap.MustBuild(citymap.Default())
	found := metrics.SearchesTotal.WithLabelValues("bfs", metrics.OutcomeFound)
	failed := metrics.SearchesTotal.WithLabelValues("bfs", metrics.OutcomeError)
	beforeFound, beforeFailed := counterValue(t, found), counterValue(t, failed)

	res, err := metrics.TimedRun(search.AlgorithmBFS, g, "Casa", "Parque")
	require.NoError(t, err)
	require.Equal(t, "Parque", res.Path[len(res.Path)-1])

	_, err = metrics.TimedRun(search.AlgorithmBFS, g, "Casa", "Atlantis")
	require.Error(t, err)

	assert.Equal(t, beforeFound+1, counterValue(t, found))
	assert.Equal(t, beforeFailed+1, counterValue(t, failed))
}

func TestObserveSearch_NoPath(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("X", orb.Point{0, 0}))
	require.NoError(t, g.AddNode("Y", orb.Point{1, 1}))

	c := metrics.SearchesTotal.WithLabelValues("astar", metrics.OutcomeNoPath)
	before := counterValue(t, c)
	_, err := metrics.TimedRun(search.AlgorithmAStar, g, "X", "Y")
	require.ErrorIs(t, err, search.ErrNoPath)
	assert.Equal(t, before+1, counterValue(t, c))
}

func TestObserveGraph(t *testing.T) {
	metrics.ObserveGraph(citymap.MustBuild(citymap.Default()))
	assert.Equal(t, 9.0, gaugeValue(t, metrics.GraphLocations))
	assert.Equal(t, 11.0, gaugeValue(t, metrics.GraphStreets))
}
