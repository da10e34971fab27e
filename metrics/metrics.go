// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of citynav. Collectors are
// registered on the default registry by promauto when the package is loaded.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/search"
)

// Search outcomes, the "outcome" label of SearchesTotal.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

var (
	// SearchesTotal counts queries per algorithm and outcome.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citynav_searches_total",
			Help: "Total number of route searches",
		},
		[]string{"algorithm", "outcome"},
	)

	// SearchDuration measures wall time of a single search.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citynav_search_duration_seconds",
			Help:    "Duration of route searches in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"algorithm"},
	)

	// ExpandedNodes records how many locations a successful search finalized.
	ExpandedNodes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citynav_search_expanded_nodes",
			Help:    "Locations expanded per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"algorithm"},
	)

	// GraphLocations and GraphStreets describe the loaded map.
	GraphLocations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "citynav_graph_locations",
		Help: "Number of locations in the loaded map",
	})
	GraphStreets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "citynav_graph_streets",
		Help: "Number of streets in the loaded map",
	})

	// HTTPRequestsTotal counts API requests by route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "citynav_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures API response time.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "citynav_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "route"},
	)
)

// Outcome classifies a search error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, search.ErrNoPath):
		return OutcomeNoPath
	}
	return OutcomeError
}

// ObserveSearch records one finished search. res may be nil when err is set.
func ObserveSearch(alg search.Algorithm, res *search.Result, err error, elapsed time.Duration) {
	label := string(alg)
	SearchesTotal.WithLabelValues(label, Outcome(err)).Inc()
	SearchDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	if err == nil && res != nil {
		ExpandedNodes.WithLabelValues(label).Observe(float64(res.Expanded))
	}
}

// ObserveGraph publishes the size of g.
func ObserveGraph(g *core.Graph) {
	GraphLocations.Set(float64(g.NodeCount()))
	GraphStreets.Set(float64(g.EdgeCount()))
}

// TimedRun runs search.Run and records it.
func TimedRun(alg search.Algorithm, g *core.Graph, origin, destination string, opts ...search.Option) (*search.Result, error) {
	start := time.Now()
	res, err := search.Run(alg, g, origin, destination, opts...)
	ObserveSearch(alg, res, err, time.Since(start))

	return res, err
}
