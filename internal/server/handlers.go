// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/metrics"
	"github.com/katalvlaran/citynav/render"
	"github.com/katalvlaran/citynav/report"
	"github.com/katalvlaran/citynav/search"
)

const maxNearest = 32

// routeResponse is search.Result plus derived fields.
type routeResponse struct {
	*search.Result
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Hops        int    `json:"hops"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
	Streets   int    `json:"streets"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "ok",
		Locations: s.graph.NodeCount(),
		Streets:   s.graph.EdgeCount(),
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	ids := s.graph.Nodes()
	out := make([]citymap.Location, 0, len(ids))
	for _, id := range ids {
		p, err := s.graph.Coordinate(id)
		if err != nil {
			s.writeSearchError(w, r, err)
			return
		}
		out = append(out, citymap.Location{Name: id, X: p.X(), Y: p.Y()})
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, to, ok := s.endpoints(w, r)
	if !ok {
		return
	}
	alg, ok := s.algorithm(w, r)
	if !ok {
		return
	}

	res, err := metrics.TimedRun(alg, s.graph, from, to)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, routeResponse{Result: res, Origin: from, Destination: to, Hops: res.Hops()})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	from, to, ok := s.endpoints(w, r)
	if !ok {
		return
	}

	c, err := report.Compare(s.graph, from, to)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}
	for _, e := range c.Entries {
		var err error
		if !e.Found() {
			err = search.ErrNoPath
		}
		metrics.SearchesTotal.WithLabelValues(string(e.Algorithm), metrics.Outcome(err)).Inc()
	}
	s.writeJSON(w, r, http.StatusOK, c)
}

// handleMap renders the whole map; with from and to it also highlights the route.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	var path []string
	if from != "" || to != "" {
		if from == "" || to == "" {
			writeError(w, r, http.StatusBadRequest, "both from and to are required to highlight a route")
			return
		}
		alg, ok := s.algorithm(w, r)
		if !ok {
			return
		}
		res, err := metrics.TimedRun(alg, s.graph, from, to)
		if err != nil {
			s.writeSearchError(w, r, err)
			return
		}
		path = res.Path
	}

	fc, err := render.GeoJSON(s.graph, from, to, path)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}
	s.writeEncoded(w, r, http.StatusOK, "application/geo+json", fc)
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	y, errY := strconv.ParseFloat(q.Get("y"), 64)
	if errX != nil || errY != nil {
		writeError(w, r, http.StatusBadRequest, "x and y must be numbers")
		return
	}
	k := 1
	if raw := q.Get("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxNearest {
			writeError(w, r, http.StatusBadRequest, "k must be an integer between 1 and 32")
			return
		}
		k = n
	}

	matches, err := s.index.NearestN(orb.Point{x, y}, k)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, matches)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "endpoint not found")
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// endpoints reads from and to, falling back to the configured defaults.
func (s *Server) endpoints(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" {
		from = s.defaults.Origin
	}
	if to == "" {
		to = s.defaults.Destination
	}
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return "", "", false
	}
	return from, to, true
}

func (s *Server) algorithm(w http.ResponseWriter, r *http.Request) (search.Algorithm, bool) {
	raw := r.URL.Query().Get("algorithm")
	if raw == "" {
		raw = s.defaults.Algorithm
	}
	if raw == "" {
		return search.AlgorithmAStar, true
	}
	alg, err := search.ParseAlgorithm(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return "", false
	}
	return alg, true
}

// writeSearchError maps domain errors to HTTP status codes.
func (s *Server) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrUnknownNode):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, search.ErrNoPath):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, core.ErrEdgeNotFound), errors.Is(err, citymap.ErrEmptyIndex):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "error", err, "request_id", RequestID(r.Context()))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	id := RequestID(r.Context())
	if id == "" {
		id = w.Header().Get(RequestIDHeader)
	}
	body, _ := json.Marshal(errorResponse{Error: msg, RequestID: id})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	s.writeEncoded(w, r, status, "application/json", v)
}

// writeEncoded marshals v before the status line goes out; a value that
// cannot be encoded turns into a 500.
func (s *Server) writeEncoded(w http.ResponseWriter, r *http.Request, status int, contentType string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "error", err, "request_id", RequestID(r.Context()))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err = w.Write(append(body, '\n')); err != nil {
		s.logger.Debug("write response", "error", err, "request_id", RequestID(r.Context()))
	}
}
