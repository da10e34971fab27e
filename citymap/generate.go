// SPDX-License-Identifier: MIT
//
// generate.go: synthetic city definitions for benchmarks, tests and demos.
//
// Determinism:
//   - Grid emits locations in row-major order and, per cell, the Right then
//     Down street.
//   - Random draws positions first, then tries pairs (i<j) in ascending order,
//     so a fixed seed always yields the same definition.

package citymap

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Generator errors.
var (
	// ErrTooFewLocations is returned when a size parameter is below its minimum.
	ErrTooFewLocations = errors.New("citymap: too few locations")

	// ErrInvalidProbability is returned for a street probability outside [0,1].
	ErrInvalidProbability = errors.New("citymap: probability out of range")
)

const (
	defaultSeed   = 1
	defaultExtent = 20
	gridIDFmt     = "%d_%d" // column_row
)

// GenOption customizes a generator.
type GenOption func(*genConfig)

type genConfig struct {
	rng     *rand.Rand
	extent  int
	spacing float64
	idFn    func(int) string
}

func newGenConfig(opts []GenOption) genConfig {
	cfg := genConfig{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		extent:  defaultExtent,
		spacing: 1,
		idFn:    func(i int) string { return fmt.Sprintf("L%02d", i) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed makes Random reproducible for the given seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("citymap: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithExtent sets the side of the square Random places locations in;
// coordinates are integers in [0, extent). Panics if extent < 1.
func WithExtent(extent int) GenOption {
	if extent < 1 {
		panic("citymap: WithExtent(extent<1)")
	}
	return func(c *genConfig) { c.extent = extent }
}

// WithSpacing sets the distance between neighboring Grid locations.
// Panics if spacing is not positive.
func WithSpacing(spacing float64) GenOption {
	if !(spacing > 0) {
		panic("citymap: WithSpacing(spacing<=0)")
	}
	return func(c *genConfig) { c.spacing = spacing }
}

// WithIDScheme sets the location name of index i for Random. Panics on nil.
func WithIDScheme(fn func(int) string) GenOption {
	if fn == nil {
		panic("citymap: WithIDScheme(nil)")
	}
	return func(c *genConfig) { c.idFn = fn }
}

// Grid returns a cols×rows lattice. Location "x_y" sits at
// (x*spacing, y*spacing) and is joined to its right and upper neighbor.
//
// Complexity: O(rows*cols).
func Grid(cols, rows int, opts ...GenOption) (*Definition, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("Grid: cols=%d, rows=%d (each must be ≥ 1): %w", cols, rows, ErrTooFewLocations)
	}
	cfg := newGenConfig(opts)

	def := &Definition{
		Name:        fmt.Sprintf("grid-%dx%d", cols, rows),
		Locations:   make([]Location, 0, cols*rows),
		Connections: make([]Connection, 0, 2*cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			def.Locations = append(def.Locations, Location{
				Name: fmt.Sprintf(gridIDFmt, x, y),
				X:    float64(x) * cfg.spacing,
				Y:    float64(y) * cfg.spacing,
			})
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			u := fmt.Sprintf(gridIDFmt, x, y)
			if x+1 < cols {
				def.Connections = append(def.Connections, Connection{From: u, To: fmt.Sprintf(gridIDFmt, x+1, y)})
			}
			if y+1 < rows {
				def.Connections = append(def.Connections, Connection{From: u, To: fmt.Sprintf(gridIDFmt, x, y+1)})
			}
		}
	}

	return def, nil
}

// Random places n locations at distinct integer points of an extent×extent
// square and joins each pair independently with probability p.
// The result may be disconnected.
//
// Errors: ErrTooFewLocations if n < 1 or n exceeds the extent², ErrInvalidProbability.
//
// Complexity: O(n²).
func Random(n int, p float64, opts ...GenOption) (*Definition, error) {
	cfg := newGenConfig(opts)
	switch {
	case n < 1:
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewLocations)
	case n > cfg.extent*cfg.extent:
		return nil, fmt.Errorf("Random: n=%d exceeds %d free points: %w", n, cfg.extent*cfg.extent, ErrTooFewLocations)
	case p < 0 || p > 1 || math.IsNaN(p):
		return nil, fmt.Errorf("Random: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	def := &Definition{
		Name:      fmt.Sprintf("random-%d", n),
		Locations: make([]Location, 0, n),
	}
	taken := make(map[[2]int]bool, n)
	for len(def.Locations) < n {
		x, y := cfg.rng.Intn(cfg.extent), cfg.rng.Intn(cfg.extent)
		if taken[[2]int{x, y}] {
			continue
		}
		taken[[2]int{x, y}] = true
		def.Locations = append(def.Locations, Location{Name: cfg.idFn(len(def.Locations)), X: float64(x), Y: float64(y)})
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				def.Connections = append(def.Connections, Connection{From: def.Locations[i].Name, To: def.Locations[j].Name})
			}
		}
	}

	return def, nil
}
