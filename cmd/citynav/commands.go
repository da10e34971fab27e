// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/internal/server"
	"github.com/katalvlaran/citynav/metrics"
	"github.com/katalvlaran/citynav/render"
	"github.com/katalvlaran/citynav/report"
	"github.com/katalvlaran/citynav/search"
)

// newFlagSet returns a subcommand flag set that reports errors on a.stderr.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("citynav "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// queryFlags registers -from and -to with the configured defaults.
func (a *app) queryFlags(fs *flag.FlagSet) (from, to *string) {
	from = fs.String("from", a.cfg.Defaults.Origin, "origin location")
	to = fs.String("to", a.cfg.Defaults.Destination, "destination location")
	return from, to
}

func (a *app) algorithmFlag(fs *flag.FlagSet) *string {
	def := a.cfg.Defaults.Algorithm
	if def == "" {
		def = string(search.AlgorithmAStar)
	}
	return fs.String("algorithm", def, "astar, dijkstra or bfs")
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return errUsage
	}
	return nil
}

func runCompare(a *app, args []string) error {
	fs := a.newFlagSet("compare")
	from, to := a.queryFlags(fs)
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	if err := parse(fs, args); err != nil {
		return err
	}

	c, err := report.Compare(a.graph, *from, *to)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	return report.WriteText(a.stdout, c)
}

func runRoute(a *app, args []string) error {
	fs := a.newFlagSet("route")
	from, to := a.queryFlags(fs)
	algName := a.algorithmFlag(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	alg, err := search.ParseAlgorithm(*algName)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return errUsage
	}

	res, err := metrics.TimedRun(alg, a.graph, *from, *to)
	if errors.Is(err, search.ErrNoPath) {
		fmt.Fprintf(a.stdout, "%s: no route from %s to %s\n", alg.Label(), *from, *to)
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: %s (cost %.2f, %d nodes, %d expanded)\n",
		alg.Label(), strings.Join(res.Path, " → "), res.Cost, len(res.Path), res.Expanded)

	return nil
}

func runRender(a *app, args []string) error {
	fs := a.newFlagSet("render")
	from, to := a.queryFlags(fs)
	algName := a.algorithmFlag(fs)
	out := fs.String("out", "", "output file (default: stdout)")
	if err := parse(fs, args); err != nil {
		return err
	}
	alg, err := search.ParseAlgorithm(*algName)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return errUsage
	}

	var path []string
	res, err := metrics.TimedRun(alg, a.graph, *from, *to)
	switch {
	case errors.Is(err, search.ErrNoPath):
		a.logger.Warn("no route, rendering map only", "from", *from, "to", *to)
	case err != nil:
		return err
	default:
		path = res.Path
	}

	if *out == "" {
		return render.WriteGeoJSON(a.stdout, a.graph, *from, *to, path)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if err = render.WriteGeoJSON(f, a.graph, *from, *to, path); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	a.logger.Info("map written", "file", *out, "route_nodes", len(path))

	return nil
}

func runNearest(a *app, args []string) error {
	fs := a.newFlagSet("nearest")
	x := fs.Float64("x", 0, "x coordinate")
	y := fs.Float64("y", 0, "y coordinate")
	k := fs.Int("k", 1, "number of locations")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *k < 1 {
		fmt.Fprintln(a.stderr, "-k must be positive")
		return errUsage
	}

	ix, err := citymap.NewIndex(a.graph)
	if err != nil {
		return err
	}
	matches, err := ix.NearestN(orb.Point{*x, *y}, *k)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Fprintf(a.stdout, "%-10s (%g, %g) distance %.2f\n", m.ID, m.Position.X(), m.Position.Y(), m.Distance)
	}

	return nil
}

func runServe(a *app, args []string) error {
	fs := a.newFlagSet("serve")
	addr := fs.String("addr", a.cfg.Server.Addr, "listen address")
	if err := parse(fs, args); err != nil {
		return err
	}
	a.cfg.Server.Addr = *addr

	srv, err := server.New(a.graph, a.cfg, a.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// runGenerate writes a synthetic city definition as YAML. It does not use the
// loaded map.
func runGenerate(a *app, args []string) error {
	fs := a.newFlagSet("generate")
	kind := fs.String("kind", "grid", "grid or random")
	cols := fs.Int("cols", 5, "grid columns")
	rows := fs.Int("rows", 5, "grid rows")
	n := fs.Int("n", 10, "random: number of locations")
	p := fs.Float64("p", 0.3, "random: probability of a street between two locations")
	seed := fs.Int64("seed", 1, "random: seed")
	extent := fs.Int("extent", 20, "random: side of the square holding the locations")
	out := fs.String("out", "", "output file (default: stdout)")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		def *citymap.Definition
		err error
	)
	switch *kind {
	case "grid":
		def, err = citymap.Grid(*cols, *rows)
	case "random":
		if *extent < 1 {
			fmt.Fprintln(a.stderr, "-extent must be positive")
			return errUsage
		}
		def, err = citymap.Random(*n, *p, citymap.WithSeed(*seed), citymap.WithExtent(*extent))
	default:
		fmt.Fprintf(a.stderr, "unknown -kind %q\n", *kind)
		return errUsage
	}
	if err != nil {
		return err
	}
	// refuse to write a definition that would not load
	if _, err = citymap.Build(def); err != nil {
		return err
	}

	if *out == "" {
		return citymap.Encode(a.stdout, def)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if err = citymap.Encode(f, def); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	a.logger.Info("definition written", "file", *out, "locations", len(def.Locations), "streets", len(def.Connections))

	return nil
}
