// SPDX-License-Identifier: MIT

// Command citynav finds and compares routes on a small city map.
//
// Usage:
//
//	citynav [-config file] [-map file] <command> [flags]
//
// Commands:
//
//	compare  run A*, Dijkstra and BFS on one query and print a comparison
//	route    print the route found by one algorithm
//	render   write the map and a highlighted route as GeoJSON
//	nearest  list the locations closest to a point
//	serve    start the HTTP API
//	generate write a synthetic grid or random city as YAML
//
// Without -map the built-in nine-location demo city is used. Without -from and
// -to the query is Casa → Parque.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/citynav/citymap"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/internal/config"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app is what every subcommand receives. graph is nil for standalone commands.
type app struct {
	cfg    *config.Config
	graph  *core.Graph
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

type command func(a *app, args []string) error

var commands = map[string]command{
	"compare":  runCompare,
	"route":    runRoute,
	"render":   runRender,
	"nearest":  runNearest,
	"serve":    runServe,
	"generate": runGenerate,
}

// standalone commands never read the city map.
var standalone = map[string]bool{"generate": true}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("citynav", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "YAML configuration file")
	mapPath := global.String("map", "", "YAML city definition (default: built-in demo city)")
	global.Usage = func() {
		fmt.Fprintln(stderr, "usage: citynav [-config file] [-map file] <compare|route|render|nearest|serve|generate> [flags]")
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return exitUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return exitUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "citynav: unknown command %q\n", rest[0])
		global.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "citynav:", err)
		return exitFailure
	}
	if *mapPath != "" {
		cfg.Map.Path = *mapPath
	}

	logger, err := config.NewLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "citynav:", err)
		return exitFailure
	}
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}
	if !standalone[rest[0]] {
		g, err := loadGraph(cfg.Map.Path)
		if err != nil {
			logger.Error("failed to load map", "path", cfg.Map.Path, "error", err)
			return exitFailure
		}
		logger.Debug("map loaded", "locations", g.NodeCount(), "streets", g.EdgeCount())
		a.graph = g
	}

	switch err = cmd(a, rest[1:]); {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return exitUsage
	default:
		fmt.Fprintln(stderr, "citynav:", err)
		return exitFailure
	}
}

// loadGraph builds the city at path, or the embedded demo city when path is empty.
func loadGraph(path string) (*core.Graph, error) {
	def := citymap.Default()
	if path != "" {
		var err error
		if def, err = citymap.Load(path); err != nil {
			return nil, err
		}
	}
	return citymap.Build(def)
}
