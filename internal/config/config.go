// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration shared by the citynav CLI and
// HTTP server. Environment variables (${VAR}) are expanded before decoding and
// unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citynav/search"
)

// ErrInvalidConfig is returned by Validate and Load for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration document.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Map      MapConfig     `yaml:"map"`
	Log      LogConfig     `yaml:"log"`
	Defaults QueryDefaults `yaml:"defaults"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// MapConfig selects the city. An empty Path means the embedded default city.
type MapConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// QueryDefaults is the query run when the CLI gets no -from/-to.
type QueryDefaults struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Algorithm   string `yaml:"algorithm"`
}

// Default returns a valid configuration: listen on :8080, default city,
// info-level text logs, Casa → Parque with A*.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Defaults: QueryDefaults{
			Origin:      "Casa",
			Destination: "Parque",
			Algorithm:   string(search.AlgorithmAStar),
		},
	}
}

// Load reads path and decodes it over Default(), so omitted keys keep their
// default values. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err = cfg.decode(os.ExpandEnv(string(data))); err != nil {
		return nil, fmt.Errorf("config: %q: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes an in-memory document over Default() and validates it.
func Parse(doc string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(os.ExpandEnv(doc)); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(doc string) error {
	dec := yaml.NewDecoder(strings.NewReader(doc))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		// an empty document leaves the defaults untouched
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Addr == "" {
		problems = append(problems, "server.addr is empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := ParseFormat(c.Log.Format); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Defaults.Algorithm != "" {
		if _, err := search.ParseAlgorithm(c.Defaults.Algorithm); err != nil {
			problems = append(problems, fmt.Sprintf("defaults.algorithm %q is not astar, dijkstra or bfs", c.Defaults.Algorithm))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
