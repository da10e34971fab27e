// SPDX-License-Identifier: MIT

package citymap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDefinition is returned when a definition has no locations.
var ErrEmptyDefinition = errors.New("citymap: definition has no locations")

//go:embed maps/default.yaml
var defaultYAML []byte

// Location is one named point of the map.
type Location struct {
	Name string  `yaml:"name" json:"name"`
	X    float64 `yaml:"x" json:"x"`
	Y    float64 `yaml:"y" json:"y"`
}

// Connection is one street between two locations, by name.
type Connection struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Definition is the full input of Build.
type Definition struct {
	Name        string       `yaml:"name" json:"name"`
	Locations   []Location   `yaml:"locations" json:"locations"`
	Connections []Connection `yaml:"connections" json:"connections"`
}

// Parse decodes a YAML definition. Unknown fields are rejected so that a typo
// such as "conections" fails loudly instead of producing a map without streets.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("citymap: parse definition: %w", err)
	}
	if len(def.Locations) == 0 {
		return nil, ErrEmptyDefinition
	}

	return &def, nil
}

// Load reads and parses the definition stored at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("citymap: read %q: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}

	return def, nil
}

// Encode writes def as YAML that Parse accepts.
func Encode(w io.Writer, def *Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("citymap: encode definition: %w", err)
	}
	return enc.Close()
}

// Default returns a fresh copy of the embedded demo city.
func Default() *Definition {
	def, err := Parse(defaultYAML)
	if err != nil {
		// the embedded file is part of the build; failing here is a programming error
		panic(err)
	}
	return def
}
