// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Node, Edge and Neighbor types,
// and provides thread-safe primitives for building, querying, and cloning city maps.
//
// This file declares the types, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrInvalidCoordinate indicates a node position with a NaN or infinite component.
	ErrInvalidCoordinate = errors.New("core: invalid coordinate")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an operation referenced a node that does not exist.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateEdge indicates the pair of nodes is already joined by an edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates the pair of nodes is not joined by an edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Node is a named location on the map.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Position is the planar coordinate (X, Y) of the location.
	Position orb.Point
}

// Edge is an undirected street between two nodes.
//
// Edges returned by Graph.Edges are canonical: From < To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is one entry of a node's adjacency list.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is the city map store.
//
// mu protects nodes, adjacency and edgeCount.
// adjacency[a][b] == adjacency[b][a] == weight for every street a—b.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	adjacency map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]float64),
	}
}
