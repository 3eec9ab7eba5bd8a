// File: types.go
// Role: Graph, Node, Edge and Neighbor types, sentinel errors, GraphOption.
// Policy:
//   - The Graph is an arena of nodes indexed by label; predecessor links in
//     lvpath are label lookups, never pointers between nodes.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node label is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node absent from the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateNode indicates AddNode was called twice for one label on a strict graph.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrNegativeHeuristic indicates a negative heuristic estimate.
	ErrNegativeHeuristic = errors.New("core: heuristic must be non-negative")
)

// Node is a labeled location.
//
// Heuristic is the estimated remaining cost to the goal. It is fixed when the
// node is added and is never touched by a search.
type Node struct {
	// ID is the unique label of this Node.
	ID string

	// Heuristic is the supplied estimate of cost-to-goal (0 for uninformed use).
	Heuristic int64
}

// Edge is a weighted connection between two nodes.
//
// For undirected graphs Edges() reports each connection once, in the
// orientation it was first added.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Neighbor is one entry of a node's adjacency row.
type Neighbor struct {
	ID     string
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes AddEdge insert only the from→to direction.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithStrictNodes makes a repeated AddNode for the same label fail with
// ErrDuplicateNode instead of updating the heuristic.
func WithStrictNodes() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the in-memory location graph.
//
// mu guards every field below it. Adjacency rows keep insertion order, which
// is what makes depth-first and greedy tie-breaking reproducible.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed bool // single-direction edges
	strict   bool // reject duplicate AddNode

	// Storage
	nodes map[string]*Node      // label → Node
	order []string              // labels in insertion order
	adj   map[string][]Neighbor // label → outgoing row, insertion order
	edges []Edge                // logical edges in insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and non-strict.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are stored in one direction only.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Strict reports whether duplicate AddNode calls are rejected.
func (g *Graph) Strict() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strict
}
