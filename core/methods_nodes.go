// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node queries on Graph.
// Policy:
//   - AddNode is an upsert unless the graph is strict.
//   - An upsert keeps the node's original insertion position.
//   - Every method takes the graph lock; returned values are copies.

package core

import "fmt"

// AddNode inserts a node with the given label and heuristic, or updates the
// heuristic of an existing node.
//
// Errors:
//   - ErrEmptyNodeID if id is empty.
//   - ErrNegativeHeuristic if heuristic < 0.
//   - ErrDuplicateNode if id exists and the graph was built WithStrictNodes.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, heuristic int64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if heuristic < 0 {
		return fmt.Errorf("%w: node %q heuristic=%d", ErrNegativeHeuristic, id, heuristic)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, exists := g.nodes[id]; exists {
		if g.strict {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		n.Heuristic = heuristic // upsert in place; order unchanged

		return nil
	}
	g.nodes[id] = &Node{ID: id, Heuristic: heuristic}
	g.order = append(g.order, id)

	return nil
}

// HasNode reports whether a node with the given label exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a copy of the node with the given label.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return *n, nil
}

// Heuristic returns the heuristic estimate stored for id.
func (g *Graph) Heuristic(id string) (int64, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}

	return n.Heuristic, nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node labels in insertion order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
