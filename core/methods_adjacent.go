// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries.
// Policy:
//   - Rows are reported in insertion order (the tie-break order of depth-first
//     and greedy search).
//   - Iterators snapshot the row under the read lock when a pass starts and
//     yield without holding it, so a consumer may call back into the Graph.

package core

import (
	"fmt"
	"iter"
)

// Neighbors returns a lazy, restartable sequence of (neighbor, weight) pairs
// for id, in insertion order. Each range over the sequence starts a fresh pass
// over the current row.
//
// Errors:
//   - ErrUnknownNode if id does not exist.
//
// Complexity: O(1) to obtain; O(deg(id)) per pass.
func (g *Graph) Neighbors(id string) (iter.Seq2[string, int64], error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return func(yield func(string, int64) bool) {
		for _, nb := range g.row(id) {
			if !yield(nb.ID, nb.Weight) {
				return
			}
		}
	}, nil
}

// NeighborList returns a copy of id's adjacency row in insertion order.
func (g *Graph) NeighborList(id string) ([]Neighbor, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return g.row(id), nil
}

// Degree returns the number of outgoing arcs of id.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[id]), nil
}

// row snapshots the adjacency row of id.
func (g *Graph) row(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.adj[id]
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out
}
