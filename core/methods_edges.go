// Package core: edge lifecycle.
//
// Undirected edges are mirrored into both adjacency rows; a self-loop is
// stored once. Re-adding an existing (from,to) pair overwrites its weight in
// place, so rows never hold parallel entries.

package core

import "fmt"

// AddEdge connects from→to with the given weight (and to→from unless the
// graph is directed).
//
// Errors:
//   - ErrEmptyNodeID if either endpoint is empty.
//   - ErrUnknownNode if either endpoint was never added via AddNode.
//   - ErrInvalidWeight if weight < 0.
//
// No state is changed when an error is returned.
// Complexity: O(deg(from) + deg(to)) for the duplicate scan.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrInvalidWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: edge endpoint %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: edge endpoint %q", ErrUnknownNode, to)
	}

	fresh := g.upsertArc(from, to, weight)
	if !g.directed && from != to {
		g.upsertArc(to, from, weight)
	}
	if fresh {
		g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	} else {
		g.updateEdge(from, to, weight)
	}

	return nil
}

// EdgeWeight returns the weight of the from→to arc, if one exists.
// Complexity: O(deg(from)).
func (g *Graph) EdgeWeight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, nb := range g.adj[from] {
		if nb.ID == to {
			return nb.Weight, true
		}
	}

	return 0, false
}

// HasEdge reports whether a from→to arc exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.EdgeWeight(from, to)

	return ok
}

// Edges returns all logical edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of logical edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// upsertArc writes one adjacency entry and reports whether it was new.
// Caller holds g.mu.
func (g *Graph) upsertArc(from, to string, weight int64) bool {
	row := g.adj[from]
	for i := range row {
		if row[i].ID == to {
			row[i].Weight = weight

			return false
		}
	}
	g.adj[from] = append(row, Neighbor{ID: to, Weight: weight})

	return true
}

// updateEdge rewrites the logical edge matching {from,to} in either
// orientation (undirected) or exactly (directed). Caller holds g.mu.
func (g *Graph) updateEdge(from, to string, weight int64) {
	for i := range g.edges {
		e := &g.edges[i]
		if e.From == from && e.To == to {
			e.Weight = weight

			return
		}
		if !g.directed && e.From == to && e.To == from {
			e.Weight = weight

			return
		}
	}
}
