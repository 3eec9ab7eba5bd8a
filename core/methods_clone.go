// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, nodes (with their
// insertion order), adjacency rows, and the logical edge list.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed: g.directed,
		strict:   g.strict,
		nodes:    make(map[string]*Node, len(g.nodes)),
		order:    make([]string, len(g.order)),
		adj:      make(map[string][]Neighbor, len(g.adj)),
		edges:    make([]Edge, len(g.edges)),
	}
	copy(clone.order, g.order)
	copy(clone.edges, g.edges)
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	for id, row := range g.adj {
		cp := make([]Neighbor, len(row))
		copy(cp, row)
		clone.adj[id] = cp
	}

	return clone
}
