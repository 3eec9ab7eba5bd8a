// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade over Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - One read-lock phase per call.

package core

import "math"

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed       bool
	Strict         bool
	NodeCount      int
	EdgeCount      int
	ArcCount       int // adjacency entries (2 per undirected non-loop edge)
	MaxDegree      int
	InformedNodes  int   // nodes with Heuristic > 0
	MaxHeuristic   int64 // largest supplied estimate
	IsolatedNodes  int   // nodes with an empty adjacency row
	TotalEdgeCost  int64 // sum of logical edge weights, capped at math.MaxInt64
	HeuristicRatio float64
}

// Stats produces a deterministic snapshot of flags and counts, suitable for
// diagnostics and log fields.
//
// HeuristicRatio is InformedNodes/NodeCount (0 for an empty graph); a ratio of
// 0 means informed strategies degrade to their tie-break order.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:  g.directed,
		Strict:    g.strict,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for _, id := range g.order {
		deg := len(g.adj[id])
		stats.ArcCount += deg
		if deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
		if deg == 0 {
			stats.IsolatedNodes++
		}
		h := g.nodes[id].Heuristic
		if h > 0 {
			stats.InformedNodes++
		}
		if h > stats.MaxHeuristic {
			stats.MaxHeuristic = h
		}
	}
	for _, e := range g.edges {
		if e.Weight > math.MaxInt64-stats.TotalEdgeCost {
			stats.TotalEdgeCost = math.MaxInt64
			break
		}
		stats.TotalEdgeCost += e.Weight
	}
	if stats.NodeCount > 0 {
		stats.HeuristicRatio = float64(stats.InformedNodes) / float64(stats.NodeCount)
	}

	return &stats
}
