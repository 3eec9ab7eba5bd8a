// Package core provides the thread-safe, in-memory location graph that every
// lvpath search runs over.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are unique labels carrying a fixed, non-negative heuristic
//     estimate (0 for uninformed use).
//   - Edges carry non-negative int64 weights. Undirected graphs (the default)
//     mirror each edge into both adjacency rows; WithDirected stores one arc.
//   - Adjacency rows keep insertion order. Search strategies that break ties
//     by discovery order (depth-first, greedy) are reproducible because of it.
//   - A single sync.RWMutex guards the arena; any number of searches may read
//     the same graph concurrently.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    AddEdge(a,b,w) stores only a→b.
//
//	– WithStrictNodes()
//	    A repeated AddNode(id, h) fails with ErrDuplicateNode instead of
//	    updating the heuristic in place.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, heuristic int64) error  // O(1), upsert unless strict
//	HasNode(id string) bool                    // O(1)
//	Node(id string) (Node, error)              // O(1)
//	Heuristic(id string) (int64, error)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) error   // O(deg), both endpoints must exist
//	EdgeWeight(from, to string) (int64, bool)      // O(deg)
//
//	// Query
//	Neighbors(id string) (iter.Seq2[string,int64], error) // lazy, restartable, insertion order
//	NeighborList(id string) ([]Neighbor, error)           // copied row
//	Nodes() []Node / NodeIDs() []string                   // insertion order
//	Edges() []Edge                                        // insertion order, one per logical edge
//	Stats() *GraphStats                                   // O(V+E) diagnostics snapshot
//	Clone() *Graph                                        // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyNodeID       – zero-length label
//	ErrUnknownNode       – missing node (also used by the search package)
//	ErrDuplicateNode     – repeated AddNode on a strict graph
//	ErrInvalidWeight     – negative edge weight
//	ErrNegativeHeuristic – negative heuristic estimate
package core
