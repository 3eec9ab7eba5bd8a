// Package lvpath is an in-memory path-planning engine for weighted graphs:
// the classic frontier searches behind one engine, sharing one graph model.
//
// What is inside?
//
//	core/       - Graph: labelled nodes with heuristic estimates, weighted
//	              adjacency kept in insertion order, RW-locked for readers
//	search/     - Engine: breadth-first, depth-first, greedy best-first and
//	              A* (CostOptimal), expansion limits, cancellation, hooks
//	builder/    - deterministic fixtures: Romania road map, paths, grids,
//	              seeded random sparse graphs, Manhattan heuristics
//	graphfile/  - YAML/JSON graph definitions <-> core.Graph
//	cmd/lvpath  - CLI: search, traverse, demo, export
//
// Strategies at a glance:
//
//	Strategy     Frontier        Revisit rule             Optimal?
//	Breadth      FIFO            mark when queued         fewest edges
//	Depth        LIFO            skip closed at pop       no
//	Greedy       min h           first discovery wins     no
//	CostOptimal  min g+h         reopen on cheaper g      yes, h admissible
//
// Quick start:
//
//	g, _ := builder.RomaniaGraph()
//	res, _ := search.Search(g, search.CostOptimal, "Arad", "Bucharest")
//	fmt.Println(res.Path, res.Cost) // [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
//
// Every run is deterministic: ties break by insertion order, and the graph
// is never mutated, so concurrent runs on one graph are safe.
//
//	go get github.com/katalvlaran/lvpath
package lvpath
