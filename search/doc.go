// Package search implements frontier-based path planning over a core.Graph.
//
// One engine loop serves four strategies; each Strategy fixes a frontier
// container and a revisit rule:
//
//	Breadth      FIFO queue; visited marked at enqueue.
//	Depth        LIFO stack; neighbors pushed in reverse row order, visited
//	             nodes skipped at pop.
//	Greedy       min-heap on h; a closed or queued node is never re-enqueued,
//	             so the first discovery of a node fixes its predecessor.
//	CostOptimal  min-heap on g+h (ties: lower g, then push order); any
//	             strictly cheaper g re-enqueues the node, reopening it if
//	             closed; superseded entries are dropped when popped.
//
// Every variant tests for the goal when an entry is popped and accepted.
// Per-run bookkeeping (path cost, predecessor, frontier membership, closed
// cost) lives in a table allocated for that run and keyed by node label, so
// runs never contaminate each other and the graph is never written.
//
// Once the goal is accepted, Reconstruct walks the predecessor chain and
// sums the real edge weights found in the graph.
//
// Options:
//
//	WithContext(ctx)       cancellation, checked once per loop iteration
//	WithMaxExpansions(n)   abort with ErrExpansionLimit past n accepted pops
//	WithOnExpand(fn)       hook per accepted pop; an error aborts the run
//	WithLogger(l)          debug-level expansion trace
//	WithObserver(obs)      run outcome callback (metrics)
//
// Complexity (V nodes, E arcs):
//
//	Breadth, Greedy: O((V + E) log V) time at most, O(V) frontier.
//	Depth:           O(V + E) time, O(E) stack.
//	CostOptimal:     O((V + E) log V) with a consistent heuristic; reopenings
//	                 may add expansions when the heuristic is only admissible.
package search
