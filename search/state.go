package search

import "math"

// addCost adds two non-negative costs, saturating at math.MaxInt64 so an
// oversized sum never wraps into a negative priority.
func addCost(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// nodeState is the per-run bookkeeping of one node. Nodes themselves are
// never mutated by a search.
type nodeState struct {
	cost       int64 // best path cost from source recorded so far
	known      bool  // cost holds a real value
	queued     bool  // Breadth/Greedy: currently or previously enqueued
	closed     bool  // accepted off the frontier at least once
	closedCost int64 // path cost at the latest acceptance
}

// runState is the fresh state table allocated for every run, keyed by label.
type runState struct {
	nodes    map[string]*nodeState
	parent   map[string]string
	front    frontier
	seq      uint64
	stats    Stats
	expanded []string
}

func newRunState(front frontier, capHint int) *runState {
	return &runState{
		nodes:    make(map[string]*nodeState, capHint),
		parent:   make(map[string]string, capHint),
		front:    front,
		expanded: make([]string, 0, capHint),
	}
}

// node returns the state of id, creating it on first touch.
func (s *runState) node(id string) *nodeState {
	ns, ok := s.nodes[id]
	if !ok {
		ns = &nodeState{}
		s.nodes[id] = ns
	}

	return ns
}

// enqueue stamps e with the next sequence number and pushes it.
func (s *runState) enqueue(e entry) {
	s.seq++
	e.seq = s.seq
	s.front.push(e)
	s.stats.Pushed++
	if n := s.front.len(); n > s.stats.MaxFrontier {
		s.stats.MaxFrontier = n
	}
}
