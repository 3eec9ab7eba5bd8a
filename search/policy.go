// SPDX-License-Identifier: MIT
//
// File: policy.go
// Role: One frontier policy per Strategy: container choice, seed rule,
// pop-time acceptance rule and neighbor discovery rule.
// Policy:
//   - Breadth marks visited at enqueue; a node is enqueued at most once.
//   - Depth pushes neighbors in reverse row order and skips visited nodes
//     at pop time; the predecessor is committed when an entry is accepted.
//   - Greedy never re-enqueues a closed or queued node (first discovery wins).
//   - CostOptimal re-enqueues on any strictly smaller path cost, reopening
//     closed nodes; stale entries are dropped when popped.

package search

import (
	"fmt"
	"iter"
)

// heuristicFunc resolves a node's heuristic estimate.
type heuristicFunc func(id string) (int64, error)

// policy is the capability that distinguishes the four strategies.
type policy interface {
	newFrontier(capHint int) frontier
	seed(s *runState, source string, h int64)
	// accept reports whether a popped entry is expanded; false drops it.
	accept(s *runState, e entry, ns *nodeState) bool
	// relax applies the discovery rule to every neighbor of cur.
	relax(s *runState, cur entry, nbs iter.Seq2[string, int64], hf heuristicFunc) error
}

// policyFor returns the policy of strategy.
func policyFor(strategy Strategy) (policy, error) {
	switch strategy {
	case Breadth:
		return breadthPolicy{}, nil
	case Depth:
		return depthPolicy{}, nil
	case Greedy:
		return greedyPolicy{}, nil
	case CostOptimal:
		return costOptimalPolicy{}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
}

type breadthPolicy struct{}

func (breadthPolicy) newFrontier(capHint int) frontier {
	return &fifo{items: make([]entry, 0, capHint)}
}

func (breadthPolicy) seed(s *runState, source string, _ int64) {
	ns := s.node(source)
	ns.queued, ns.known = true, true
	s.enqueue(entry{id: source})
}

func (breadthPolicy) accept(*runState, entry, *nodeState) bool { return true }

func (breadthPolicy) relax(s *runState, cur entry, nbs iter.Seq2[string, int64], _ heuristicFunc) error {
	for nb, w := range nbs {
		ns := s.node(nb)
		if ns.queued {
			continue
		}
		g := addCost(cur.g, w)
		ns.queued, ns.known, ns.cost = true, true, g
		s.parent[nb] = cur.id
		s.enqueue(entry{id: nb, parent: cur.id, g: g})
	}

	return nil
}

type depthPolicy struct{}

func (depthPolicy) newFrontier(capHint int) frontier {
	return &lifo{items: make([]entry, 0, capHint)}
}

func (depthPolicy) seed(s *runState, source string, _ int64) {
	s.enqueue(entry{id: source})
}

func (depthPolicy) accept(s *runState, e entry, ns *nodeState) bool {
	if ns.closed {
		return false
	}
	if e.parent != "" {
		s.parent[e.id] = e.parent
	}
	ns.known, ns.cost = true, e.g

	return true
}

func (depthPolicy) relax(s *runState, cur entry, nbs iter.Seq2[string, int64], _ heuristicFunc) error {
	var row []entry
	for nb, w := range nbs {
		row = append(row, entry{id: nb, parent: cur.id, g: addCost(cur.g, w)})
	}
	// reverse push so the first neighbor is popped first
	for i := len(row) - 1; i >= 0; i-- {
		s.enqueue(row[i])
	}

	return nil
}

type greedyPolicy struct{}

func (greedyPolicy) newFrontier(capHint int) frontier {
	return newOrdered(byHeuristic, capHint)
}

func (greedyPolicy) seed(s *runState, source string, h int64) {
	ns := s.node(source)
	ns.queued, ns.known = true, true
	s.enqueue(entry{id: source, h: h})
}

func (greedyPolicy) accept(_ *runState, _ entry, ns *nodeState) bool {
	ns.queued = false

	return true
}

func (greedyPolicy) relax(s *runState, cur entry, nbs iter.Seq2[string, int64], hf heuristicFunc) error {
	for nb, w := range nbs {
		ns := s.node(nb)
		if ns.closed || ns.queued {
			continue
		}
		h, err := hf(nb)
		if err != nil {
			return err
		}
		g := addCost(cur.g, w)
		ns.queued, ns.known, ns.cost = true, true, g
		s.parent[nb] = cur.id
		s.enqueue(entry{id: nb, parent: cur.id, g: g, h: h})
	}

	return nil
}

type costOptimalPolicy struct{}

func (costOptimalPolicy) newFrontier(capHint int) frontier {
	return newOrdered(byTotalCost, capHint)
}

func (costOptimalPolicy) seed(s *runState, source string, h int64) {
	ns := s.node(source)
	ns.known, ns.cost = true, 0
	s.enqueue(entry{id: source, h: h})
}

func (costOptimalPolicy) accept(_ *runState, e entry, ns *nodeState) bool {
	if e.g > ns.cost {
		return false // superseded by a cheaper entry
	}
	if ns.closed && ns.closedCost <= e.g {
		return false
	}

	return true
}

func (costOptimalPolicy) relax(s *runState, cur entry, nbs iter.Seq2[string, int64], hf heuristicFunc) error {
	for nb, w := range nbs {
		cand := addCost(cur.g, w)
		ns := s.node(nb)
		if ns.known && cand >= ns.cost {
			continue
		}
		h, err := hf(nb)
		if err != nil {
			return err
		}
		ns.known, ns.cost = true, cand
		s.parent[nb] = cur.id
		s.enqueue(entry{id: nb, parent: cur.id, g: cand, h: h})
	}

	return nil
}
