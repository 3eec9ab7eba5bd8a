// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Frontier containers: FIFO queue, LIFO stack, and a min-heap with a
// stable insertion-order tie-break.
// Policy:
//   - Containers only order entries; revisit rules live in policy.go.
//   - Every entry carries a run-unique sequence number assigned at push.

package search

import "container/heap"

// entry is a transient frontier record. It never outlives one run.
type entry struct {
	id     string // node label
	parent string // label of the node that pushed it; "" for the source
	g      int64  // path cost from source
	h      int64  // heuristic of id
	seq    uint64 // push order
}

// frontier is the strategy-specific ordering over candidate entries.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// fifo is a queue with a moving head; the backing array is reclaimed when
// the queue drains.
type fifo struct {
	items []entry
	head  int
}

func (q *fifo) push(e entry) { q.items = append(q.items, e) }

func (q *fifo) pop() entry {
	e := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return e
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is a stack.
type lifo struct {
	items []entry
}

func (s *lifo) push(e entry) { s.items = append(s.items, e) }

func (s *lifo) pop() entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items = s.items[:n]

	return e
}

func (s *lifo) len() int { return len(s.items) }

// ordered wraps entryPQ behind the frontier interface.
type ordered struct {
	pq entryPQ
}

func newOrdered(less func(a, b *entry) bool, capHint int) *ordered {
	return &ordered{pq: entryPQ{items: make([]entry, 0, capHint), less: less}}
}

func (o *ordered) push(e entry) { heap.Push(&o.pq, e) }
func (o *ordered) pop() entry   { return heap.Pop(&o.pq).(entry) }
func (o *ordered) len() int     { return o.pq.Len() }

// entryPQ is a min-heap of entries ordered by less. Lazy decrease-key:
// improved entries are pushed again and the outdated copy is discarded
// when popped.
type entryPQ struct {
	items []entry
	less  func(a, b *entry) bool
}

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq.items) }

// Less delegates to the strategy comparator.
func (pq entryPQ) Less(i, j int) bool { return pq.less(&pq.items[i], &pq.items[j]) }

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap. x must be an entry.
func (pq *entryPQ) Push(x any) { pq.items = append(pq.items, x.(entry)) }

// Pop removes and returns the last element.
func (pq *entryPQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// byHeuristic orders by h, then by push order.
func byHeuristic(a, b *entry) bool {
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// byTotalCost orders by g+h (saturating), then lower g, then push order.
func byTotalCost(a, b *entry) bool {
	fa, fb := addCost(a.g, a.h), addCost(b.g, b.h)
	if fa != fb {
		return fa < fb
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.seq < b.seq
}
