// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// heuristic_fn.go - heuristic estimates attached to generated nodes.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// HeuristicFn returns the heuristic estimate of a generated node ID.
// Values must be non-negative; core.Graph rejects negatives.
type HeuristicFn func(id string) int64

// ZeroHeuristic marks every node as uninformed.
func ZeroHeuristic(string) int64 { return 0 }

// ManhattanHeuristic estimates the distance from a grid ID "r,c" to the
// goal cell (goalR, goalC) as unit × (|r−goalR| + |c−goalC|). It is
// admissible whenever every grid edge weighs at least unit. IDs that are
// not grid coordinates get 0.
// Panics if unit < 0.
func ManhattanHeuristic(goalR, goalC int, unit int64) HeuristicFn {
	if unit < 0 {
		panic(fmt.Sprintf("ManhattanHeuristic: unit must be ≥ 0, got %d", unit))
	}

	return func(id string) int64 {
		r, c, ok := ParseGridID(id)
		if !ok {
			return 0
		}

		return unit * int64(abs(r-goalR)+abs(c-goalC))
	}
}

// WithManhattanHeuristic sets ManhattanHeuristic(goalR, goalC, unit).
func WithManhattanHeuristic(goalR, goalC int, unit int64) BuilderOption {
	return WithHeuristicFn(ManhattanHeuristic(goalR, goalC, unit))
}

// GridID formats a 2D grid coordinate as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// ParseGridID splits "r,c" back into its coordinates.
func ParseGridID(id string) (r, c int, ok bool) {
	rs, cs, found := strings.Cut(id, ",")
	if !found {
		return 0, 0, false
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return 0, 0, false
	}
	c, err = strconv.Atoi(cs)
	if err != nil {
		return 0, 0, false
	}

	return r, c, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
