// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn            ("0","1","2",...)
//   • rng         = nil                    (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn        (constant 1)
//   • heuristicFn = ZeroHeuristic          (uninformed)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for generated edges.
	weightFn WeightFn
	// Heuristic estimate per generated node ID.
	heuristicFn HeuristicFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		weightFn:    DefaultWeightFn,
		heuristicFn: ZeroHeuristic,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNode inserts id with the configured heuristic.
func (cfg builderConfig) addNode(g *core.Graph, method, id string) error {
	h := cfg.heuristicFn(id)
	if err := g.AddNode(id, h); err != nil {
		return fmt.Errorf("%s: AddNode(%s, h=%d): %w", method, id, h, err)
	}

	return nil
}

// addEdge connects u and v with the next configured weight.
func (cfg builderConfig) addEdge(g *core.Graph, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
