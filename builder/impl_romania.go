// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_romania.go - the Romania road map used to demonstrate informed search.
//
// Contract:
//   - Adds 14 cities in a fixed order; each carries its straight-line
//     distance to Bucharest as heuristic (admissible and consistent).
//   - Adds 17 roads in a fixed order; adjacency rows follow that order.
//   - Ignores cfg.idFn, cfg.weightFn and cfg.heuristicFn: the data is fixed.
//   - On a directed graph both directions of every road are emitted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const methodRomania = "Romania"

// RomaniaGoal is the city every Romania heuristic estimates distance to.
const RomaniaGoal = "Bucharest"

type city struct {
	name string
	sld  int64 // straight-line distance to Bucharest
}

type road struct {
	a, b string
	km   int64
}

var romaniaCities = []city{
	{"Arad", 366},
	{"Zerind", 374},
	{"Oradea", 380},
	{"Sibiu", 253},
	{"Fagaras", 176},
	{"Rimnicu Vilcea", 193},
	{"Pitesti", 100},
	{"Timisoara", 329},
	{"Lugoj", 244},
	{"Mehadia", 241},
	{"Drobeta", 242},
	{"Craiova", 160},
	{"Bucharest", 0},
	{"Giurgiu", 77},
}

// romaniaRoads is ordered so every adjacency row lists neighbors in the
// order of the reference map (e.g. Sibiu: Arad, Fagaras, Oradea, Rimnicu
// Vilcea); depth-first and greedy tie-breaks depend on it.
var romaniaRoads = []road{
	{"Arad", "Zerind", 75},
	{"Arad", "Sibiu", 140},
	{"Arad", "Timisoara", 118},
	{"Zerind", "Oradea", 71},
	{"Sibiu", "Fagaras", 99},
	{"Oradea", "Sibiu", 151},
	{"Sibiu", "Rimnicu Vilcea", 80},
	{"Rimnicu Vilcea", "Pitesti", 97},
	{"Pitesti", "Bucharest", 101},
	{"Bucharest", "Giurgiu", 90},
	{"Fagaras", "Bucharest", 211},
	{"Timisoara", "Lugoj", 111},
	{"Lugoj", "Mehadia", 70},
	{"Mehadia", "Drobeta", 75},
	{"Drobeta", "Craiova", 120},
	{"Rimnicu Vilcea", "Craiova", 146},
	{"Pitesti", "Craiova", 138},
}

// Romania returns a Constructor that adds the Romania road map.
func Romania() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, c := range romaniaCities {
			if err := g.AddNode(c.name, c.sld); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRomania, c.name, err)
			}
		}
		directed := g.Directed()
		for _, r := range romaniaRoads {
			if err := g.AddEdge(r.a, r.b, r.km); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRomania, r.a, r.b, err)
			}
			if directed {
				if err := g.AddEdge(r.b, r.a, r.km); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRomania, r.b, r.a, err)
				}
			}
		}

		return nil
	}
}

// RomaniaGraph is a convenience wrapper: BuildGraph(nil, nil, Romania()).
func RomaniaGraph() (*core.Graph, error) {
	return BuildGraph(nil, nil, Romania())
}
