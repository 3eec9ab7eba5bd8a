// Package builder provides reusable “functional‐options”‐style graph
// fixtures for lvpath: the Romania road map plus deterministic generated
// topologies for tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph and apply constructors in order.
//   - Constructors:
//     – Romania():           14 cities, 17 roads, straight-line heuristics to Bucharest.
//     – Path(n):             simple path over cfg.idFn IDs.
//     – Grid(rows, cols):    4-neighborhood grid with "r,c" IDs.
//     – RandomSparse(n, p):  seeded Erdős–Rényi-like graph.
//   - Node-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Heuristics (HeuristicFn): ZeroHeuristic, ManhattanHeuristic.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order produce identical graphs,
//     including adjacency-row order.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the constructor name; they never panic.
package builder
