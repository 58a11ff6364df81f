// SPDX-License-Identifier: MIT

// Package builder assembles core.Graph road networks from composable,
// deterministic constructors. It serves three callers: configuration (explicit
// edge lists), the bundled campus network, and tests/benchmarks that need
// reproducible random networks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph, resolve options, run constructors in order.
//     – Constructor:       func(g *core.Graph, cfg builderConfig) error.
//   - Configuration primitives (BuilderOption):
//     – WithIDScheme:      vertex ID per index for generated topologies.
//     – WithSeed/WithRand: RNG for stochastic constructors.
//     – WithDistanceFn / WithSafetyFn: attribute generators for generated edges.
//   - Edge-attribute distributions (WeightFn):
//     – ConstantWeightFn, UniformWeightFn.
//   - Constructors:
//     – EdgeList:          explicit directed edges with distance and safety score.
//     – Labels:            human-readable names for existing vertices.
//     – Campus:            the bundled Mall → Kolej 12 campus network.
//     – Path:              0→1→…→n-1 chain.
//     – RandomSparse:      directed Erdős–Rényi network, each ordered pair kept with probability p.
//
// Determinism: the same options, seed and constructor order yield identical graphs,
// including edge IDs.
//
// Errors: constructors return sentinel errors (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrBadEdgeSpec, ErrConstructFailed)
// wrapped with the method name; core errors (core.ErrInvalidWeight, …) pass
// through unchanged for errors.Is. Option constructors panic on nil arguments.
package builder
