// SPDX-License-Identifier: MIT
// Package builder constructs deterministic distance matrices for the lane
// engine: synthetic instances for tests and benchmarks, and the scenario
// documents exchanged by the CLI and the remote shims.
//
// Constructors:
//   - Random(n, opts…): weights drawn from a WeightFn, symmetric by default.
//   - Ring(n, w):       ring metric with a known optimum of n·w.
//   - Grid(n, opts…):   Manhattan distances between random lattice points.
//
// Options (functional, validated at construction; panics mean programmer error):
//   - WithSeed / WithRand:  RNG source. Without one a fixed default seed is used,
//     so every constructor is reproducible.
//   - WithWeightFn:         per-edge weight distribution (Random only).
//   - WithSymmetric:        mirror the upper triangle (Random only).
//   - WithGridSpan:         lattice side length (Grid only).
//
// Scenario is the YAML form of a matrix tagged with an id. ScenarioFor derives
// the canonical matrix of a remote scenario from its node count and id, so a
// client and server that agree on (nodes, id) agree on the weights.
package builder
