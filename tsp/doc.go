// Package tsp provides an exhaustive Travelling Salesman solver for small
// instances (N ≤ 20) built for massive data parallelism.
//
// Every tour is identified by its permutation index in [0, N!) (see package
// perm). The index space is split into P interleaved lanes: lane j visits
// j, j+P, j+2P, … strictly below N!. For each index a lane
//
//  1. decodes the permutation (factorial number system),
//  2. applies the symmetry filter perm[1] < perm[N-1], which skips the mirror
//     half of the space (for N ≥ 3 exactly N!/2 indices pass),
//  3. evaluates the cyclic tour cost, including the closing edge
//     perm[N-1]→perm[0],
//  4. keeps its own best Candidate (strict <, so the lowest index wins ties).
//
// Lanes share no mutable state; the only barrier sits between the sweep and
// the reduction, which picks the cheapest lane Candidate (lowest lane id on
// ties). For fixed (matrix, N, P) the result is fully deterministic.
//
// Engine wraps the sweep in a small state machine
//
//	Idle → Loading → Searching → Reducing → Done
//
// owning a private copy of the distance matrix. Ingest validates N and the
// worst-case tour cost against the Cost width before any search starts.
//
// Complexity: O(N! · N²) per run (decode dominates), O(P · N) extra memory.
//
// Cancellation: lanes poll the context every BatchSize indices; a cancelled
// run yields no partial result.
//
// The filter assumes mirrored tours cost the same, which holds for symmetric
// matrices. For asymmetric inputs disable it with WithSymmetryFilter(false).
package tsp
