// SPDX-License-Identifier: MIT

// Package matrix provides the integer distance matrix consumed by the
// exhaustive TSP engine.
//
// Distance is a square N×N grid of non-negative uint32 edge weights stored
// row-major in a single flat slice. Row and column indices are node ids
// 0..N-1. The diagonal is conventionally zero but not enforced; a tour over
// N ≥ 2 distinct nodes never reads it.
//
// Constructors copy their input so a Distance never aliases caller memory:
//
//   - NewDistance(n)     — zero-filled n×n matrix.
//   - FromRows(rows)     — from [][]uint32.
//   - FromInts(rows)     — from [][]int, rejecting negative or oversized weights.
//   - FromBytes(n, buf)  — from the flattened row-major byte layout used by
//     the scenario-delivery datagram (one byte per cell).
//
// Errors are package-level sentinels (errors.go); match them with errors.Is.
package matrix
