// Package lanetsp is an exhaustive Travelling Salesman solver for small
// instances, organised for massive data parallelism.
//
// Every tour over N ≤ 20 nodes is named by its index in [0, N!). The index
// space is dealt round-robin to P independent lanes; each lane decodes,
// filters and prices its tours without sharing state, and a final reduction
// picks the cheapest lane result. Results are deterministic for a fixed
// (matrix, N, P).
//
// Layout:
//
//	matrix/   — square uint32 distance matrix and its constructors
//	perm/     — factorial-number-system index ↔ permutation mapping
//	tsp/      — tour cost, symmetry filter, lane sweep, reduction, Engine
//	builder/  — deterministic synthetic matrices and YAML scenarios
//	wire/     — big-endian datagram codec for the scenario protocol
//	remote/   — UDP client and controller built on wire and tsp
//	metrics/  — Prometheus collector for engine and protocol activity
//	config/   — YAML configuration with environment overrides
//	logging/  — slog wrapper with the shared field names
//	cmd/lanetsp — CLI: solve, decode, gen, client, serve
//
// Quick example (five cities, optimum 80):
//
//	d, _ := matrix.FromRows(rows)
//	e := tsp.NewEngine(tsp.WithLanes(4))
//	_ = e.Ingest(d)
//	res, _ := e.Run(ctx)
//	fmt.Println(res.BestCost, res.Tour) // 80 [2 0 1 3 4]
package lanetsp
