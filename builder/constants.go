// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/lanetsp/matrix"

const (
	// MinNodes is the smallest n any constructor accepts.
	MinNodes = 1

	// DefaultWeight is the edge weight produced by DefaultWeightFn.
	DefaultWeight matrix.Weight = 1

	// DefaultGridSpan is the lattice side length used by Grid.
	DefaultGridSpan = 100

	// MaxGridSpan bounds the lattice so 2·span fits comfortably in a weight.
	MaxGridSpan = 1 << 20

	// MinScenarioWeight and MaxScenarioWeight bound the weights of generated
	// remote scenarios; each weight travels as one byte on the wire.
	MinScenarioWeight matrix.Weight = 1
	MaxScenarioWeight matrix.Weight = 255
)

// Method tokens used in error context.
const (
	methodRandom   = "Random"
	methodRing     = "Ring"
	methodGrid     = "Grid"
	methodScenario = "Scenario"
)
