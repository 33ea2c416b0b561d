// SPDX-License-Identifier: MIT

// Package matrix: domain types.
package matrix

import "math"

// Weight is a single directed edge weight.
type Weight = uint32

// MaxWeight is the largest representable edge weight.
const MaxWeight = math.MaxUint32

// Distance is a square matrix of edge weights, row-major in w.
// The zero value is not usable; construct with NewDistance or a From* helper.
type Distance struct {
	n int      // order (number of nodes)
	w []Weight // len == n*n, w[i*n+j] is the weight of edge i→j
}
