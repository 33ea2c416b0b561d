// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// distanceErrorf wraps an underlying error with Distance method context.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// NewDistance creates an n×n zero-filled Distance.
// Returns ErrBadShape if n < 1.
// Complexity: O(n²) time and memory.
func NewDistance(n int) (*Distance, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewDistance: n=%d: %w", n, ErrBadShape)
	}

	return &Distance{n: n, w: make([]Weight, n*n)}, nil
}

// FromRows copies a square [][]uint32 into a new Distance.
// Returns ErrBadShape for empty input and ErrNonSquare for ragged rows.
// Complexity: O(n²).
func FromRows(rows [][]Weight) (*Distance, error) {
	n, err := squareOrder(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	d := &Distance{n: n, w: make([]Weight, n*n)}
	var i int
	for i = 0; i < n; i++ {
		copy(d.w[i*n:(i+1)*n], rows[i])
	}

	return d, nil
}

// FromInts copies a square [][]int into a new Distance.
// Negative cells yield ErrNegativeWeight; cells above MaxWeight yield ErrWeightOverflow.
// Complexity: O(n²).
func FromInts(rows [][]int) (*Distance, error) {
	n, err := squareOrder(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, fmt.Errorf("FromInts: %w", err)
	}
	d := &Distance{n: n, w: make([]Weight, n*n)}

	var (
		i, j int
		v    int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if v < 0 {
				return nil, fmt.Errorf("FromInts: cell (%d,%d)=%d: %w", i, j, v, ErrNegativeWeight)
			}
			if uint64(v) > MaxWeight {
				return nil, fmt.Errorf("FromInts: cell (%d,%d)=%d: %w", i, j, v, ErrWeightOverflow)
			}
			d.w[i*n+j] = Weight(v)
		}
	}

	return d, nil
}

// FromBytes builds an n×n Distance from a flattened row-major buffer holding
// one byte per cell. Extra trailing bytes are ignored.
// Complexity: O(n²).
func FromBytes(n int, buf []byte) (*Distance, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromBytes: n=%d: %w", n, ErrBadShape)
	}
	if len(buf) < n*n {
		return nil, fmt.Errorf("FromBytes: have %d bytes, want %d: %w", len(buf), n*n, ErrShortBuffer)
	}
	d := &Distance{n: n, w: make([]Weight, n*n)}
	var k int
	for k = 0; k < n*n; k++ {
		d.w[k] = Weight(buf[k])
	}

	return d, nil
}

// N returns the order of the matrix. A nil receiver reports 0.
func (d *Distance) N() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the weight of edge i→j.
// Complexity: O(1).
func (d *Distance) At(i, j int) (Weight, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, distanceErrorf("At", i, j, ErrOutOfRange)
	}

	return d.w[i*d.n+j], nil
}

// Set assigns the weight of edge i→j.
// Complexity: O(1).
func (d *Distance) Set(i, j int, v Weight) error {
	if d == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return distanceErrorf("Set", i, j, ErrOutOfRange)
	}
	d.w[i*d.n+j] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(n).
func (d *Distance) Row(i int) ([]Weight, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= d.n {
		return nil, distanceErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]Weight, d.n)
	copy(out, d.w[i*d.n:(i+1)*d.n])

	return out, nil
}

// Rows returns a deep copy of the matrix as [][]uint32.
// Complexity: O(n²).
func (d *Distance) Rows() [][]Weight {
	if d == nil {
		return nil
	}
	out := make([][]Weight, d.n)
	var i int
	for i = 0; i < d.n; i++ {
		out[i] = append([]Weight(nil), d.w[i*d.n:(i+1)*d.n]...)
	}

	return out
}

// Flat exposes the row-major backing slice (len n*n) for hot loops.
// Callers must treat it as read-only.
func (d *Distance) Flat() []Weight {
	if d == nil {
		return nil
	}

	return d.w
}

// Clone returns an independent deep copy.
// Complexity: O(n²).
func (d *Distance) Clone() *Distance {
	if d == nil {
		return nil
	}

	return &Distance{n: d.n, w: append([]Weight(nil), d.w...)}
}

// MaxWeight returns the largest off-diagonal weight; for n==1 the single
// diagonal cell is returned since it is the only edge a 1-node tour uses.
// Complexity: O(n²).
func (d *Distance) MaxWeight() Weight {
	if d == nil {
		return 0
	}
	if d.n == 1 {
		return d.w[0]
	}

	var (
		i, j int
		top  Weight
		v    Weight
	)
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if i == j {
				continue
			}
			v = d.w[i*d.n+j]
			if v > top {
				top = v
			}
		}
	}

	return top
}

// IsSymmetric reports whether w[i][j]==w[j][i] for all i<j.
// Complexity: O(n²) over the upper triangle.
func (d *Distance) IsSymmetric() bool {
	if d == nil {
		return false
	}

	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			if d.w[i*d.n+j] != d.w[j*d.n+i] {
				return false
			}
		}
	}

	return true
}

// Equal reports whether two matrices have the same order and identical cells.
func (d *Distance) Equal(o *Distance) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	var k int
	for k = range d.w {
		if d.w[k] != o.w[k] {
			return false
		}
	}

	return true
}
