package perm

import "fmt"

// MaxN is the largest order whose factorial fits in uint64 (20! ≈ 2.43e18).
const MaxN = 20

// factorials[k] == k! for k in [0, MaxN].
var factorials = func() [MaxN + 1]uint64 {
	var (
		f [MaxN + 1]uint64
		k int
	)
	f[0] = 1
	for k = 1; k <= MaxN; k++ {
		f[k] = uint64(k) * f[k-1]
	}

	return f
}()

// Factorial returns n! for n ∈ [0, MaxN].
func Factorial(n int) (uint64, error) {
	if n < 0 || n > MaxN {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOrderOutOfRange)
	}

	return factorials[n], nil
}

// Indexer decodes and encodes permutation indices for a fixed order N.
// It is immutable after construction and safe for concurrent use; callers
// running in parallel must supply their own destination buffers.
type Indexer struct {
	n     int
	count uint64       // N!
	fact  [MaxN]uint64 // fact[k] == k! for k < N
}

// NewIndexer precomputes the factorial table for order n ∈ [1, MaxN].
func NewIndexer(n int) (*Indexer, error) {
	if n < 1 || n > MaxN {
		return nil, fmt.Errorf("NewIndexer(%d): %w", n, ErrOrderOutOfRange)
	}
	ix := &Indexer{n: n, count: factorials[n]}
	copy(ix.fact[:n], factorials[:n])

	return ix, nil
}

// N returns the permutation order.
func (ix *Indexer) N() int { return ix.n }

// Count returns N!, the size of the index space.
func (ix *Indexer) Count() uint64 { return ix.count }

// Decode returns the permutation at index.
// Returns ErrIndexOutOfRange if index >= N!.
//
// Complexity: O(N²) time, O(N) space.
func (ix *Indexer) Decode(index uint64) ([]int, error) {
	dst := make([]int, ix.n)
	if err := ix.DecodeInto(index, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeInto writes the permutation at index into dst (len(dst) must be N).
//
// Complexity: O(N²) time, no allocations.
func (ix *Indexer) DecodeInto(index uint64, dst []int) error {
	if index >= ix.count {
		return fmt.Errorf("DecodeInto(%d): N!=%d: %w", index, ix.count, ErrIndexOutOfRange)
	}
	if len(dst) != ix.n {
		return fmt.Errorf("DecodeInto: len(dst)=%d, N=%d: %w", len(dst), ix.n, ErrDimensionMismatch)
	}
	ix.decode(index, dst)

	return nil
}

// DecodeUnchecked writes the permutation at index into dst without checking
// index < N! or len(dst) == N. It is meant for hot loops whose bounds hold by
// construction; everything else should call DecodeInto.
func (ix *Indexer) DecodeUnchecked(index uint64, dst []int) {
	ix.decode(index, dst)
}

// decode is the unchecked kernel.
// Preconditions: index < N!, len(raw) == N.
func (ix *Indexer) decode(index uint64, raw []int) {
	var (
		n    = ix.n
		k, j int
		f    uint64
	)

	// Stage 1: factoradic digits, most significant first.
	for k = 0; k < n; k++ {
		f = ix.fact[n-1-k]
		raw[k] = int(index / f)
		index %= f
	}

	// Stage 2: correction pass turning the Lehmer digits into a permutation.
	for k = n - 1; k > 0; k-- {
		for j = k - 1; j >= 0; j-- {
			if raw[j] <= raw[k] {
				raw[k]++
			}
		}
	}
}

// Encode returns the index of perm, the inverse of Decode.
// Returns ErrDimensionMismatch if len(perm) != N and ErrNotPermutation for
// out-of-range or repeated values.
//
// Complexity: O(N²) time, O(N) space.
func (ix *Indexer) Encode(perm []int) (uint64, error) {
	if len(perm) != ix.n {
		return 0, fmt.Errorf("Encode: len(perm)=%d, N=%d: %w", len(perm), ix.n, ErrDimensionMismatch)
	}

	var (
		seen  [MaxN]bool
		k, j  int
		v     int
		less  int
		index uint64
	)
	for k = 0; k < ix.n; k++ {
		v = perm[k]
		if v < 0 || v >= ix.n || seen[v] {
			return 0, fmt.Errorf("Encode: position %d value %d: %w", k, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	// Lehmer digit k counts later elements smaller than perm[k].
	for k = 0; k < ix.n; k++ {
		less = 0
		for j = k + 1; j < ix.n; j++ {
			if perm[j] < perm[k] {
				less++
			}
		}
		index += uint64(less) * ix.fact[ix.n-1-k]
	}

	return index, nil
}

// Decode is a one-shot helper returning the permutation of {0..n-1} at index.
func Decode(index uint64, n int) ([]int, error) {
	ix, err := NewIndexer(n)
	if err != nil {
		return nil, err
	}

	return ix.Decode(index)
}
