package perm_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/katalvlaran/lanetsp/perm"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	t.Parallel()

	f, err := perm.Factorial(0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f)

	f, err = perm.Factorial(13)
	require.NoError(t, err)
	require.Equal(t, uint64(6227020800), f)

	f, err = perm.Factorial(perm.MaxN)
	require.NoError(t, err)
	require.Equal(t, uint64(2432902008176640000), f)

	_, err = perm.Factorial(perm.MaxN + 1)
	require.ErrorIs(t, err, perm.ErrOrderOutOfRange)
	_, err = perm.Factorial(-1)
	require.ErrorIs(t, err, perm.ErrOrderOutOfRange)
}

func TestNewIndexer_Bounds(t *testing.T) {
	t.Parallel()

	_, err := perm.NewIndexer(0)
	require.ErrorIs(t, err, perm.ErrOrderOutOfRange)
	_, err = perm.NewIndexer(perm.MaxN + 1)
	require.ErrorIs(t, err, perm.ErrOrderOutOfRange)

	ix, err := perm.NewIndexer(perm.MaxN)
	require.NoError(t, err)
	last, err := ix.Decode(ix.Count() - 1)
	require.NoError(t, err)
	require.Equal(t, 19, last[0])
	require.Equal(t, 0, last[perm.MaxN-1])
}

// TestDecode_Bijection decodes every index for N in [3,8] and checks that the
// results are N! pairwise-distinct permutations in lexicographic order.
func TestDecode_Bijection(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 8; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			ix, err := perm.NewIndexer(n)
			require.NoError(t, err)

			var (
				seen = make(map[string]struct{}, ix.Count())
				buf  = make([]int, n)
				prev []int
				i    uint64
			)
			for i = 0; i < ix.Count(); i++ {
				require.NoError(t, ix.DecodeInto(i, buf))

				sorted := slices.Clone(buf)
				slices.Sort(sorted)
				for v := 0; v < n; v++ {
					require.Equal(t, v, sorted[v], "index %d decoded to %v", i, buf)
				}

				key := fmt.Sprint(buf)
				_, dup := seen[key]
				require.False(t, dup, "index %d repeats %v", i, buf)
				seen[key] = struct{}{}

				if prev != nil {
					require.Equal(t, -1, slices.Compare(prev, buf), "order broken at %d", i)
				}
				prev = slices.Clone(buf)

				back, err := ix.Encode(buf)
				require.NoError(t, err)
				require.Equal(t, i, back)
			}
			require.Len(t, seen, int(ix.Count()))
		})
	}
}

func TestDecode_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n     int
		index uint64
		want  []int
	}{
		{1, 0, []int{0}},
		{2, 1, []int{1, 0}},
		{3, 2, []int{1, 0, 2}},
		{3, 3, []int{1, 2, 0}},
		{3, 5, []int{2, 1, 0}},
		{5, 3, []int{0, 1, 3, 4, 2}},
		{5, 48, []int{2, 0, 1, 3, 4}},
		{5, 119, []int{4, 3, 2, 1, 0}},
	}
	for _, tc := range tests {
		got, err := perm.Decode(tc.index, tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "n=%d index=%d", tc.n, tc.index)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	ix, err := perm.NewIndexer(4)
	require.NoError(t, err)

	_, err = ix.Decode(24)
	require.ErrorIs(t, err, perm.ErrIndexOutOfRange)

	require.ErrorIs(t, ix.DecodeInto(0, make([]int, 3)), perm.ErrDimensionMismatch)

	_, err = perm.Decode(0, 0)
	require.ErrorIs(t, err, perm.ErrOrderOutOfRange)
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	ix, err := perm.NewIndexer(4)
	require.NoError(t, err)

	_, err = ix.Encode([]int{0, 1, 2})
	require.ErrorIs(t, err, perm.ErrDimensionMismatch)
	_, err = ix.Encode([]int{0, 1, 1, 3})
	require.ErrorIs(t, err, perm.ErrNotPermutation)
	_, err = ix.Encode([]int{0, 1, 2, 4})
	require.ErrorIs(t, err, perm.ErrNotPermutation)
}

func TestDecodeUnchecked_MatchesDecode(t *testing.T) {
	t.Parallel()

	ix, err := perm.NewIndexer(7)
	require.NoError(t, err)
	buf := make([]int, 7)
	for _, i := range []uint64{0, 1, 719, 2520, 5039} {
		ix.DecodeUnchecked(i, buf)
		want, err := ix.Decode(i)
		require.NoError(t, err)
		require.Equal(t, want, buf)
	}
}
