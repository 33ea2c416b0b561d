// Package perm maps integers in [0, N!) to permutations of {0..N-1} and back.
//
// Decoding uses the factorial number system. The index is first split into
// factoradic digits, most significant first:
//
//	raw[k] = index / (N-1-k)!    index = index mod (N-1-k)!
//
// which yields a Lehmer-code-like sequence where raw[k] ∈ [0, N-1-k] and values
// may repeat. A quadratic correction pass then turns it into a true
// permutation without an explicit "remaining pool":
//
//	for k = N-1 .. 1:
//	    for j = k-1 .. 0:
//	        if raw[j] <= raw[k] { raw[k]++ }
//
// Every step is branch-light and independent of other indices, so many
// indices can be decoded in parallel. The mapping is a bijection and
// preserves lexicographic order: index 0 is the identity and N!-1 is the
// reversed identity.
//
// N is bounded by MaxN = 20 because 21! does not fit in uint64.
//
// Complexity: Decode is O(N²), Encode is O(N²), both allocation-free when the
// caller supplies the destination buffer.
package perm
