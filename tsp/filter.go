package tsp

// Accept reports whether perm survives the symmetry filter: the second
// visited node must have a smaller id than the last visited node. Because the
// two values always differ in a permutation, exactly one of a tour and its
// reversed traversal from the same start passes, halving the space for N ≥ 3.
//
// For N < 3 the rule is degenerate and every permutation is accepted.
func Accept(perm []int) bool {
	var n = len(perm)
	if n < 3 {
		return true
	}

	return perm[1] < perm[n-1]
}
