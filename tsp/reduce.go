package tsp

// Reduce returns the cheapest Candidate and the lane that produced it.
// Comparison is strict, so on equal cost the lowest lane id wins. Lanes that
// never evaluated an index hold SentinelCost and cannot win. If no lane beats
// the sentinel, Reduce returns lane -1.
//
// Complexity: O(P).
func Reduce(cands []Candidate) (Candidate, int) {
	var (
		best = Candidate{Cost: SentinelCost}
		lane = -1
		j    int
	)
	for j = range cands {
		if cands[j].Cost < best.Cost {
			best = cands[j]
			lane = j
		}
	}

	return best, lane
}
