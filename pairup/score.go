package pairup

import "slices"

// Pair is one row of the sorted pairing used by the difference score.
type Pair struct {
	Left  uint32
	Right uint32
	Diff  uint32
}

// Pairs sorts copies of both lists and pairs them by position. The inputs
// are left untouched. Lists of unequal length are paired up to the shorter.
func Pairs(left, right []uint32) []Pair {
	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	pairs := make([]Pair, min(len(l), len(r)))
	for i := range pairs {
		pairs[i] = Pair{Left: l[i], Right: r[i], Diff: absDiff(l[i], r[i])}
	}
	return pairs
}

// DifferenceScore sums the absolute differences of the sorted, position-paired lists.
func DifferenceScore(left, right []uint32) uint64 {
	var total uint64
	for _, p := range Pairs(left, right) {
		total += uint64(p.Diff)
	}
	return total
}

// SimilarityScore sums every left value multiplied by how often it occurs in right.
func SimilarityScore(left, right []uint32) uint64 {
	frequency := make(map[uint32]uint64, len(right))
	for _, id := range right {
		frequency[id]++
	}

	var score uint64
	for _, id := range left {
		score += uint64(id) * frequency[id]
	}
	return score
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
