package gram

import "math"

// Similarity scores the overlap of two sorted gram arrays on [0,1].
//
// Both arrays are treated as sorted multisets and merge-walked with two
// cursors: each shared occurrence counts twice (once from each side), and
// the total is normalized by the combined length. The square root de-biases
// scores away from the low end of the range; downstream thresholds assume
// exactly this formula.
func Similarity(a, b []int32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matchScore := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			matchScore += 2
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return math.Sqrt(float64(matchScore) / float64(len(a)+len(b)))
}
