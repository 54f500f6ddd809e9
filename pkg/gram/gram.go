// Package gram encodes normalized text as sorted 18-bit trigrams and
// scores the overlap between two encodings.
//
// Each gram packs a sliding window of three characters at 6 bits per
// character (character code minus 32, covering the printable band the
// normalizer emits). Positions before the start and after the end of the
// text use the sentinel value 0, so a word of length L always yields L+2
// grams: two boundary grams anchoring its prefix and suffix, plus one gram
// per character window in between.
package gram

import "sort"

const (
	charBits = 6
	charMask = 1<<charBits - 1
	minChar  = 32
)

// charAt returns the 6-bit value of the character at index i, or the
// sentinel 0 when i falls outside the text.
func charAt(text string, i int) int32 {
	if i < 0 || i >= len(text) {
		return 0
	}
	return int32(text[i]-minChar) & charMask
}

// Encode derives the sorted gram array for normalized text. The input must
// already be in canonical form (see package textnorm); the result is sorted
// ascending and carries no positional meaning.
func Encode(normalized string) []int32 {
	if len(normalized) == 0 {
		return nil
	}
	grams := make([]int32, len(normalized)+2)
	for i := range grams {
		grams[i] = charAt(normalized, i-2)<<(2*charBits) |
			charAt(normalized, i-1)<<charBits |
			charAt(normalized, i)
	}
	sort.Slice(grams, func(i, j int) bool { return grams[i] < grams[j] })
	return grams
}

// Boundary returns the two boundary grams of normalized text: the
// prefix-anchored gram (sentinel, sentinel, first char) and the
// suffix-anchored gram (last char, sentinel, sentinel). The match pipeline
// treats candidates found only through these as mediocre.
func Boundary(normalized string) (prefix, suffix int32) {
	if len(normalized) == 0 {
		return 0, 0
	}
	prefix = charAt(normalized, 0)
	suffix = charAt(normalized, len(normalized)-1) << (2 * charBits)
	return prefix, suffix
}
