// Package textnorm canonicalizes raw text before any trigram comparison.
//
// Normalization strips accents, upper-cases letters, and collapses runs of
// whitespace and punctuation down to single representative characters, so
// that "  Café,  au   lait. " and "CAFE AU LAIT" compare as the same text.
// The output alphabet is restricted to the printable band the gram codec can
// pack into 6 bits per character (codes 32..95).
package textnorm

import (
	"golang.org/x/text/unicode/norm"
)

// Representative output characters for the separator classes. Tabs and
// newlines mark field boundaries in multi-field records; they normalize to
// ';' because the raw control characters fall outside the 6-bit band.
const (
	spaceSep = ' '
	fieldSep = ';'
	termSep  = '.'
	joinSep  = '-'
)

// remap classifies every 7-bit code point into an output byte: letters and
// digits map to their upper-case form, everything else maps to the
// representative character of its separator class. The table is its own
// fixed point, which keeps Normalize idempotent.
var remap [128]byte

func init() {
	for c := 0; c < 128; c++ {
		remap[c] = spaceSep
	}
	for c := '0'; c <= '9'; c++ {
		remap[c] = byte(c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		remap[c] = byte(c)
	}
	for c := 'a'; c <= 'z'; c++ {
		remap[c] = byte(c - 'a' + 'A')
	}
	remap['\t'] = fieldSep
	remap['\r'] = fieldSep
	remap['\n'] = fieldSep
	remap[fieldSep] = fieldSep
	remap[termSep] = termSep
	remap[joinSep] = joinSep
}

// IsASCII reports whether s contains only 7-bit code points.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isLetterDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z'
}

// sepStrength orders the separator classes: field boundaries beat plain
// whitespace, whitespace beats punctuation. A stronger separator overwrites
// an immediately preceding weaker one; a weaker or equal one is dropped.
func sepStrength(c byte) int {
	switch c {
	case fieldSep:
		return 3
	case spaceSep:
		return 2
	default: // termSep, joinSep
		return 1
	}
}

// Normalize maps raw text to its canonical comparable form in a single
// left-to-right pass. Non-ASCII input gets a canonical decomposition
// (NFD) pre-pass first, so combining accent marks become separate code
// points; everything at or above code point 128, the split-off marks
// included, is then word-breaking noise. The result may be empty when
// the input holds nothing comparable.
//
// Each emit decision depends only on the previously emitted byte, so the
// pass never backtracks beyond overwriting that one byte.
func Normalize(text string) string {
	if !IsASCII(text) {
		text = norm.NFD.String(text)
	}

	buf := make([]byte, 0, len(text))
	var last byte
	for _, r := range text {
		out := byte(spaceSep)
		if r < 128 {
			out = remap[r]
		}
		if isLetterDigit(out) {
			buf = append(buf, out)
			last = out
			continue
		}
		if last == 0 {
			// Nothing emitted yet; leading separators are dropped.
			continue
		}
		if isLetterDigit(last) {
			buf = append(buf, out)
			last = out
			continue
		}
		if sepStrength(out) > sepStrength(last) {
			buf[len(buf)-1] = out
			last = out
		}
	}

	// No trailing separator or punctuation survives.
	if n := len(buf); n > 0 && !isLetterDigit(buf[n-1]) {
		buf = buf[:n-1]
	}
	return string(buf)
}
