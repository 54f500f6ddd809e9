package match

import (
	"fmt"
	"strings"

	"github.com/seanofw/dym/pkg/gram"
	"github.com/seanofw/dym/pkg/textnorm"
)

// Word is one dictionary entry's comparable value: the original text as
// given, its normalized form, and the sorted gram array derived from it.
// Words are immutable once constructed; identity, equality and ordering are
// defined over the normalized text only.
type Word struct {
	original   string
	normalized string
	grams      []int32
}

// NewWord builds a Word from raw text. It fails with ErrEmptyWord when
// normalization leaves nothing comparable.
func NewWord(text string) (*Word, error) {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyWord, text)
	}
	return &Word{
		original:   text,
		normalized: normalized,
		grams:      gram.Encode(normalized),
	}, nil
}

// Original returns the exact text the word was constructed from.
func (w *Word) Original() string {
	return w.original
}

// Normalized returns the canonical comparable form.
func (w *Word) Normalized() string {
	return w.normalized
}

// Grams returns the word's sorted gram array. Callers must not modify it.
func (w *Word) Grams() []int32 {
	return w.grams
}

// Equal reports whether both words share the same normalized text.
func (w *Word) Equal(other *Word) bool {
	return other != nil && w.normalized == other.normalized
}

// Compare orders words by normalized text.
func (w *Word) Compare(other *Word) int {
	return strings.Compare(w.normalized, other.normalized)
}

func (w *Word) String() string {
	return w.normalized
}
