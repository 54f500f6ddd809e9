package match

import "github.com/seanofw/dym/pkg/gram"

// Similarity scores two raw strings directly, without any dictionary or
// indexing: both are normalized, encoded and compared pairwise. It fails
// with ErrEmptyWord when either side normalizes to nothing.
func Similarity(a, b string) (float64, error) {
	wa, err := NewWord(a)
	if err != nil {
		return 0, err
	}
	wb, err := NewWord(b)
	if err != nil {
		return 0, err
	}
	return gram.Similarity(wa.grams, wb.grams), nil
}
