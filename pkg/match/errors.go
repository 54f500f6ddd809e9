package match

import "errors"

var (
	// ErrEmptyWord means the input normalized to an empty string, so there
	// is nothing comparable to store or score.
	ErrEmptyWord = errors.New("match: word normalizes to empty text")

	// ErrDuplicateWord means the word's normalized form is already present.
	ErrDuplicateWord = errors.New("match: word already in dictionary")

	// ErrUnknownWord means the word's normalized form is not present.
	ErrUnknownWord = errors.New("match: word not in dictionary")
)
