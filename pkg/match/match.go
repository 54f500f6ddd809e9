package match

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/seanofw/dym/internal/rank"
	"github.com/seanofw/dym/pkg/gram"
)

const (
	// relativeCutoff trims the tail of a result list: once a result falls
	// more than this far below the best score, it and everything after it
	// is dropped.
	relativeCutoff = 0.2

	// Candidates whose normalized length is more than double or less than
	// half the pattern's are skipped before scoring. A noise-reduction
	// heuristic, not an exactness guarantee.
	lengthRatioNum = 2
)

// Options control one Match call.
type Options struct {
	// MaxWords bounds the result count. Values <= 0 fall back to the
	// default of 100.
	MaxWords int
	// MinSimilarity discards results scoring below it.
	MinSimilarity float64
	// IncludeTags attaches each entry's stored tag to its result.
	IncludeTags bool
}

// DefaultOptions returns the standard match parameters.
func DefaultOptions() Options {
	return Options{MaxWords: 100, MinSimilarity: 0.5, IncludeTags: true}
}

// Result is one ranked answer from Match.
type Result struct {
	// Word is the entry's original text as it was added.
	Word string
	// Similarity is the entry's score against the pattern, in [0,1].
	Similarity float64
	// Tag is the entry's stored tag when requested, nil otherwise.
	Tag any
	// Entry references the matched word value.
	Entry *Word
}

type candidate struct {
	entry *entry
	score float64
}

func candidateCmp(a, b candidate) int {
	switch {
	case a.score < b.score:
		return -1
	case a.score > b.score:
		return 1
	default:
		return 0
	}
}

// Match ranks the dictionary entries most similar to pattern using
// DefaultOptions. It fails with ErrEmptyWord when the pattern normalizes
// to nothing.
func (d *Dictionary) Match(pattern string) ([]Result, error) {
	return d.MatchWith(pattern, DefaultOptions())
}

// MatchWith runs the full match pipeline: candidate gathering through the
// gram index, similarity scoring, bounded top-k ranking, and relative
// cutoff. Results come back in descending similarity order, at most
// opts.MaxWords of them, every score at least opts.MinSimilarity.
func (d *Dictionary) MatchWith(pattern string, opts Options) ([]Result, error) {
	query, err := NewWord(pattern)
	if err != nil {
		return nil, err
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultOptions().MaxWords
	}
	start := time.Now()

	prefixGram, suffixGram := gram.Boundary(query.normalized)
	patternLen := len(query.normalized)

	// Good candidates come from the pattern's interior grams. The gram
	// array is sorted, so skip one occurrence of each boundary gram rather
	// than relying on positions.
	candidates := make(map[*entry]struct{})
	seenPrefix, seenSuffix := false, false
	for _, g := range query.grams {
		if !seenPrefix && g == prefixGram {
			seenPrefix = true
			continue
		}
		if !seenSuffix && g == suffixGram {
			seenSuffix = true
			continue
		}
		d.gather(g, patternLen, candidates)
	}
	good := len(candidates)

	// Mediocre candidates, anchored only at the word's edges, join in when
	// interior matches are scarce.
	if good < 2*opts.MaxWords {
		d.gather(prefixGram, patternLen, candidates)
		d.gather(suffixGram, patternLen, candidates)
	}

	scored := make([]candidate, 0, len(candidates))
	for e := range candidates {
		score := gram.Similarity(query.grams, e.word.grams)
		if score < opts.MinSimilarity {
			continue
		}
		scored = append(scored, candidate{entry: e, score: score})
	}
	log.Debugf("match %q: %d good, %d total candidates, %d above threshold",
		query.normalized, good, len(candidates), len(scored))
	if len(scored) == 0 {
		return nil, nil
	}

	heap := rank.Build(scored, candidateCmp)
	results := make([]Result, 0, min(opts.MaxWords, heap.Len()))
	var best float64
	for len(results) < opts.MaxWords && heap.Len() > 0 {
		c, err := heap.PopMax()
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			best = c.score
		} else if best-c.score > relativeCutoff {
			// Prefix truncation: nothing past the first violation is
			// re-included.
			break
		}
		r := Result{
			Word:       c.entry.word.original,
			Similarity: c.score,
			Entry:      c.entry.word,
		}
		if opts.IncludeTags {
			r.Tag = c.entry.tag
		}
		results = append(results, r)
	}
	log.Debugf("match %q: %d results in %v", query.normalized, len(results), time.Since(start))
	return results, nil
}

// gather unions the entries of one gram bucket into out, applying the
// length-ratio prefilter against the pattern length.
func (d *Dictionary) gather(g int32, patternLen int, out map[*entry]struct{}) {
	for e := range d.index[g] {
		wordLen := len(e.word.normalized)
		if wordLen > lengthRatioNum*patternLen || lengthRatioNum*wordLen < patternLen {
			continue
		}
		out[e] = struct{}{}
	}
}
