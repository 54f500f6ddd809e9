package match

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestMatchRanksClosestFirst(t *testing.T) {
	d := NewDictionary()
	if err := d.AddRange([]string{"status", "push", "clone", "merge"}, nil, false); err != nil {
		t.Fatal(err)
	}

	results, err := d.MatchWith("stats", Options{MaxWords: 10, MinSimilarity: 0.5, IncludeTags: true})
	if err != nil {
		t.Fatalf("MatchWith: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results for 'stats'")
	}
	if results[0].Word != "status" {
		t.Errorf("best match = %q, want \"status\"", results[0].Word)
	}
	if results[0].Similarity <= 0.5 {
		t.Errorf("best similarity = %v, want > 0.5", results[0].Similarity)
	}
}

// A transposition near the end shares no useful interior overlap, so this
// exercises the boundary-gram fallback path.
func TestMatchMediocreFallback(t *testing.T) {
	d := NewDictionary()
	if err := d.Add("hello", nil); err != nil {
		t.Fatal(err)
	}

	results, err := d.Match("helol")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	found := false
	for _, r := range results {
		if r.Word == "hello" {
			found = true
		}
	}
	if !found {
		t.Errorf("'helol' did not find 'hello': %v", results)
	}
}

func TestMatchInvariants(t *testing.T) {
	d := NewDictionary()
	words := []string{
		"status", "statue", "statute", "station", "stats", "static",
		"push", "pull", "pulls", "clone", "merge", "commit", "branch",
	}
	if err := d.AddRange(words, nil, false); err != nil {
		t.Fatal(err)
	}

	opts := Options{MaxWords: 5, MinSimilarity: 0.3, IncludeTags: true}
	results, err := d.MatchWith("statun", opts)
	if err != nil {
		t.Fatalf("MatchWith: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results for 'statun'")
	}
	if len(results) > opts.MaxWords {
		t.Errorf("got %d results, MaxWords is %d", len(results), opts.MaxWords)
	}
	for i, r := range results {
		if r.Similarity < opts.MinSimilarity {
			t.Errorf("result %d score %v below threshold %v", i, r.Similarity, opts.MinSimilarity)
		}
		if r.Similarity < 0 || r.Similarity > 1 {
			t.Errorf("result %d score %v out of [0,1]", i, r.Similarity)
		}
		if i > 0 && results[i-1].Similarity < r.Similarity {
			t.Errorf("scores increase at %d: %v then %v", i, results[i-1].Similarity, r.Similarity)
		}
		if results[0].Similarity-r.Similarity > relativeCutoff+1e-12 {
			t.Errorf("result %d score %v violates the %.1f cutoff below best %v",
				i, r.Similarity, relativeCutoff, results[0].Similarity)
		}
	}
}

func TestMatchEmptyPattern(t *testing.T) {
	d := NewDictionary()
	if _, err := d.Match("!!!"); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Match on empty-normalizing pattern: got %v, want ErrEmptyWord", err)
	}
}

func TestMatchNoCandidates(t *testing.T) {
	d := NewDictionary()
	if err := d.Add("zebra", nil); err != nil {
		t.Fatal(err)
	}
	results, err := d.Match("qqq")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestMatchTags(t *testing.T) {
	d := NewDictionary()
	if err := d.Add("status", "git"); err != nil {
		t.Fatal(err)
	}

	withTags, err := d.MatchWith("stats", Options{MaxWords: 10, MinSimilarity: 0.5, IncludeTags: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(withTags) == 0 || withTags[0].Tag != "git" {
		t.Errorf("expected tag \"git\" on result, got %v", withTags)
	}

	noTags, err := d.MatchWith("stats", Options{MaxWords: 10, MinSimilarity: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(noTags) == 0 || noTags[0].Tag != nil {
		t.Errorf("expected nil tag when IncludeTags is off, got %v", noTags)
	}
	if noTags[0].Entry == nil || noTags[0].Entry.Normalized() != "STATUS" {
		t.Errorf("result entry missing or wrong: %v", noTags[0].Entry)
	}
}

func TestMatchLengthPrefilter(t *testing.T) {
	d := NewDictionary()
	// Shares interior grams with the pattern but is far too long to be a
	// plausible match.
	if err := d.Add("statstatstatstatstat", nil); err != nil {
		t.Fatal(err)
	}
	results, err := d.MatchWith("stat", Options{MaxWords: 10, MinSimilarity: 0.0, IncludeTags: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("length prefilter let through %v", results)
	}
}

func TestSimilarityString(t *testing.T) {
	got, err := Similarity("abc", "abcd")
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	want := math.Sqrt(6.0 / 11.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Similarity(abc, abcd) = %.12f, want %.12f", got, want)
	}

	self, err := Similarity("Café", "cafe")
	if err != nil {
		t.Fatal(err)
	}
	if self != 1.0 {
		t.Errorf("Similarity of equal normalized forms = %v, want 1.0", self)
	}

	if _, err := Similarity("", "abc"); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Similarity with empty input: got %v, want ErrEmptyWord", err)
	}
}

func BenchmarkMatch(b *testing.B) {
	d := NewDictionary()
	for i := 0; i < 2000; i++ {
		if err := d.Add(fmt.Sprintf("word%d", i), nil); err != nil {
			b.Fatal(err)
		}
	}
	patterns := []string{"word123", "wrod42", "word", "wodr1999", "unrelated"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Match(patterns[i%len(patterns)]); err != nil {
			b.Fatal(err)
		}
	}
}
