// Package match is the core fuzzy-matching engine: a Dictionary owns the
// set of known words plus an inverted gram index over them, and ranks the
// entries most similar to a query pattern with scores in [0,1].
//
// A Dictionary is safe for unsynchronized concurrent reads only once
// mutation has stopped; Add, Remove, AddRange and SetTag must not run
// concurrently with anything else.
package match

import (
	"errors"
	"fmt"
	"sort"

	"github.com/seanofw/dym/pkg/textnorm"
	"github.com/tchap/go-patricia/v2/patricia"
)

// entry pairs a word with caller-attached opaque data. The tag is stored
// and returned by identity, never inspected.
type entry struct {
	word *Word
	tag  any
}

// Dictionary holds the known words and the gram index used for candidate
// generation. The entry trie and the gram buckets are kept in sync inside
// Add and Remove and are never exposed individually.
type Dictionary struct {
	entries *patricia.Trie
	index   map[int32]map[*entry]struct{}
	size    int
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: patricia.NewTrie(),
		index:   make(map[int32]map[*entry]struct{}),
	}
}

// Add normalizes word and stores it with the given tag. It fails with
// ErrEmptyWord when normalization yields nothing and with ErrDuplicateWord
// when the normalized form is already present; on failure the dictionary is
// left exactly as it was.
func (d *Dictionary) Add(word string, tag any) error {
	w, err := NewWord(word)
	if err != nil {
		return err
	}
	key := patricia.Prefix(w.normalized)
	if d.entries.Get(key) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateWord, w.normalized)
	}
	e := &entry{word: w, tag: tag}
	d.entries.Insert(key, e)
	for _, g := range distinctGrams(w.grams) {
		bucket := d.index[g]
		if bucket == nil {
			bucket = make(map[*entry]struct{})
			d.index[g] = bucket
		}
		bucket[e] = struct{}{}
	}
	d.size++
	return nil
}

// AddRange adds each word in sequence with the shared tag. With
// ignoreDuplicates set, words whose normalized form is already present are
// skipped; any other failure stops the load and is returned, leaving the
// words added so far in place.
func (d *Dictionary) AddRange(words []string, tag any, ignoreDuplicates bool) error {
	for _, word := range words {
		if err := d.Add(word, tag); err != nil {
			if ignoreDuplicates && errors.Is(err, ErrDuplicateWord) {
				continue
			}
			return err
		}
	}
	return nil
}

// Remove deletes word (by normalized identity) and reports whether it was
// present. Every gram bucket the word belonged to is cleaned up; buckets
// left empty are dropped.
func (d *Dictionary) Remove(word string) bool {
	normalized := textnorm.Normalize(word)
	if normalized == "" {
		return false
	}
	key := patricia.Prefix(normalized)
	item := d.entries.Get(key)
	if item == nil {
		return false
	}
	e := item.(*entry)
	d.entries.Delete(key)
	for _, g := range distinctGrams(e.word.grams) {
		bucket := d.index[g]
		delete(bucket, e)
		if len(bucket) == 0 {
			delete(d.index, g)
		}
	}
	d.size--
	return true
}

// Contains reports whether word's normalized form is present.
func (d *Dictionary) Contains(word string) bool {
	return d.lookup(word) != nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return d.size
}

// Words enumerates the stored normalized texts in ascending order. The
// slice is a derived view, independent of storage order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, d.size)
	_ = d.entries.Visit(func(prefix patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(prefix))
		return nil
	})
	sort.Strings(words)
	return words
}

// GetTag returns the tag stored for word and whether the word is present.
// An absent word yields (nil, false) rather than an error.
func (d *Dictionary) GetTag(word string) (any, bool) {
	e := d.lookup(word)
	if e == nil {
		return nil, false
	}
	return e.tag, true
}

// SetTag replaces the tag stored for word. Unlike GetTag it fails with
// ErrUnknownWord when the word is absent, since there is nothing to update.
func (d *Dictionary) SetTag(word string, tag any) error {
	e := d.lookup(word)
	if e == nil {
		return fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	e.tag = tag
	return nil
}

func (d *Dictionary) lookup(word string) *entry {
	normalized := textnorm.Normalize(word)
	if normalized == "" {
		return nil
	}
	if item := d.entries.Get(patricia.Prefix(normalized)); item != nil {
		return item.(*entry)
	}
	return nil
}

// distinctGrams walks a sorted gram array skipping repeats: the index only
// records that a word carries a gram, not how often.
func distinctGrams(grams []int32) []int32 {
	out := make([]int32, 0, len(grams))
	for i, g := range grams {
		if i > 0 && g == grams[i-1] {
			continue
		}
		out = append(out, g)
	}
	return out
}
