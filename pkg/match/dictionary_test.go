package match

import (
	"errors"
	"sort"
	"testing"
)

func TestAddContainsRemove(t *testing.T) {
	d := NewDictionary()

	if err := d.Add("hello", nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !d.Contains("hello") {
		t.Error("Contains after Add = false, want true")
	}
	// Identity is the normalized form, not the raw input.
	if !d.Contains("  HELLO  ") {
		t.Error("Contains should match by normalized text")
	}
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}

	if !d.Remove("hello") {
		t.Error("Remove of present word = false, want true")
	}
	if d.Contains("hello") {
		t.Error("Contains after Remove = true, want false")
	}
	if d.Remove("hello") {
		t.Error("Remove of absent word = true, want false")
	}
	if d.Len() != 0 {
		t.Errorf("Len after removal = %d, want 0", d.Len())
	}
}

func TestAddErrors(t *testing.T) {
	d := NewDictionary()
	if err := d.Add("status", nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := d.Add("Status", nil); !errors.Is(err, ErrDuplicateWord) {
		t.Errorf("duplicate Add: got %v, want ErrDuplicateWord", err)
	}
	if err := d.Add("...", nil); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("empty-normalizing Add: got %v, want ErrEmptyWord", err)
	}
	// Failed adds leave the dictionary untouched.
	if d.Len() != 1 {
		t.Errorf("Len after failed adds = %d, want 1", d.Len())
	}
}

func TestAddRange(t *testing.T) {
	d := NewDictionary()
	words := []string{"status", "push", "clone", "merge"}
	if err := d.AddRange(words, nil, false); err != nil {
		t.Fatalf("AddRange: %v", err)
	}
	if d.Len() != 4 {
		t.Errorf("Len = %d, want 4", d.Len())
	}

	// Duplicates stop the load unless explicitly ignored.
	if err := d.AddRange([]string{"fetch", "push"}, nil, false); !errors.Is(err, ErrDuplicateWord) {
		t.Errorf("AddRange with duplicate: got %v, want ErrDuplicateWord", err)
	}
	if err := d.AddRange([]string{"pull", "push"}, nil, true); err != nil {
		t.Errorf("AddRange with ignoreDuplicates: got %v, want nil", err)
	}
	if !d.Contains("pull") {
		t.Error("AddRange skipped a non-duplicate word")
	}
}

func TestWordsEnumeration(t *testing.T) {
	d := NewDictionary()
	input := []string{"merge", "clone", "status", "push", "rebase"}
	if err := d.AddRange(input, nil, false); err != nil {
		t.Fatalf("AddRange: %v", err)
	}

	words := d.Words()
	if len(words) != len(input) {
		t.Fatalf("Words() returned %d entries, want %d", len(words), len(input))
	}
	if !sort.StringsAreSorted(words) {
		t.Errorf("Words() not in ascending order: %v", words)
	}
	want := map[string]bool{"MERGE": true, "CLONE": true, "STATUS": true, "PUSH": true, "REBASE": true}
	for _, w := range words {
		if !want[w] {
			t.Errorf("unexpected enumerated word %q", w)
		}
	}
}

func TestTags(t *testing.T) {
	d := NewDictionary()
	if err := d.Add("status", "verb"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tag, ok := d.GetTag("status")
	if !ok || tag != "verb" {
		t.Errorf("GetTag = (%v, %v), want (verb, true)", tag, ok)
	}

	if err := d.SetTag("status", 42); err != nil {
		t.Fatalf("SetTag: %v", err)
	}
	if tag, _ := d.GetTag("status"); tag != 42 {
		t.Errorf("GetTag after SetTag = %v, want 42", tag)
	}

	// Absent words: GetTag degrades quietly, SetTag must fail.
	if _, ok := d.GetTag("missing"); ok {
		t.Error("GetTag of absent word reported present")
	}
	if err := d.SetTag("missing", "x"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("SetTag of absent word: got %v, want ErrUnknownWord", err)
	}
}

func TestRemoveCleansIndex(t *testing.T) {
	d := NewDictionary()
	if err := d.Add("hello", nil); err != nil {
		t.Fatal(err)
	}
	if len(d.index) == 0 {
		t.Fatal("index empty after Add")
	}
	d.Remove("hello")
	if len(d.index) != 0 {
		t.Errorf("index holds %d grams after removing the only word", len(d.index))
	}
}

func TestNewWord(t *testing.T) {
	w, err := NewWord("Café")
	if err != nil {
		t.Fatalf("NewWord: %v", err)
	}
	if w.Original() != "Café" {
		t.Errorf("Original = %q", w.Original())
	}
	if w.Normalized() != "CAFE" {
		t.Errorf("Normalized = %q, want CAFE", w.Normalized())
	}
	if len(w.Grams()) != len("CAFE")+2 {
		t.Errorf("gram count = %d, want %d", len(w.Grams()), len("CAFE")+2)
	}

	other, err := NewWord("  cafe  ")
	if err != nil {
		t.Fatalf("NewWord: %v", err)
	}
	if !w.Equal(other) || w.Compare(other) != 0 {
		t.Error("words with equal normalized text must compare equal")
	}

	if _, err := NewWord("日本語"); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("NewWord of non-Latin text: got %v, want ErrEmptyWord", err)
	}
}
