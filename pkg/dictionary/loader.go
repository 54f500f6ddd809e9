// Package dictionary loads word lists from disk into a match.Dictionary.
//
// Two formats are supported: plain newline-delimited word lists (.txt) and
// tab-separated lists (.tsv) carrying one opaque tag per word. Lines that
// cannot be added (duplicates, text that normalizes to nothing) are skipped
// with a warning so a noisy list never aborts a load.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/seanofw/dym/pkg/match"
)

// Format identifies a word-list file layout.
type Format int

const (
	FormatUnknown Format = iota
	FormatPlain          // newline-delimited words
	FormatTagged         // word<TAB>tag per line
)

// DetectFormat picks the loader for a file by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatPlain, nil
	case ".tsv":
		return FormatTagged, nil
	}
	return FormatUnknown, fmt.Errorf("unsupported dictionary file %s (want .txt or .tsv)", path)
}

// Load detects the format of path and loads it into dict, returning the
// number of words added.
func Load(path string, dict *match.Dictionary) (int, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return 0, err
	}
	switch format {
	case FormatTagged:
		return LoadTaggedList(path, dict)
	default:
		return LoadWordList(path, dict)
	}
}

// LoadWordList reads a newline-delimited word list. Blank lines and lines
// starting with '#' are ignored.
func LoadWordList(path string, dict *match.Dictionary) (int, error) {
	return loadLines(path, dict, func(line string) (string, any) {
		return line, nil
	})
}

// LoadTaggedList reads a tab-separated list of word and tag. The tag is
// stored as the raw string following the first tab; lines without a tab
// are loaded untagged.
func LoadTaggedList(path string, dict *match.Dictionary) (int, error) {
	return loadLines(path, dict, func(line string) (string, any) {
		word, tag, found := strings.Cut(line, "\t")
		if !found || tag == "" {
			return word, nil
		}
		return word, tag
	})
}

func loadLines(path string, dict *match.Dictionary, split func(string) (string, any)) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	added := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, tag := split(line)
		if err := dict.Add(word, tag); err != nil {
			log.Warnf("Skipping line %d of %s: %v", lineNo, path, err)
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", added, path)
	return added, nil
}
