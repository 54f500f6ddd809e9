// Package cli handles cmd line input and suggestions for DBG and testing the match pipeline
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/seanofw/dym/pkg/match"
)

// InputHandler processes user input from stdin, printing the ranked
// matches for each pattern. It accepts a few knobs to control behavior
// such as pattern length bounds, result limits, and the score threshold.
type InputHandler struct {
	dict          *match.Dictionary
	opts          match.Options
	minPatternLen int
	maxPatternLen int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(dict *match.Dictionary, opts match.Options, minLen, maxLen int) *InputHandler {
	return &InputHandler{
		dict:          dict,
		opts:          opts,
		minPatternLen: minLen,
		maxPatternLen: maxLen,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Printf("dym CLI -- %d words loaded", h.dict.Len())
	reader := bufio.NewReader(os.Stdin)
	log.Print("type something and press Enter to see the closest matches (Ctrl+C to exit):")

	for {
		log.Print("> ")
		pattern, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		h.handleInput(pattern)
	}
}

// handleInput processes a single pattern. It validates the pattern's
// length, runs the match pipeline, and prints the ranked results.
func (h *InputHandler) handleInput(pattern string) {
	if len(pattern) < h.minPatternLen {
		log.Errorf("Pattern too short: %s", pattern)
		return
	}
	if len(pattern) > h.maxPatternLen {
		log.Errorf("Pattern too long: %s", pattern)
		return
	}

	start := time.Now()
	results, err := h.dict.MatchWith(pattern, h.opts)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, match.ErrEmptyWord) {
			log.Warnf("Nothing comparable in %q", pattern)
			return
		}
		log.Errorf("Match failed for %q: %v", pattern, err)
		return
	}

	log.Debugf("Took [ %v ] for pattern '%s'", elapsed, pattern)

	if len(results) == 0 {
		log.Warnf("No matches found for pattern: '%s'", pattern)
		return
	}

	log.Printf("Found %d matches for pattern '%s':", len(results), pattern)
	for i, r := range results {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Word)
		if tag, ok := r.Tag.(string); ok && tag != "" {
			log.Printf("%2d. %-40s (score: %.4f, tag: %s)", i+1, clWord, r.Similarity, tag)
			continue
		}
		log.Printf("%2d. %-40s (score: %.4f)", i+1, clWord, r.Similarity)
	}
}
