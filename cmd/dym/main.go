// Copyright 2026 The Dym Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the dym fuzzy-match server and CLI [DBG] application.

dym ("did you mean") ranks the dictionary entries most similar to a noisy
input string using trigram similarity. It can operate as a MessagePack IPC
server for integration with other tools, or as a CLI application for
testing and debugging.

# Usage

Start the server over a word list:

	dym -dict words.txt

Use a tagged list and enable debug mode:

	dym -dict commands.tsv -d

Run in CLI mode for interactive testing:

	dym -dict words.txt -c -limit 10 -min 0.4

Word lists are newline-delimited text files; .tsv files carry one opaque
tag per word after a tab. Lines that normalize to nothing or duplicate an
earlier entry are skipped with a warning.

# Configuration

Runtime defaults are managed through a TOML file (created on first run at
~/.config/dym/config.toml):

	[match]
	max_words = 100
	min_similarity = 0.5
	include_tags = true

	[server]
	max_limit = 256
	max_pattern_len = 120

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Match requests
are processed synchronously with microsecond timing information included
in responses:

	{"id": "req1", "op": "match", "p": "stauts", "l": 10}
	{"id": "req1", "r": [{"w": "status", "s": 0.82}], "c": 1, "t": 145}

Dictionary management (add/remove/count) uses the same envelope; see the
server package for the full message set.

# Command Line Flags

	-dict string
	    Word list to load (.txt plain, .tsv tagged)
	-c  Run in CLI mode instead of server mode
	-d  Enable debug mode with detailed logging
	-limit int
	    Number of matches to return (default from config)
	-min float
	    Minimum similarity score in [0,1]
	-config string
	    Custom config file path
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/seanofw/dym/internal/cli"
	"github.com/seanofw/dym/internal/utils"
	"github.com/seanofw/dym/pkg/config"
	"github.com/seanofw/dym/pkg/dictionary"
	"github.com/seanofw/dym/pkg/match"
	"github.com/seanofw/dym/pkg/server"
)

const (
	Version = "1.0.0"
	AppName = "dym"
	gh      = "https://github.com/seanofw/dym"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ dym ] Did you mean...? Fuzzy matches for noisy input.")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// main wires flags, config, the word list and the chosen mode together.
// It does not implement any matching logic itself.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list to load (.txt plain, .tsv tagged)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Number of matches to return (default from config)")
	minSim := flag.Float64("min", -1, "Minimum similarity score in [0,1] (default from config)")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", activePath)

	opts := cfg.Options()
	if *limit > 0 {
		opts.MaxWords = *limit
	}
	if *minSim >= 0 {
		opts.MinSimilarity = *minSim
	}

	dict := match.NewDictionary()
	if *dictPath == "" {
		log.Fatal("No word list given; use -dict <path>")
	}
	count, err := dictionary.Load(*dictPath, dict)
	if err != nil {
		log.Fatalf("Failed to load word list %s: %v", *dictPath, err)
	}
	log.Debugf("Loaded %d words from %s", count, utils.GetAbsolutePath(*dictPath))

	if *cliMode {
		if *limit <= 0 {
			opts.MaxWords = cfg.CLI.DefaultLimit
		}
		handler := cli.NewInputHandler(dict, opts, cfg.CLI.MinPatternLen, cfg.CLI.MaxPatternLen)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(dict, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
