package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Match.MaxWords != 100 {
		t.Errorf("default max_words = %d, want 100", cfg.Match.MaxWords)
	}
	if cfg.Match.MinSimilarity != 0.5 {
		t.Errorf("default min_similarity = %v, want 0.5", cfg.Match.MinSimilarity)
	}
	if !cfg.Match.IncludeTags {
		t.Error("default include_tags = false, want true")
	}

	opts := cfg.Options()
	if opts.MaxWords != cfg.Match.MaxWords || opts.MinSimilarity != cfg.Match.MinSimilarity {
		t.Errorf("Options() mismatch: %+v vs %+v", opts, cfg.Match)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Match.MaxWords = 7
	cfg.Match.MinSimilarity = 0.25
	cfg.CLI.DefaultLimit = 3
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.MaxWords != 7 || loaded.Match.MinSimilarity != 0.25 {
		t.Errorf("loaded match config = %+v", loaded.Match)
	}
	if loaded.CLI.DefaultLimit != 3 {
		t.Errorf("loaded cli config = %+v", loaded.CLI)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[match]\nmax_words = 12\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.MaxWords != 12 {
		t.Errorf("max_words = %d, want 12", loaded.Match.MaxWords)
	}
	if loaded.Match.MinSimilarity != 0.5 {
		t.Errorf("min_similarity lost its default: %v", loaded.Match.MinSimilarity)
	}
	if loaded.CLI.DefaultLimit != 24 {
		t.Errorf("cli default_limit lost its default: %v", loaded.CLI.DefaultLimit)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Match.MaxWords != 100 {
		t.Errorf("InitConfig defaults wrong: %+v", cfg.Match)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}
