/*
Package config manages the TOML config for dym surfaces.

Only the public match parameters are configurable; the algorithm's internal
constants (relative cutoff, length-ratio prefilter) are fixed defaults of
the engine and have no config surface.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/seanofw/dym/internal/utils"
	"github.com/seanofw/dym/pkg/match"
)

// Config holds the entire config structure
type Config struct {
	Match  MatchConfig  `toml:"match"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// MatchConfig holds the default match parameters.
type MatchConfig struct {
	MaxWords      int     `toml:"max_words"`
	MinSimilarity float64 `toml:"min_similarity"`
	IncludeTags   bool    `toml:"include_tags"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit      int `toml:"max_limit"`
	MaxPatternLen int `toml:"max_pattern_len"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit  int `toml:"default_limit"`
	MinPatternLen int `toml:"min_pattern_len"`
	MaxPatternLen int `toml:"max_pattern_len"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	defaults := match.DefaultOptions()
	return &Config{
		Match: MatchConfig{
			MaxWords:      defaults.MaxWords,
			MinSimilarity: defaults.MinSimilarity,
			IncludeTags:   defaults.IncludeTags,
		},
		Server: ServerConfig{
			MaxLimit:      256,
			MaxPatternLen: 120,
		},
		CLI: CliConfig{
			DefaultLimit:  24,
			MinPatternLen: 1,
			MaxPatternLen: 64,
		},
	}
}

// Options converts the match section into engine options.
func (c *Config) Options() match.Options {
	return match.Options{
		MaxWords:      c.Match.MaxWords,
		MinSimilarity: c.Match.MinSimilarity,
		IncludeTags:   c.Match.IncludeTags,
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "dym", "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/dym/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file; absent keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
