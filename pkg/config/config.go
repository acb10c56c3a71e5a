package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Extraction
	OutputDir     string `yaml:"output_dir"`
	Prefix        bool   `yaml:"prefix"`
	Subfolder     bool   `yaml:"subfolder"`
	Overwrite     bool   `yaml:"overwrite"`
	KeepGoing     bool   `yaml:"keep_going"`
	SanitizeNames bool   `yaml:"sanitize_names"`

	// After extraction
	CopyOutputPath bool `yaml:"copy_output_path"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Performance
	LockTimeoutMS   int `yaml:"lock_timeout_ms"`
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		OutputDir:       ".",
		Prefix:          false,
		Subfolder:       false,
		Overwrite:       false,
		KeepGoing:       false,
		SanitizeNames:   true,
		CopyOutputPath:  false,
		ColorTheme:      "auto",
		LockTimeoutMS:   2000,
		WatchDebounceMS: 500,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.LockTimeoutMS < 0 {
		cfg.LockTimeoutMS = 0
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	if !isValidColorTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LockTimeout returns the input file lock timeout as a duration
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutMS) * time.Millisecond
}

// WatchDebounce returns the watch debounce interval as a duration
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

func isValidColorTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
