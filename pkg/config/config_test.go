package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.OutputDir != "." {
		t.Errorf("expected default OutputDir='.', got %q", cfg.OutputDir)
	}

	if cfg.Prefix || cfg.Subfolder || cfg.Overwrite {
		t.Errorf("extraction options should default to off: %+v", cfg)
	}

	if cfg.KeepGoing {
		t.Error("expected fail-fast by default")
	}

	if !cfg.SanitizeNames {
		t.Error("expected SanitizeNames=true by default")
	}

	if cfg.ColorTheme != "auto" {
		t.Errorf("expected default ColorTheme='auto', got %q", cfg.ColorTheme)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected default WatchDebounceMS=500, got %d", cfg.WatchDebounceMS)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := &Config{
		OutputDir:       "/tmp/attachments",
		Prefix:          true,
		Subfolder:       true,
		Overwrite:       true,
		KeepGoing:       true,
		SanitizeNames:   false,
		CopyOutputPath:  true,
		ColorTheme:      "dark",
		LockTimeoutMS:   100,
		WatchDebounceMS: 250,
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("loaded config = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("prefix: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Prefix {
		t.Error("expected Prefix=true from file")
	}
	if !cfg.SanitizeNames {
		t.Error("expected SanitizeNames default to survive")
	}
	if cfg.LockTimeoutMS != 2000 {
		t.Errorf("expected default LockTimeoutMS=2000, got %d", cfg.LockTimeoutMS)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "output_dir: \"\"\ncolor_theme: neon\nlock_timeout_ms: -5\nwatch_debounce_ms: 0\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want '.'", cfg.OutputDir)
	}
	if cfg.ColorTheme != "auto" {
		t.Errorf("ColorTheme = %q, want 'auto'", cfg.ColorTheme)
	}
	if cfg.LockTimeoutMS != 0 {
		t.Errorf("LockTimeoutMS = %d, want 0", cfg.LockTimeoutMS)
	}
	if cfg.WatchDebounceMS != 500 {
		t.Errorf("WatchDebounceMS = %d, want 500", cfg.WatchDebounceMS)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("prefix: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDurations(t *testing.T) {
	cfg := &Config{LockTimeoutMS: 1500, WatchDebounceMS: 20}

	if got := cfg.LockTimeout(); got != 1500*time.Millisecond {
		t.Errorf("LockTimeout() = %v", got)
	}
	if got := cfg.WatchDebounce(); got != 20*time.Millisecond {
		t.Errorf("WatchDebounce() = %v", got)
	}
}
