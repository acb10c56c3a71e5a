package appdirs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_XDGConfigHome(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("APPDATA", "")

	d, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := filepath.Join(tmp, "msgx"); d.ConfigDir != want {
		t.Errorf("ConfigDir = %q, want %q", d.ConfigDir, want)
	}
	if want := filepath.Join(tmp, "msgx", "config.yaml"); d.ConfigPath != want {
		t.Errorf("ConfigPath = %q, want %q", d.ConfigPath, want)
	}
}

func TestNew_AppData(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", tmp)

	d, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := filepath.Join(tmp, "msgx"); d.ConfigDir != want {
		t.Errorf("ConfigDir = %q, want %q", d.ConfigDir, want)
	}
}

func TestNew_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", home)

	d, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := filepath.Join(home, ".config", "msgx"); d.ConfigDir != want {
		t.Errorf("ConfigDir = %q, want %q", d.ConfigDir, want)
	}
}

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	d := &Dirs{ConfigDir: filepath.Join(tmp, "msgx")}

	if d.Exists() {
		t.Error("expected Exists() = false before creation")
	}

	if err := os.MkdirAll(d.ConfigDir, 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if !d.Exists() {
		t.Error("expected Exists() = true after creation")
	}
}
