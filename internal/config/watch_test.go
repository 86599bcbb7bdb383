package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// replaceFile writes data next to path and renames it into place, the way
// most editors save.
func replaceFile(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("failed to rename temp file: %v", err)
	}
}

// pollUntil polls w until it reports a config or an error, or the deadline passes.
func pollUntil(t *testing.T, w *Watcher) (*Config, error) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		cfg, err := w.Poll()
		if cfg != nil || err != nil {
			return cfg, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no change reported before deadline")
	return nil, nil
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tube:\n  length: 4\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if cfg, err := w.Poll(); cfg != nil || err != nil {
		t.Fatalf("Poll() before any change = %v, %v", cfg, err)
	}

	replaceFile(t, path, "tube:\n  length: 7\n")

	cfg, err := pollUntil(t, w)
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if cfg.Tube.Length != 7 {
		t.Errorf("expected reloaded length 7, got %v", cfg.Tube.Length)
	}
	// Reloads start from defaults, not from the previous config.
	if cfg.Tube.DensityAround != 5 {
		t.Errorf("expected default density around 5, got %d", cfg.Tube.DensityAround)
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tube:\n  length: 4\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	if cfg, err := w.Poll(); cfg != nil || err != nil {
		t.Errorf("Poll() after sibling write = %v, %v", cfg, err)
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sim:\n  tick_rate: 60\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	replaceFile(t, path, "sim:\n  tick_rate: 0\n")

	if _, err := pollUntil(t, w); err == nil {
		t.Error("expected validation error for tick_rate 0")
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch("/nonexistent/dir/config.yaml"); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
