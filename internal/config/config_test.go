// # internal/config/config_test.go
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	content := `
scan_paths = ["./src"]
workers = 8
max_depth = 12

[exclude]
dirs = [".git", "target"]
files = ["*.min.js"]

[watch]
debounce = "1s"

[history]
path = "runs.db"

[metrics]
addr = ":9143"

[throttle]
files_per_second = 50.0
`
	tmpfile, err := os.CreateTemp("", "config*.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.ScanPaths) != 1 || cfg.ScanPaths[0] != "./src" {
		t.Errorf("Unexpected ScanPaths: %v", cfg.ScanPaths)
	}
	if cfg.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.MaxDepth != 12 {
		t.Errorf("Expected max depth 12, got %d", cfg.MaxDepth)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.History.Path != "runs.db" {
		t.Errorf("Expected history path runs.db, got %s", cfg.History.Path)
	}
	if cfg.Metrics.Addr != ":9143" {
		t.Errorf("Expected metrics addr :9143, got %s", cfg.Metrics.Addr)
	}
	if cfg.Throttle.Burst != 16 {
		t.Errorf("Expected default burst 16, got %d", cfg.Throttle.Burst)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config*.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	tmpfile.Write([]byte(""))
	tmpfile.Close()

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected default workers 4, got %d", cfg.Workers)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if len(cfg.ScanPaths) != 1 || cfg.ScanPaths[0] != "." {
		t.Errorf("Unexpected default ScanPaths: %v", cfg.ScanPaths)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Workers != 4 {
		t.Errorf("Expected default workers 4, got %d", cfg.Workers)
	}
	if len(cfg.Exclude.Dirs) == 0 {
		t.Error("Expected default exclude dirs")
	}
}

func TestLoadError(t *testing.T) {
	_, err := Load("nonexistent.toml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}

	tmpfile, _ := os.CreateTemp("", "badconfig*.toml")
	defer os.Remove(tmpfile.Name())
	tmpfile.Write([]byte("bad = toml = format"))
	tmpfile.Close()

	_, err = Load(tmpfile.Name())
	if err == nil {
		t.Error("Expected error for malformed TOML")
	}
}
