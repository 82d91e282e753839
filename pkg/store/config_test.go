package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TASKBOARD_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !filepath.IsAbs(cfg.BasePath()) || filepath.Base(cfg.BasePath()) != ".taskboard" {
		t.Errorf("unexpected base path %q", cfg.BasePath())
	}
	if cfg.Backend() != BackendDisk {
		t.Errorf("unexpected backend %q", cfg.Backend())
	}
	if cfg.Key() != StorageKey {
		t.Errorf("unexpected key %q", cfg.Key())
	}
	if cfg.Throttle() != DefaultThrottle {
		t.Errorf("unexpected throttle %v", cfg.Throttle())
	}
	if w, h := cfg.BoardSize(); w != 1200 || h != 800 {
		t.Errorf("unexpected board size %vx%v", w, h)
	}
	if cfg.LogLevel() != "warn" {
		t.Errorf("unexpected log level %q", cfg.LogLevel())
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "" +
		"path: " + filepath.Join(dir, "data") + "\n" +
		"backend: memory\n" +
		"throttle: 50ms\n" +
		"board:\n" +
		"  width: 640\n"
	if err := os.WriteFile(filepath.Join(dir, ".taskboard.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKBOARD_CONFIG_PATH", dir)
	t.Setenv("TASKBOARD_KEY", "from_env")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") {
		t.Errorf("unexpected base path %q", cfg.BasePath())
	}
	if cfg.Backend() != BackendMemory {
		t.Errorf("unexpected backend %q", cfg.Backend())
	}
	if cfg.Throttle() != 50*time.Millisecond {
		t.Errorf("unexpected throttle %v", cfg.Throttle())
	}
	if cfg.Key() != "from_env" {
		t.Errorf("expected env key override, got %q", cfg.Key())
	}
	if w, h := cfg.BoardSize(); w != 640 || h != 800 {
		t.Errorf("unexpected board size %vx%v", w, h)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("TASKBOARD_CONFIG_PATH", t.TempDir())
	t.Setenv("TASKBOARD_BACKEND", "s3")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenMemoryBackend(t *testing.T) {
	cfg := &fileConfig{Store: BackendMemory, Slot: "k", Wait: DefaultThrottle}
	s, err := Open(cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := s.Slot().(*MemorySlot); !ok {
		t.Fatalf("expected memory slot, got %T", s.Slot())
	}
	if s.Key() != "k" {
		t.Fatalf("expected key k, got %q", s.Key())
	}
}

func TestOpenDiskBackend(t *testing.T) {
	base := t.TempDir()
	s, err := Open(&fileConfig{Path: base, Store: BackendDisk, Slot: StorageKey}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	disk, ok := s.Slot().(*DiskSlot)
	if !ok || disk.BasePath() != base {
		t.Fatalf("expected disk slot at %s, got %T", base, s.Slot())
	}
}
