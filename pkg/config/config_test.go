package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Transform.Bandwidth != 4 {
		t.Errorf("Expected bandwidth=4, got %d", cfg.Transform.Bandwidth)
	}
	if cfg.Transform.CacheCapacity != 32 {
		t.Errorf("Expected cacheCapacity=32, got %d", cfg.Transform.CacheCapacity)
	}
	if cfg.Grid.Type != "near-identity" {
		t.Errorf("Expected grid type near-identity, got %q", cfg.Grid.Type)
	}
	if cfg.Grid.MaxBeta != math.Pi/8 {
		t.Errorf("Expected maxBeta=pi/8, got %f", cfg.Grid.MaxBeta)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	// Missing file falls back to defaults
	if cfg.Transform.Bandwidth != DefaultConfig().Transform.Bandwidth {
		t.Errorf("Expected default bandwidth, got %d", cfg.Transform.Bandwidth)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("transform:\n  bandwidth: 7\n  cacheCapacity: 8\ngrid:\n  type: equiangular\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Transform.Bandwidth != 7 {
		t.Errorf("Expected bandwidth=7, got %d", cfg.Transform.Bandwidth)
	}
	if cfg.Transform.CacheCapacity != 8 {
		t.Errorf("Expected cacheCapacity=8, got %d", cfg.Transform.CacheCapacity)
	}
	if cfg.Grid.Type != "equiangular" {
		t.Errorf("Expected grid type equiangular, got %q", cfg.Grid.Type)
	}

	// Values absent from the file keep their defaults
	if cfg.Grid.NAlpha != 8 {
		t.Errorf("Expected default nAlpha=8, got %d", cfg.Grid.NAlpha)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("transform: ["), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Transform.Bandwidth = 5
	cfg.Output.Verbose = false

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Transform.Bandwidth != 5 {
		t.Errorf("Expected bandwidth=5 after reload, got %d", loaded.Transform.Bandwidth)
	}
	if loaded.Output.Verbose {
		t.Error("Expected verbose=false after reload")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transform.Bandwidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero bandwidth")
	}

	cfg = DefaultConfig()
	cfg.Grid.Type = "spiral"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown grid type")
	}

	cfg = DefaultConfig()
	cfg.Grid.NGamma = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero grid sample count")
	}
}
