package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
logging:
  level: "DEBUG"

store:
  backend: memory
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected level DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected default format text, got %q", cfg.Logging.Format)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("expected backend memory, got %q", cfg.Store.Backend)
	}
	if cfg.Ring.RingDepth != 32 {
		t.Errorf("expected default ring depth 32, got %d", cfg.Ring.RingDepth)
	}
	if cfg.Ring.RequestTimeout != 30*time.Second {
		t.Errorf("expected default request timeout 30s, got %v", cfg.Ring.RequestTimeout)
	}
	if cfg.Negotiation.DefaultProtocol != "x86_64-abi" {
		t.Errorf("expected default protocol x86_64-abi, got %q", cfg.Negotiation.DefaultProtocol)
	}
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Backend != "xenstore" {
		t.Errorf("expected default backend xenstore, got %q", cfg.Store.Backend)
	}
}

func TestValidate_RejectsUnknownStoreBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Backend = "carrier-pigeon"

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for unknown store backend")
	}
}

func TestValidate_RejectsZeroRingDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ring.RingDepth = 0

	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for zero ring depth")
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
