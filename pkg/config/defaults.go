package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ApplyDefaults sets default values for any unspecified configuration
// fields. Zero values are replaced with defaults; explicit values are
// preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyRingDefaults(&cfg.Ring)
	applyStoreDefaults(&cfg.Store)
	applyNegotiationDefaults(&cfg.Negotiation)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

func applyRingDefaults(cfg *RingConfig) {
	if cfg.RingDepth == 0 {
		cfg.RingDepth = 32
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	// MaxIndirectSegments defaults to 0 (feature not advertised).
}

func applyStoreDefaults(cfg *StoreConfig) {
	if cfg.Backend == "" {
		cfg.Backend = "xenstore"
	}
	if cfg.SocketPath == "" {
		cfg.SocketPath = "/var/run/xenstored/socket"
	}
	if cfg.WatchTimeout == 0 {
		cfg.WatchTimeout = 10 * time.Second
	}
}

func applyNegotiationDefaults(cfg *NegotiationConfig) {
	if cfg.DefaultProtocol == "" {
		cfg.DefaultProtocol = "x86_64-abi"
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = "w"
	}
	if cfg.DefaultMedia == "" {
		cfg.DefaultMedia = "disk"
	}
}

// DefaultConfig returns a fully defaulted, valid Config.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// defaultConfigDir returns $XDG_CONFIG_HOME/blkifctl, falling back to
// ~/.config/blkifctl.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "blkifctl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".blkifctl"
	}
	return filepath.Join(home, ".config", "blkifctl")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.yaml")
}

// DefaultConfigExists reports whether a config file exists at the default
// location.
func DefaultConfigExists() bool {
	_, err := os.Stat(DefaultConfigPath())
	return err == nil
}
