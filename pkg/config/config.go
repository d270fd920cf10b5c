// Package config loads the static configuration of a blkfront/blkback
// control-plane process: logging, ring sizing, the KV store transport, and
// the defaults a frontend advertises when it has no prior negotiated
// state.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (DITTOBLK_*), for keys the file sets
//  2. Configuration file (YAML)
//  3. Default values (lowest priority)
//
// CLI flags are not bound. When no configuration file is found, Load
// returns DefaultConfig() and the environment is not read.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a blkif control-plane process.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Ring        RingConfig        `mapstructure:"ring" yaml:"ring"`
	Store       StoreConfig       `mapstructure:"store" yaml:"store"`
	Negotiation NegotiationConfig `mapstructure:"negotiation" yaml:"negotiation"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// RingConfig carries the ring-slot sizing knobs for the negotiated ABI.
type RingConfig struct {
	// RingDepth is the number of request slots the shared ring page holds.
	RingDepth int `mapstructure:"ring_depth" validate:"required,gt=0" yaml:"ring_depth"`

	// MaxIndirectSegments is the value FeatureIndirect advertises on this
	// endpoint. Zero means the feature is not advertised.
	MaxIndirectSegments int `mapstructure:"max_indirect_segments" validate:"gte=0" yaml:"max_indirect_segments"`

	// RequestTimeout bounds how long a frontend waits for a Response
	// before treating a ring slot as stuck.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required,gt=0" yaml:"request_timeout"`
}

// StoreConfig configures the KV store transport used for session setup
// and state negotiation.
type StoreConfig struct {
	// Backend selects the KV transport. "xenstore" talks to a real
	// xenstored socket; "memory" is an in-process store for testing.
	Backend string `mapstructure:"backend" validate:"required,oneof=xenstore memory" yaml:"backend"`

	// SocketPath is the xenstored Unix domain socket path, used only
	// when Backend is "xenstore".
	SocketPath string `mapstructure:"socket_path" yaml:"socket_path"`

	// WatchTimeout bounds how long a caller waits for a KV watch to fire
	// during negotiation.
	WatchTimeout time.Duration `mapstructure:"watch_timeout" validate:"required,gt=0" yaml:"watch_timeout"`
}

// NegotiationConfig holds the defaults a frontend advertises when it has
// no prior negotiated state for a device.
type NegotiationConfig struct {
	DefaultProtocol string `mapstructure:"default_protocol" validate:"required,oneof=x86_64-abi x86_32-abi native" yaml:"default_protocol"`
	DefaultMode     string `mapstructure:"default_mode" validate:"required,oneof=r w" yaml:"default_mode"`
	DefaultMedia    string `mapstructure:"default_media" validate:"required,oneof=disk cdrom" yaml:"default_media"`
}

// Load loads configuration from file, environment, and defaults. If no
// config file is found, it returns DefaultConfig() unchanged.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	found, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}
	if !found {
		cfg := DefaultConfig()
		return cfg, nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(durationDecodeHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks a Config against its struct-tag constraints.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// SaveConfig writes cfg to path in YAML form.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("DITTOBLK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// durationDecodeHook converts human-readable strings like "30s" or "5m"
// into time.Duration fields during Unmarshal.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}
