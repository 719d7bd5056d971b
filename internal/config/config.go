package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "xrinput.yaml"

// RedisConfig configures the optional event journal.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Stream   string `mapstructure:"stream"`
	MaxLen   int64  `mapstructure:"max_len"`
}

// HTTPConfig configures the inspection server.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config is the static configuration of an input tracking session.
type Config struct {
	LogLevel           string             `mapstructure:"log_level"`
	Thresholds         catalog.Thresholds `mapstructure:"thresholds"`
	DisabledProfiles   []string           `mapstructure:"disabled_profiles"`
	SendMovementEvents bool               `mapstructure:"send_movement_events"`
	Redis              RedisConfig        `mapstructure:"redis"`
	HTTP               HTTPConfig         `mapstructure:"http"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Thresholds: catalog.DefaultThresholds(),
		Redis: RedisConfig{
			Stream: "xrinput:events",
			MaxLen: 10000,
		},
		HTTP: HTTPConfig{Addr: ":8080"},
	}
}

// Load reads a YAML config file. A missing file yields Default().
// Thresholds in the file are overlaid on the defaults rather than replacing them.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	defaults := cfg.Thresholds
	cfg.Thresholds = nil

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	cfg.Thresholds = defaults.With(cfg.Thresholds)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that decoding alone cannot catch.
func (c Config) Validate() error {
	for _, id := range c.DisabledProfiles {
		if !catalog.KnownProfile(id) {
			return fmt.Errorf("invalid config: unknown interaction profile %q in disabled_profiles", id)
		}
	}
	known := catalog.BindingNames()
	for name := range c.Thresholds {
		if !slices.Contains(known, name) {
			return fmt.Errorf("invalid config: unknown binding %q in thresholds", name)
		}
	}
	if c.Redis.MaxLen < 0 {
		return fmt.Errorf("invalid config: redis.max_len must not be negative")
	}
	return nil
}
