// Package config loads storefront settings from defaults, an optional YAML
// file, optional .env files and COFFEE_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"coffeeflavours/internal/catalog"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nested keys: COFFEE_TELEMETRY__SERVICE_NAME -> telemetry.service_name.
const EnvPrefix = "COFFEE_"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "coffeeflavours.yml"

// Load reads configuration from the given YAML file, then any .env files,
// then overlays environment variable overrides (COFFEE_*). Missing files
// are skipped.
func Load(path string, envFiles ...string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// .env values never override variables already set in the process.
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", f, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("frame_rate must be between 1 and 240, got %d", c.FrameRate)
	}
	if c.Telemetry.ServiceName == "" {
		return fmt.Errorf("telemetry.service_name is required")
	}
	return nil
}

// StartIndex resolves start_coffee against the catalog. An empty value
// selects the first item.
func (c *Config) StartIndex(cat *catalog.Catalog) (int, error) {
	if c.StartCoffee == "" {
		return 0, nil
	}
	i := cat.IndexOf(c.StartCoffee)
	if i < 0 {
		return 0, fmt.Errorf("invalid start_coffee %q: not in catalog", c.StartCoffee)
	}
	return i, nil
}
