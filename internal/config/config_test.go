package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeflavours/internal/catalog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Animations)
	assert.False(t, cfg.ExclusiveOverlays)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, "coffeeflavours", cfg.Telemetry.ServiceName)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffeeflavours.yml")

	original := DefaultConfig()
	original.LogLevel = "debug"
	original.LogFile = "/tmp/coffee.log"
	original.ExclusiveOverlays = true
	original.Animations = false
	original.FrameRate = 30
	original.StartCoffee = "mocha"
	original.Telemetry.ServiceName = "storefront"
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffeeflavours.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nframe_rate: 24\n"), 0644))

	t.Setenv("COFFEE_LOG_LEVEL", "debug")
	t.Setenv("COFFEE_TELEMETRY__SERVICE_NAME", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 24, cfg.FrameRate)
	assert.Equal(t, "from-env", cfg.Telemetry.ServiceName)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("COFFEE_START_COFFEE=espresso\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("COFFEE_START_COFFEE") })

	cfg, err := Load(filepath.Join(dir, "missing.yml"), envPath, filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "espresso", cfg.StartCoffee)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"warning alias", func(c *Config) { c.LogLevel = "WARNING" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }, false},
		{"huge frame rate", func(c *Config) { c.FrameRate = 1000 }, false},
		{"no service name", func(c *Config) { c.Telemetry.ServiceName = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStartIndex(t *testing.T) {
	cat := catalog.Default()
	cfg := DefaultConfig()

	i, err := cfg.StartIndex(cat)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	cfg.StartCoffee = "espresso"
	i, err = cfg.StartIndex(cat)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	cfg.StartCoffee = "frappe"
	_, err = cfg.StartIndex(cat)
	assert.Error(t, err)
}
