package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultsUnmarshal(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	require.NoError(t, v.Unmarshal(cfg))

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 32, cfg.Icons.NormalizedSize)
	assert.Equal(t, 2*time.Second, cfg.Icons.ExtractTimeout)
	assert.Empty(t, cfg.Icons.ThemeDirs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero size", func(c *Config) { c.Icons.NormalizedSize = 0 }, "icons.normalized_size"},
		{"negative size", func(c *Config) { c.Icons.NormalizedSize = -4 }, "icons.normalized_size"},
		{"negative timeout", func(c *Config) { c.Icons.ExtractTimeout = -time.Second }, "icons.extract_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitWithoutConfigFile(t *testing.T) {
	t.Setenv("ENV", "dev")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, Init())

	cfg := Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 32, cfg.Icons.NormalizedSize)
}
