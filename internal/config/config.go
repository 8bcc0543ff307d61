// Package config provides configuration management for iconres with Viper
// integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm = 0755 // Standard directory permissions (rwxr-xr-x)
)

// Config represents the complete configuration for iconres.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Icons   IconsConfig   `mapstructure:"icons" yaml:"icons"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// IconsConfig holds icon resolution configuration.
type IconsConfig struct {
	// NormalizedSize is the square size used when exporting icons for
	// launcher frontends (rofi/fuzzel expect a uniform size).
	NormalizedSize int `mapstructure:"normalized_size" yaml:"normalized_size"`
	// ThemeDirs overrides the data roots searched for themed file-type
	// icons. Empty means the XDG data directories.
	ThemeDirs []string `mapstructure:"theme_dirs" yaml:"theme_dirs"`
	// ExtractTimeout bounds a single shell extraction call. Zero disables
	// the bound.
	ExtractTimeout time.Duration `mapstructure:"extract_timeout" yaml:"extract_timeout"`
}

var (
	mu     sync.RWMutex
	global *Config
	v      *viper.Viper
)

// Init loads configuration from the XDG config directory, applying
// defaults and environment overrides (ICONRES_ prefix). A missing config
// file is not an error; defaults apply.
func Init() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("determine config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	nv := viper.New()
	nv.SetConfigName("config")
	nv.SetConfigType("yaml")
	nv.AddConfigPath(configDir)
	nv.SetEnvPrefix("ICONRES")
	nv.AutomaticEnv()
	setDefaults(nv)

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := nv.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	mu.Lock()
	global = cfg
	v = nv
	mu.Unlock()
	return nil
}

// Get returns the current configuration. Init must have been called;
// otherwise defaults are returned.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return Default()
	}
	return global
}

// Watch enables live reload of the configuration file. Invalid edits are
// ignored and the previous configuration stays active.
func Watch() error {
	mu.RLock()
	watched := v
	mu.RUnlock()
	if watched == nil {
		return errors.New("config not initialized")
	}

	watched.OnConfigChange(func(_ fsnotify.Event) {
		cfg := &Config{}
		if err := watched.Unmarshal(cfg); err != nil {
			return
		}
		if err := cfg.Validate(); err != nil {
			return
		}
		mu.Lock()
		global = cfg
		mu.Unlock()
	})
	watched.WatchConfig()
	return nil
}
