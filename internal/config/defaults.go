package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	defaultNormalizedSize = 32
	defaultExtractTimeout = 2 * time.Second
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Icons: IconsConfig{
			NormalizedSize: defaultNormalizedSize,
			ExtractTimeout: defaultExtractTimeout,
		},
	}
}

// setDefaults registers default values on a viper instance.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("icons.normalized_size", d.Icons.NormalizedSize)
	v.SetDefault("icons.theme_dirs", []string{})
	v.SetDefault("icons.extract_timeout", d.Icons.ExtractTimeout)
}
