package config

import "fmt"

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for values the application cannot run
// with.
func (c *Config) Validate() error {
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format: must be json or console, got %q", c.Logging.Format)
	}
	if c.Icons.NormalizedSize <= 0 {
		return fmt.Errorf("icons.normalized_size: must be positive, got %d", c.Icons.NormalizedSize)
	}
	if c.Icons.ExtractTimeout < 0 {
		return fmt.Errorf("icons.extract_timeout: must not be negative, got %s", c.Icons.ExtractTimeout)
	}
	return nil
}
