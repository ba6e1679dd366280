package config

import "fmt"

// LoggingConfig configures the optimizer's JSONL trace log.
type LoggingConfig struct {
	// Enabled turns on per-iteration trace logging.
	Enabled bool `json:"enabled"`
	// Path is the file location of the trace log. Truncated at startup.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "elastisched-trace.jsonl"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	if c.Enabled && c.Path == "" {
		return fmt.Errorf("logging: path is required when enabled")
	}
	return nil
}
