package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the ping tool
type Config struct {
	// Target runs a single probe and exits instead of the menu.
	Target string `toml:"target"`
	Count  int    `toml:"count"`
	// ReplyBound is the assumed worst-case latency per echo; the process
	// deadline is Count times this value.
	ReplyBound time.Duration `toml:"-"`
	LogFile    string        `toml:"log_file"`
	Chart      bool          `toml:"chart"`
	LogLevel   string        `toml:"log_level"`
	// AppLogFile routes diagnostic logging to a rotated file instead of
	// stderr. The probe log above is a separate artifact.
	AppLogFile string `toml:"app_log_file"`

	ReplyBoundSeconds int `toml:"reply_bound_seconds"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Count < 1 || c.Count > 100 {
		return fmt.Errorf("count must be between 1 and 100")
	}
	if c.ReplyBound <= 0 {
		return fmt.Errorf("reply bound must be positive")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log file path cannot be empty")
	}
	return nil
}
