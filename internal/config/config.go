package config

import (
	"errors"
	"time"
)

var (
	ErrInvalidBufferSize     = errors.New("http buffer size must be greater than 0")
	ErrInvalidUpdateInterval = errors.New("progress update interval must be greater than 0")
	ErrInvalidBarWidth       = errors.New("progress bar width must be greater than 0")
)

// Config holds all application configuration
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Progress ProgressConfig `mapstructure:"progress"`
}

// HTTPConfig holds settings for the outgoing request and the copy loop
type HTTPConfig struct {
	UserAgent  string `mapstructure:"user_agent"`
	BufferSize int    `mapstructure:"buffer_size"`
}

// ProgressConfig holds settings for the console progress bar
type ProgressConfig struct {
	UpdateInterval time.Duration `mapstructure:"update_interval"`
	BarWidth       int           `mapstructure:"bar_width"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			UserAgent:  "fget/0.1.0",
			BufferSize: 32 * 1024, // 32 KB copy buffer
		},
		Progress: ProgressConfig{
			UpdateInterval: 200 * time.Millisecond,
			BarWidth:       50,
		},
	}
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.HTTP.BufferSize <= 0 {
		return ErrInvalidBufferSize
	}
	if c.Progress.UpdateInterval <= 0 {
		return ErrInvalidUpdateInterval
	}
	if c.Progress.BarWidth <= 0 {
		return ErrInvalidBarWidth
	}
	return nil
}
