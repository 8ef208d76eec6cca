package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Retry   RetryConfig   `mapstructure:"retry"`
	Display DisplayConfig `mapstructure:"display"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIToken    string        `mapstructure:"api_token"`
	Language    string        `mapstructure:"language"`
	ImageBase   string        `mapstructure:"image_base_url"`
	Placeholder string        `mapstructure:"placeholder"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// HasToken reports whether an API token is configured
func (c TMDBConfig) HasToken() bool {
	return c.APIToken != ""
}

// RetryConfig bounds per-request retries
type RetryConfig struct {
	Attempts int           `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

// DisplayConfig controls console output
type DisplayConfig struct {
	OverviewWidth int `mapstructure:"overview_width"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
