// Package config holds the lvpath CLI configuration and its koanf loader.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvpath/search"
)

// Config is the full CLI configuration.
type Config struct {
	Search  SearchConfig  `koanf:"search"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Output  OutputConfig  `koanf:"output"`
}

// SearchConfig sets the defaults applied to every search run.
type SearchConfig struct {
	Strategy      string        `koanf:"strategy"`
	MaxExpansions int           `koanf:"max_expansions"`
	Timeout       time.Duration `koanf:"timeout"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig toggles the run metrics dump.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json
}

// Strategy parses Search.Strategy.
func (c *Config) Strategy() (search.Strategy, error) {
	return search.ParseStrategy(c.Search.Strategy)
}

// Validate checks the configuration and normalizes case-insensitive fields.
func (c *Config) Validate() error {
	var errs []string

	if _, err := c.Strategy(); err != nil {
		errs = append(errs, fmt.Sprintf("search.strategy: %v", err))
	}
	if c.Search.MaxExpansions < 0 {
		errs = append(errs, "search.max_expansions must be non-negative")
	}
	if c.Search.Timeout < 0 {
		errs = append(errs, "search.timeout must be non-negative")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}

	validOutputs := map[string]bool{"stdout": true, "stderr": true, "file": true}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}
	if c.Log.Output == "file" && c.Log.FilePath == "" {
		errs = append(errs, "log.file_path is required when log.output is file")
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, "log rotation limits must be non-negative")
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, "metrics.namespace is required when metrics are enabled")
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Output.Format] {
		errs = append(errs, fmt.Sprintf("output.format must be one of: text, json, got %s", c.Output.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
