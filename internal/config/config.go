package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Log      LogConfig      `koanf:"log"`
	Search   SearchConfig   `koanf:"search"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Database DatabaseConfig `koanf:"database"`
}

type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stderr, stdout, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

type SearchConfig struct {
	Workers      int           `koanf:"workers"`
	MinLayover   time.Duration `koanf:"min_layover"`
	MaxLayover   time.Duration `koanf:"max_layover"`
	OutputFormat string        `koanf:"output_format"` // json, yaml
	Indent       int           `koanf:"indent"`
}

type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	TextfilePath string `koanf:"textfile_path"`
	Namespace    string `koanf:"namespace"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxConns        int           `koanf:"max_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// Validate checks the loaded configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %q", c.Log.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %q", c.Log.Format))
	}

	validOutputs := map[string]bool{"stderr": true, "stdout": true, "file": true}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stderr, stdout, file, got %q", c.Log.Output))
	}

	if c.Search.Workers < 1 {
		errs = append(errs, fmt.Sprintf("search.workers must be at least 1, got %d", c.Search.Workers))
	}
	if c.Search.MinLayover <= 0 || c.Search.MaxLayover <= 0 {
		errs = append(errs, "search.min_layover and search.max_layover must be positive")
	} else if c.Search.MinLayover >= c.Search.MaxLayover {
		errs = append(errs, fmt.Sprintf("search.min_layover (%s) must be below search.max_layover (%s)", c.Search.MinLayover, c.Search.MaxLayover))
	}

	validOutputFormats := map[string]bool{"json": true, "yaml": true}
	if !validOutputFormats[c.Search.OutputFormat] {
		errs = append(errs, fmt.Sprintf("search.output_format must be one of: json, yaml, got %q", c.Search.OutputFormat))
	}
	if c.Search.Indent < 0 {
		errs = append(errs, "search.indent must be non-negative")
	}

	if c.Metrics.Enabled && c.Metrics.TextfilePath == "" {
		errs = append(errs, "metrics.textfile_path is required when metrics are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
