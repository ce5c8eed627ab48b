package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noConfigFiles(t *testing.T) LoaderOption {
	return WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoaderLoadDefaults(t *testing.T) {
	cfg, err := NewLoader(noConfigFiles(t)).Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, 1, cfg.Search.Workers)
	assert.Equal(t, time.Hour, cfg.Search.MinLayover)
	assert.Equal(t, 6*time.Hour, cfg.Search.MaxLayover)
	assert.Equal(t, "json", cfg.Search.OutputFormat)
	assert.Equal(t, 4, cfg.Search.Indent)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoaderLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  level: debug
  format: json
search:
  workers: 8
  output_format: yaml
  max_layover: 5h
metrics:
  enabled: true
  textfile_path: /tmp/flight_search.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader(WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.Equal(t, "yaml", cfg.Search.OutputFormat)
	assert.Equal(t, 5*time.Hour, cfg.Search.MaxLayover)
	assert.Equal(t, time.Hour, cfg.Search.MinLayover)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  workers: 2\n"), 0o644))

	t.Setenv("FLIGHTS_SEARCH_WORKERS", "6")
	t.Setenv("FLIGHTS_SEARCH_MIN_LAYOVER", "90m")
	t.Setenv("FLIGHTS_LOG_LEVEL", "warn")

	cfg, err := NewLoader(WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Search.Workers)
	assert.Equal(t, 90*time.Minute, cfg.Search.MinLayover)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoaderExplicitPathMustExist(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := NewLoader().Load()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := NewLoader(noConfigFiles(t)).Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad output", func(c *Config) { c.Log.Output = "syslog" }},
		{"zero workers", func(c *Config) { c.Search.Workers = 0 }},
		{"inverted layover", func(c *Config) { c.Search.MinLayover = 7 * time.Hour }},
		{"bad output format", func(c *Config) { c.Search.OutputFormat = "xml" }},
		{"metrics without path", func(c *Config) { c.Metrics.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("FLIGHTS_TEST_GET", "value")

	assert.Equal(t, "value", Get("FLIGHTS_TEST_GET", "fallback"))
	assert.Equal(t, "fallback", Get("FLIGHTS_TEST_GET_UNSET", "fallback"))
}

func TestLoaderConfigFileOutranksEnvPath(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("search:\n  workers: 5\n"), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("search:\n  workers: 3\n"), 0o644))
	t.Setenv(configEnvVar, envPath)

	cfg, err := NewLoader(WithConfigFile(flagPath)).Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.Workers)
}

func TestLoaderConfigFileMustExist(t *testing.T) {
	_, err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))).Load()
	assert.Error(t, err)
}
