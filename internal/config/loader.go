package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "FLIGHTS_"
	configEnvVar = envPrefix + "CONFIG_PATH"
)

// errNoConfigFile marks the absence of an optional config file.
var errNoConfigFile = errors.New("no config file found")

// Loader assembles configuration from defaults, an optional YAML file and the environment.
type Loader struct {
	k           *koanf.Koanf
	configFile  string
	configPaths []string
	envPrefix   string
}

type LoaderOption func(*Loader)

// WithConfigPaths replaces the candidate config file paths. The first existing one is used.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithConfigFile names a config file that must exist. It outranks FLIGHTS_CONFIG_PATH
// and the default paths.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"config.yaml", "config/config.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves configuration with increasing priority:
// defaults, then the config file, then environment variables.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load config: defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil && !errors.Is(err, errNoConfigFile) {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("load config: env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "logs/flight-search.log",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		"search.workers":       1,
		"search.min_layover":   time.Hour,
		"search.max_layover":   6 * time.Hour,
		"search.output_format": "json",
		"search.indent":        4,

		"metrics.enabled":       false,
		"metrics.textfile_path": "",
		"metrics.namespace":     "flight_search",

		"database.url":               "",
		"database.max_conns":         10,
		"database.conn_max_lifetime": 30 * time.Minute,
	}
}

// loadConfigFile loads an explicitly named file (which must exist) or the first
// default path that exists. WithConfigFile wins over FLIGHTS_CONFIG_PATH.
func (l *Loader) loadConfigFile() error {
	path := l.configFile
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("config file %q: %w", path, err)
		}
		return nil
	}

	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("config file %q: %w", path, err)
		}
		return nil
	}

	return errNoConfigFile
}

// loadEnv maps FLIGHTS_SECTION_FIELD_NAME to section.field_name.
// The first underscore separates the section; the rest belong to the key.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		if key == "config_path" {
			return "", nil
		}
		section, field, ok := strings.Cut(key, "_")
		if !ok {
			return key, value
		}
		return section + "." + field, value
	}), nil)
}
