package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "LVPATH_"
	configEnvVar = "LVPATH_CONFIG"
)

// errNoConfigFile marks the optional config file as absent.
var errNoConfigFile = errors.New("config file not found")

// Loader reads configuration from defaults, a YAML file and the environment.
type Loader struct {
	k           *koanf.Koanf
	configFile  string
	configPaths []string
	envPrefix   string
}

// NewLoader creates a loader with the default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"lvpath.yaml",
			"config/lvpath.yaml",
		},
		envPrefix: envPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigFile names a config file that must exist. It takes precedence
// over LVPATH_CONFIG and the search paths.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithConfigPaths replaces the optional config search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load merges, lowest priority first:
//  1. defaults
//  2. the config file (yaml)
//  3. environment variables
//
// then validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil && !errors.Is(err, errNoConfigFile) {
		return nil, err
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		// Search
		"search.strategy":       "astar",
		"search.max_expansions": 0,
		"search.timeout":        "0s",

		// Log
		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		// Metrics
		"metrics.enabled":   false,
		"metrics.namespace": "lvpath",

		// Output
		"output.format": "text",
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		if _, err := os.Stat(l.configFile); err != nil {
			return fmt.Errorf("config file %s: %w", l.configFile, err)
		}
		return l.loadFile(l.configFile)
	}

	if configPath := os.Getenv(configEnvVar); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("%s=%s: %w", configEnvVar, configPath, err)
		}
		return l.loadFile(configPath)
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}

		if _, err := os.Stat(absPath); err == nil {
			return l.loadFile(absPath)
		}
	}

	return fmt.Errorf("%w in paths: %v", errNoConfigFile, l.configPaths)
}

func (l *Loader) loadFile(path string) error {
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	return nil
}

// loadEnv maps LVPATH_SEARCH_MAX_EXPANSIONS to search.max_expansions and so
// on. Keys whose leaf contains an underscore go through envKeyMappings.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}

		if mappedKey, ok := envKeyMappings[key]; ok {
			key = mappedKey
		} else {
			key = strings.ReplaceAll(key, "_", ".")
		}

		return key, value
	}), nil)
}

var envKeyMappings = map[string]string{
	"search_max_expansions": "search.max_expansions",
	"log_file_path":         "log.file_path",
	"log_max_size":          "log.max_size",
	"log_max_backups":       "log.max_backups",
	"log_max_age":           "log.max_age",
}
