package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/search"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader(WithConfigPaths()).Load()
	require.NoError(t, err)

	assert.Equal(t, "astar", cfg.Search.Strategy)
	assert.Zero(t, cfg.Search.MaxExpansions)
	assert.Zero(t, cfg.Search.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, 100, cfg.Log.MaxSize)
	assert.True(t, cfg.Log.Compress)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "lvpath", cfg.Metrics.Namespace)
	assert.Equal(t, "text", cfg.Output.Format)

	s, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, search.CostOptimal, s)
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := writeConfig(t, `
search:
  strategy: greedy
  max_expansions: 500
  timeout: 2s
log:
  level: DEBUG
  format: json
output:
  format: json
`)

	cfg, err := NewLoader(WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "greedy", cfg.Search.Strategy)
	assert.Equal(t, 500, cfg.Search.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	// untouched keys keep their defaults
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestLoader_LoadFromEnv(t *testing.T) {
	t.Setenv("LVPATH_SEARCH_STRATEGY", "bfs")
	t.Setenv("LVPATH_SEARCH_MAX_EXPANSIONS", "42")
	t.Setenv("LVPATH_METRICS_ENABLED", "true")

	cfg, err := NewLoader(WithConfigPaths()).Load()
	require.NoError(t, err)

	assert.Equal(t, "bfs", cfg.Search.Strategy)
	assert.Equal(t, 42, cfg.Search.MaxExpansions)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "search:\n  strategy: dfs\n  max_expansions: 7\n")
	t.Setenv("LVPATH_SEARCH_STRATEGY", "greedy")

	cfg, err := NewLoader(WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "greedy", cfg.Search.Strategy)
	assert.Equal(t, 7, cfg.Search.MaxExpansions)
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("PLANNER_SEARCH_STRATEGY", "dfs")
	t.Setenv("PLANNER_LOG_MAX_AGE", "30")
	t.Setenv("LVPATH_SEARCH_STRATEGY", "greedy")

	cfg, err := NewLoader(WithConfigPaths(), WithEnvPrefix("PLANNER_")).Load()
	require.NoError(t, err)
	assert.Equal(t, "dfs", cfg.Search.Strategy)
	assert.Equal(t, 30, cfg.Log.MaxAge)
}

func TestLoader_ConfigEnvVar(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\n")
	t.Setenv(configEnvVar, path)

	cfg, err := NewLoader(WithConfigPaths()).Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)

	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = NewLoader(WithConfigPaths()).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_ExplicitFile(t *testing.T) {
	path := writeConfig(t, "search:\n  strategy: dfs\n")
	other := writeConfig(t, "search:\n  strategy: bfs\n")
	t.Setenv(configEnvVar, other)

	cfg, err := NewLoader(WithConfigFile(path)).Load()
	require.NoError(t, err)
	assert.Equal(t, "dfs", cfg.Search.Strategy)

	_, err = NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_MalformedFile(t *testing.T) {
	path := writeConfig(t, "search: [unterminated\n")

	_, err := NewLoader(WithConfigFile(path)).Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Search:  SearchConfig{Strategy: "astar"},
			Log:     LogConfig{Level: "info", Format: "text", Output: "stderr"},
			Metrics: MetricsConfig{Namespace: "lvpath"},
			Output:  OutputConfig{Format: "text"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown strategy", func(c *Config) { c.Search.Strategy = "beam" }, "search.strategy"},
		{"negative limit", func(c *Config) { c.Search.MaxExpansions = -1 }, "search.max_expansions"},
		{"negative timeout", func(c *Config) { c.Search.Timeout = -time.Second }, "search.timeout"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad log output", func(c *Config) { c.Log.Output = "syslog" }, "log.output"},
		{"file without path", func(c *Config) { c.Log.Output = "file" }, "log.file_path"},
		{"negative rotation", func(c *Config) { c.Log.MaxAge = -1 }, "rotation"},
		{"metrics without namespace", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Namespace = "" }, "metrics.namespace"},
		{"bad output format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestConfig_ValidateDefaultsLevel(t *testing.T) {
	cfg := Config{
		Search: SearchConfig{Strategy: "bfs"},
		Log:    LogConfig{Format: "json", Output: "stdout"},
		Output: OutputConfig{Format: "json"},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
}
