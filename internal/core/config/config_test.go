package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tinystore/internal/core/styles"
	"github.com/colonyops/tinystore/internal/core/todos"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_defaults_when_missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.Equal(t, todos.ShowAll, cfg.Todos.Filter)
	assert.Equal(t, "tinystore", cfg.Metrics.Namespace)
	assert.Empty(t, cfg.Todos.Seed)
}

func TestLoad_empty_path(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_overrides(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: gruvbox
todos:
  filter: SHOW_ACTIVE
  seed:
    - write docs
    - go shopping
counter:
  start: -2
  counters: 3
metrics:
  namespace: demo
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, todos.ShowActive, cfg.Todos.Filter)
	assert.Equal(t, []string{"write docs", "go shopping"}, cfg.Todos.Seed)
	assert.Equal(t, -2, cfg.Counter.Start)
	assert.Equal(t, 3, cfg.Counter.Counters)
	assert.Equal(t, "demo", cfg.Metrics.Namespace)
}

func TestLoad_partial_keeps_defaults(t *testing.T) {
	path := writeConfig(t, "counter:\n  start: 4\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.Equal(t, todos.ShowAll, cfg.Todos.Filter)
	assert.Equal(t, 4, cfg.Counter.Start)
}

func TestLoad_parse_error(t *testing.T) {
	path := writeConfig(t, "tui: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "neon" }, field: "tui.theme"},
		{name: "unknown filter", mutate: func(c *Config) { c.Todos.Filter = "SHOW_SOME" }, field: "todos.filter"},
		{name: "blank seed", mutate: func(c *Config) { c.Todos.Seed = []string{"ok", "  "} }, field: "todos.seed[1]"},
		{name: "negative counters", mutate: func(c *Config) { c.Counter.Counters = -1 }, field: "counter.counters"},
		{name: "too many counters", mutate: func(c *Config) { c.Counter.Counters = MaxCounterSteps + 1 }, field: "counter.counters"},
		{name: "start too high", mutate: func(c *Config) { c.Counter.Start = 2_000_000_000 }, field: "counter.start"},
		{name: "start too low", mutate: func(c *Config) { c.Counter.Start = -MaxCounterSteps - 1 }, field: "counter.start"},
		{name: "bad namespace", mutate: func(c *Config) { c.Metrics.Namespace = "has-dash" }, field: "metrics.namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
		})
	}
}

func TestValidate_counter_limits_inclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Counter.Start = -MaxCounterSteps
	cfg.Counter.Counters = MaxCounterSteps
	assert.NoError(t, cfg.Validate())
}

func TestLoad_rejects_huge_counter_start(t *testing.T) {
	path := writeConfig(t, "counter:\n  start: 2000000000\n")

	_, err := Load(path)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "counter.start", fieldErrs[0].Field)
}

func TestValidate_default_is_valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoad_invalid(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: neon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
