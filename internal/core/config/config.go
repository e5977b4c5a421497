// Package config handles configuration loading and validation for tinystore.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tinystore/internal/core/styles"
	"github.com/colonyops/tinystore/internal/core/todos"
)

// Config holds the application configuration.
type Config struct {
	TUI     TUIConfig     `yaml:"tui"`
	Todos   TodosConfig   `yaml:"todos"`
	Counter CounterConfig `yaml:"counter"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// TodosConfig seeds the todo store at startup. Seeds are dispatched as
// regular actions after the store is constructed.
type TodosConfig struct {
	Filter todos.Filter `yaml:"filter"` // initial visibility filter
	Seed   []string     `yaml:"seed"`   // todo texts added in order
}

// CounterConfig seeds the counter store at startup.
type CounterConfig struct {
	Start    int `yaml:"start"`    // starting value, reached by dispatching increments/decrements
	Counters int `yaml:"counters"` // number of list counters added at startup
}

// MetricsConfig configures the dispatch metrics recorder.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Todos: TodosConfig{
			Filter: todos.ShowAll,
		},
		Metrics: MetricsConfig{
			Namespace: "tinystore",
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Todos.Filter == "" {
		c.Todos.Filter = defaults.Todos.Filter
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = defaults.Metrics.Namespace
	}
}
