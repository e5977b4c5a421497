package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tinystore/internal/core/styles"
	"github.com/colonyops/tinystore/internal/core/validate"
)

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// MaxCounterSteps bounds counter.start and counter.counters. Both are reached
// at startup by dispatching one action per step.
const MaxCounterSteps = 10_000

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("todos.filter", string(c.Todos.Filter), validate.Filter),
		c.validateSeed(),
		c.validateCounter(),
		criterio.Run("metrics.namespace", c.Metrics.Namespace, metricName),
	)
}

func (c *Config) validateSeed() error {
	errs := make([]error, len(c.Todos.Seed))
	for i, text := range c.Todos.Seed {
		errs[i] = validate.TodoTextField(fmt.Sprintf("todos.seed[%d]", i), text)
	}
	return criterio.ValidateStruct(errs...)
}

func (c *Config) validateCounter() error {
	var errs criterio.FieldErrorsBuilder
	if err := validate.Within(c.Counter.Start, MaxCounterSteps); err != nil {
		errs = errs.Append("counter.start", err)
	}
	if err := validate.NonNegative(c.Counter.Counters); err != nil {
		errs = errs.Append("counter.counters", err)
	} else if c.Counter.Counters > MaxCounterSteps {
		errs = errs.Append("counter.counters", fmt.Errorf("must be at most %d, got %d", MaxCounterSteps, c.Counter.Counters))
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if !slices.Contains(styles.ThemeNames(), name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func metricName(ns string) error {
	if !metricNameRe.MatchString(ns) {
		return fmt.Errorf("invalid metric namespace %q", ns)
	}
	return nil
}
