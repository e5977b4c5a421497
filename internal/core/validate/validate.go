// Package validate provides validation functions shared by the wire decoder
// and the config loader.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tinystore/internal/core/todos"
)

// TodoText validates a todo text is non-empty after trimming whitespace.
func TodoText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

// TodoTextField returns a criterio validator for todo texts.
func TodoTextField(field, text string) error {
	return criterio.Run(field, text, TodoText)
}

// Filter validates a visibility filter value.
func Filter(f string) error {
	if !todos.Filter(f).IsValid() {
		return fmt.Errorf("unknown filter %q", f)
	}
	return nil
}

// NonNegative validates ids, indexes and counts.
func NonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

// Within validates that n lies in [-limit, limit].
func Within(n, limit int) error {
	if n < -limit || n > limit {
		return fmt.Errorf("must be between %d and %d, got %d", -limit, limit, n)
	}
	return nil
}
