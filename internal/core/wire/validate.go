package wire

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/internal/core/validate"
	"github.com/colonyops/tinystore/pkg/store"
)

var errRequired = errors.New("is required")

func (env envelope) validate(tag store.ActionType) error {
	var errs criterio.FieldErrorsBuilder
	check := func(field string, err error) {
		if err != nil {
			errs = errs.Append(field, err)
		}
	}

	switch tag {
	case counter.TypeRemoveCounter, counter.TypeIncrementCounter, counter.TypeDecrementCounter:
		check("index", nonNegative(env.Index))
	case todos.TypeAddTodo:
		check("id", nonNegative(env.ID))
		check("text", nonBlank(env.Text))
	case todos.TypeToggleTodo:
		check("id", nonNegative(env.ID))
	case todos.TypeSetVisibilityFilter:
		check("filter", knownFilter(env.Filter))
	}

	return errs.ToError()
}

func nonNegative(v *int) error {
	if v == nil {
		return errRequired
	}
	return validate.NonNegative(*v)
}

func nonBlank(v *string) error {
	if v == nil {
		return errRequired
	}
	return validate.TodoText(*v)
}

func knownFilter(v *string) error {
	if v == nil {
		return errRequired
	}
	return validate.Filter(*v)
}
