package wire

import (
	"encoding/json"
	"fmt"

	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/pkg/store"
)

// Encode renders an action in its wire format.
func Encode(a store.Action) ([]byte, error) {
	tag := string(a.Type())
	env := envelope{Type: &tag}

	switch a := a.(type) {
	case counter.Increment, counter.Decrement, counter.AddCounter, store.Unknown, store.Init:
	case counter.RemoveCounter:
		env.Index = &a.Index
	case counter.IncrementCounter:
		env.Index = &a.Index
	case counter.DecrementCounter:
		env.Index = &a.Index
	case todos.AddTodo:
		env.ID = &a.ID
		env.Text = &a.Text
	case todos.ToggleTodo:
		env.ID = &a.ID
	case todos.SetVisibilityFilter:
		f := string(a.Filter)
		env.Filter = &f
	default:
		return nil, fmt.Errorf("encode action: unsupported type %T", a)
	}

	return json.Marshal(env)
}
