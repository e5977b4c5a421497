package todos

import (
	"slices"

	"github.com/colonyops/tinystore/pkg/store"
)

// Item reduces a single todo. AddTodo builds a fresh item and ignores state;
// ToggleTodo returns a flipped copy only when the ids match.
func Item(state Todo, action store.Action) Todo {
	switch a := action.(type) {
	case AddTodo:
		return Todo{ID: a.ID, Text: a.Text, Completed: false}
	case ToggleTodo:
		if state.ID != a.ID {
			return state
		}
		state.Completed = !state.Completed
		return state
	default:
		return state
	}
}

// List reduces the ordered todo list.
func List(state []Todo, action store.Action) []Todo {
	switch action.(type) {
	case AddTodo:
		return append(slices.Clip(state), Item(Todo{}, action))
	case ToggleTodo:
		out := make([]Todo, len(state))
		for i, t := range state {
			out[i] = Item(t, action)
		}
		return out
	default:
		return state
	}
}

// VisibilityFilter reduces the filter slice. The zero value defaults to ShowAll.
func VisibilityFilter(state Filter, action store.Action) Filter {
	if state == "" {
		state = ShowAll
	}
	if a, ok := action.(SetVisibilityFilter); ok {
		return a.Filter
	}
	return state
}
