// Package todos defines the todo-list domain: the Todo record, the visibility
// filter, their actions and reducers, and read-only projections of the state.
package todos

import "github.com/colonyops/tinystore/pkg/store"

// Todo is a single item. Items are replaced, never mutated in place.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Filter selects which todos are visible.
type Filter string

const (
	ShowAll       Filter = "SHOW_ALL"
	ShowActive    Filter = "SHOW_ACTIVE"
	ShowCompleted Filter = "SHOW_COMPLETED"
)

// Filters lists every filter in display order.
var Filters = []Filter{ShowAll, ShowActive, ShowCompleted}

// IsValid reports whether f is one of the known filters.
func (f Filter) IsValid() bool {
	switch f {
	case ShowAll, ShowActive, ShowCompleted:
		return true
	}
	return false
}

// Label is the short human name of the filter.
func (f Filter) Label() string {
	switch f {
	case ShowActive:
		return "Active"
	case ShowCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Todo) bool {
	switch f {
	case ShowActive:
		return !t.Completed
	case ShowCompleted:
		return t.Completed
	default:
		return true
	}
}

// State is the aggregate application state.
type State struct {
	Todos            []Todo `json:"todos"`
	VisibilityFilter Filter `json:"visibilityFilter"`
}

// Reduce is the combined reducer for State.
var Reduce = store.Combine(
	store.Slice("todos",
		func(s State) []Todo { return s.Todos },
		func(s State, v []Todo) State { s.Todos = v; return s },
		List),
	store.Slice("visibilityFilter",
		func(s State) Filter { return s.VisibilityFilter },
		func(s State, v Filter) State { s.VisibilityFilter = v; return s },
		VisibilityFilter),
)
