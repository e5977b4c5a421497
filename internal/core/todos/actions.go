package todos

import "github.com/colonyops/tinystore/pkg/store"

// Action tags handled by this package.
const (
	TypeAddTodo             store.ActionType = "ADD_TODO"
	TypeToggleTodo          store.ActionType = "TOGGLE_TODO"
	TypeSetVisibilityFilter store.ActionType = "SET_VISIBILITY_FILTER"
)

// AddTodo creates a new item. The caller assigns ID.
type AddTodo struct {
	ID   int
	Text string
}

// ToggleTodo flips Completed on the item with ID.
type ToggleTodo struct {
	ID int
}

// SetVisibilityFilter replaces the current filter.
type SetVisibilityFilter struct {
	Filter Filter
}

func (AddTodo) Type() store.ActionType             { return TypeAddTodo }
func (ToggleTodo) Type() store.ActionType          { return TypeToggleTodo }
func (SetVisibilityFilter) Type() store.ActionType { return TypeSetVisibilityFilter }
