package store

// ActionType is the tag carried by every action. Tags are the wire-level
// identity of an action and are compared as plain strings.
type ActionType string

// TypeInit is dispatched once by New so reducers can supply their defaults.
const TypeInit ActionType = "@@INIT"

// Action is a tagged, immutable description of a requested state transition.
// Concrete actions are small value structs carrying only their own fields.
type Action interface {
	Type() ActionType
}

// Init is the bootstrap action dispatched at store construction.
type Init struct{}

func (Init) Type() ActionType { return TypeInit }

// Unknown carries a tag no reducer recognizes. Reducers return their input
// state for it unchanged.
type Unknown struct {
	Tag string
}

func (u Unknown) Type() ActionType { return ActionType(u.Tag) }
