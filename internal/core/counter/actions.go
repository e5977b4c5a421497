package counter

import "github.com/colonyops/tinystore/pkg/store"

// Action tags handled by this package.
const (
	TypeIncrement        store.ActionType = "INCREMENT"
	TypeDecrement        store.ActionType = "DECREMENT"
	TypeAddCounter       store.ActionType = "ADD_COUNTER"
	TypeRemoveCounter    store.ActionType = "REMOVE_COUNTER"
	TypeIncrementCounter store.ActionType = "INCREMENT_COUNTER"
	TypeDecrementCounter store.ActionType = "DECREMENT_COUNTER"
)

// Increment adds one to the single counter.
type Increment struct{}

// Decrement subtracts one from the single counter.
type Decrement struct{}

// AddCounter appends a new counter at zero to the list.
type AddCounter struct{}

// RemoveCounter drops the counter at Index from the list.
type RemoveCounter struct {
	Index int
}

// IncrementCounter adds one to the counter at Index.
type IncrementCounter struct {
	Index int
}

// DecrementCounter subtracts one from the counter at Index.
type DecrementCounter struct {
	Index int
}

func (Increment) Type() store.ActionType        { return TypeIncrement }
func (Decrement) Type() store.ActionType        { return TypeDecrement }
func (AddCounter) Type() store.ActionType       { return TypeAddCounter }
func (RemoveCounter) Type() store.ActionType    { return TypeRemoveCounter }
func (IncrementCounter) Type() store.ActionType { return TypeIncrementCounter }
func (DecrementCounter) Type() store.ActionType { return TypeDecrementCounter }
