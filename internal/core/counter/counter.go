// Package counter holds the counter reducers: a single integer counter and a
// list of independent counters.
package counter

import (
	"slices"

	"github.com/colonyops/tinystore/pkg/store"
)

// State is the aggregate counter state.
type State struct {
	Value int   `json:"value"`
	List  []int `json:"list"`
}

// Reduce is the combined reducer for State.
var Reduce = store.Combine(
	store.Slice("value",
		func(s State) int { return s.Value },
		func(s State, v int) State { s.Value = v; return s },
		Counter),
	store.Slice("list",
		func(s State) []int { return s.List },
		func(s State, v []int) State { s.List = v; return s },
		List),
)

// Counter reduces a single counter. Its default is 0.
func Counter(state int, action store.Action) int {
	switch action.(type) {
	case Increment:
		return state + 1
	case Decrement:
		return state - 1
	default:
		return state
	}
}

// List reduces a list of counters. Out of range indexes leave the list
// unchanged.
func List(state []int, action store.Action) []int {
	switch a := action.(type) {
	case AddCounter:
		return Add(state)
	case RemoveCounter:
		return Remove(state, a.Index)
	case IncrementCounter:
		return IncrementAt(state, a.Index)
	case DecrementCounter:
		return DecrementAt(state, a.Index)
	default:
		return state
	}
}

// Add returns a copy of list with a zero counter appended.
func Add(list []int) []int {
	return append(slices.Clip(list), 0)
}

// Remove returns a copy of list without the element at index.
func Remove(list []int, index int) []int {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]int, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// IncrementAt returns a copy of list with the element at index increased by one.
func IncrementAt(list []int, index int) []int {
	return replaceAt(list, index, 1)
}

// DecrementAt returns a copy of list with the element at index decreased by one.
func DecrementAt(list []int, index int) []int {
	return replaceAt(list, index, -1)
}

func replaceAt(list []int, index, delta int) []int {
	if index < 0 || index >= len(list) {
		return list
	}
	out := slices.Clone(list)
	out[index] += delta
	return out
}
