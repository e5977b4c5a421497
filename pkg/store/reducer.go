package store

import "fmt"

// Reducer computes the next state from the current state and an action.
//
// Reducers must be pure: no I/O, no mutation of the state or action passed in,
// and no dispatching. The zero value of S stands in for "no prior state"; a
// reducer receiving it supplies its defaults. Actions a reducer does not
// handle return the input state unchanged.
type Reducer[S any] func(state S, action Action) S

// SliceReducer reduces one named field of an aggregate state S.
type SliceReducer[S any] struct {
	name   string
	reduce func(prev S, next S, action Action) S
}

// Name returns the slice name.
func (s SliceReducer[S]) Name() string { return s.name }

// Slice binds a reducer for a field of type T inside S. get reads the field
// from an aggregate and set returns a copy of the aggregate with the field
// replaced.
func Slice[S, T any](name string, get func(S) T, set func(S, T) S, reducer Reducer[T]) SliceReducer[S] {
	return SliceReducer[S]{
		name: name,
		reduce: func(prev S, next S, action Action) S {
			return set(next, reducer(get(prev), action))
		},
	}
}

// Combine fans an action out to every slice. Each slice reducer sees only its
// own field of the previous aggregate, never the output of another slice.
// Combine panics if two slices share a name.
func Combine[S any](slices ...SliceReducer[S]) Reducer[S] {
	seen := make(map[string]struct{}, len(slices))
	for _, s := range slices {
		if _, dup := seen[s.Name()]; dup {
			panic(fmt.Sprintf("store: duplicate slice %q", s.Name()))
		}
		seen[s.Name()] = struct{}{}
	}

	return func(state S, action Action) S {
		next := state
		for _, s := range slices {
			next = s.reduce(state, next, action)
		}
		return next
	}
}
