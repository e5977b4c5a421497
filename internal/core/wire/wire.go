// Package wire converts actions to and from their JSON wire format:
// a flat object with a "type" tag and the action's payload fields, e.g.
//
//	{"type":"ADD_TODO","id":3,"text":"hey"}
//
// Decoding fails fast on missing or invalid fields. Tags no reducer knows
// decode to store.Unknown.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/pkg/store"
)

var (
	// ErrMalformedAction is wrapped by every decode error caused by a missing
	// or invalid field.
	ErrMalformedAction = errors.New("malformed action")
	// ErrNotArray is returned by DecodeAll when the input is not a JSON array.
	ErrNotArray = errors.New("action log must be a JSON array")
)

// MalformedError describes why an action was rejected.
type MalformedError struct {
	Type  string
	Cause error
}

func (e *MalformedError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %v", ErrMalformedAction, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", ErrMalformedAction, e.Type, e.Cause)
}

func (e *MalformedError) Unwrap() []error {
	return []error{ErrMalformedAction, e.Cause}
}

// envelope is the union of every payload field. Pointers distinguish a
// missing field from its zero value.
type envelope struct {
	Type   *string `json:"type"`
	ID     *int    `json:"id,omitempty"`
	Text   *string `json:"text,omitempty"`
	Filter *string `json:"filter,omitempty"`
	Index  *int    `json:"index,omitempty"`
}

// Decode parses a single action.
func Decode(data []byte) (store.Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			tag := ""
			if env.Type != nil {
				tag = *env.Type
			}
			return nil, &MalformedError{
				Type:  tag,
				Cause: criterio.NewFieldErrors(typeErr.Field, fmt.Errorf("must be a %s, got %s", typeErr.Type, typeErr.Value)),
			}
		}
		return nil, fmt.Errorf("decode action: %w", err)
	}
	return env.action()
}

// DecodeAll parses a JSON array of actions. The first malformed entry aborts
// decoding and is reported with its position.
func DecodeAll(data []byte) ([]store.Action, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, fmt.Errorf("decode action log: %w", err)
	}

	return DecodeRaw(raws)
}

// DecodeRaw parses already split action objects.
func DecodeRaw(raws []json.RawMessage) ([]store.Action, error) {
	actions := make([]store.Action, 0, len(raws))
	for i, raw := range raws {
		a, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func (env envelope) action() (store.Action, error) {
	if env.Type == nil || strings.TrimSpace(*env.Type) == "" {
		return nil, &MalformedError{Cause: criterio.NewFieldErrors("type", errRequired)}
	}

	tag := *env.Type
	if err := env.validate(store.ActionType(tag)); err != nil {
		return nil, &MalformedError{Type: tag, Cause: err}
	}

	switch store.ActionType(tag) {
	case counter.TypeIncrement:
		return counter.Increment{}, nil
	case counter.TypeDecrement:
		return counter.Decrement{}, nil
	case counter.TypeAddCounter:
		return counter.AddCounter{}, nil
	case counter.TypeRemoveCounter:
		return counter.RemoveCounter{Index: *env.Index}, nil
	case counter.TypeIncrementCounter:
		return counter.IncrementCounter{Index: *env.Index}, nil
	case counter.TypeDecrementCounter:
		return counter.DecrementCounter{Index: *env.Index}, nil
	case todos.TypeAddTodo:
		return todos.AddTodo{ID: *env.ID, Text: *env.Text}, nil
	case todos.TypeToggleTodo:
		return todos.ToggleTodo{ID: *env.ID}, nil
	case todos.TypeSetVisibilityFilter:
		return todos.SetVisibilityFilter{Filter: todos.Filter(*env.Filter)}, nil
	default:
		return store.Unknown{Tag: tag}, nil
	}
}
