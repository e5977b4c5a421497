package store

import (
	"bytes"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type incr struct{}

func (incr) Type() ActionType { return "INCREMENT" }

type decr struct{}

func (decr) Type() ActionType { return "DECREMENT" }

func counter(state int, action Action) int {
	switch action.(type) {
	case incr:
		return state + 1
	case decr:
		return state - 1
	default:
		return state
	}
}

func TestNew_dispatches_init(t *testing.T) {
	var seen []ActionType
	s := New(func(state int, a Action) int {
		seen = append(seen, a.Type())
		return 42
	})

	assert.Equal(t, 42, s.GetState())
	assert.Equal(t, []ActionType{TypeInit}, seen)
}

func TestDispatch_counter_scenario(t *testing.T) {
	s := New(counter)
	require.Equal(t, 0, s.GetState())

	s.Dispatch(incr{})
	s.Dispatch(incr{})
	s.Dispatch(decr{})

	assert.Equal(t, 1, s.GetState())
}

func TestDispatch_unknown_action_keeps_state(t *testing.T) {
	s := New(counter)
	s.Dispatch(incr{})
	s.Dispatch(Unknown{Tag: "NOPE"})

	assert.Equal(t, 1, s.GetState())
}

func TestDispatch_notifies_each_listener_once(t *testing.T) {
	s := New(counter)

	const n = 5
	calls := make([]int, n)
	for i := 0; i < n; i++ {
		s.Subscribe(func() { calls[i]++ })
	}

	s.Dispatch(incr{})

	for i, c := range calls {
		assert.Equal(t, 1, c, "listener %d", i)
	}
}

func TestDispatch_listeners_in_registration_order(t *testing.T) {
	s := New(counter)

	var order []string
	s.Subscribe(func() { order = append(order, "a") })
	s.Subscribe(func() { order = append(order, "b") })
	s.Subscribe(func() { order = append(order, "c") })

	s.Dispatch(incr{})

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestDispatch_listener_sees_new_state(t *testing.T) {
	s := New(counter)

	var got int
	s.Subscribe(func() { got = s.GetState() })
	s.Dispatch(incr{})

	assert.Equal(t, 1, got)
}

func TestUnsubscribe_removes_only_that_listener(t *testing.T) {
	s := New(counter)

	var a, b int
	unsubA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	s.Dispatch(incr{})
	unsubA()
	s.Dispatch(incr{})

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, s.Len())
}

func TestUnsubscribe_is_idempotent(t *testing.T) {
	s := New(counter)

	var a, b int
	unsubA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	unsubA()
	unsubA()
	s.Dispatch(incr{})

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, s.Len())
}

func TestSubscribe_same_function_twice(t *testing.T) {
	s := New(counter)

	var n int
	fn := func() { n++ }
	unsub := s.Subscribe(fn)
	s.Subscribe(fn)

	s.Dispatch(incr{})
	assert.Equal(t, 2, n)

	unsub()
	s.Dispatch(incr{})
	assert.Equal(t, 3, n)
}

func TestSubscribe_during_pass_waits_for_next_dispatch(t *testing.T) {
	s := New(counter)

	var late int
	added := false
	s.Subscribe(func() {
		if !added {
			added = true
			s.Subscribe(func() { late++ })
		}
	})

	s.Dispatch(incr{})
	assert.Equal(t, 0, late)

	s.Dispatch(incr{})
	assert.Equal(t, 1, late)
}

func TestUnsubscribe_during_pass_still_notifies_current_pass(t *testing.T) {
	s := New(counter)

	var second int
	var unsubSecond func()
	s.Subscribe(func() {
		if unsubSecond != nil {
			unsubSecond()
		}
	})
	unsubSecond = s.Subscribe(func() { second++ })

	s.Dispatch(incr{})
	assert.Equal(t, 1, second)

	s.Dispatch(incr{})
	assert.Equal(t, 1, second)
}

func TestDispatch_reentrant_runs_depth_first(t *testing.T) {
	s := New(counter)

	var trace []int
	s.Subscribe(func() {
		v := s.GetState()
		trace = append(trace, v)
		if v == 1 {
			s.Dispatch(incr{})
		}
	})
	s.Subscribe(func() { trace = append(trace, -s.GetState()) })

	s.Dispatch(incr{})

	// Outer pass: first listener sees 1 and dispatches; the inner pass runs
	// fully (2, -2) before the outer pass reaches the second listener.
	assert.Equal(t, []int{1, 2, -2, -2}, trace)
	assert.Equal(t, 2, s.GetState())
}

func TestDispatch_reducer_panic_keeps_previous_state(t *testing.T) {
	s := New(func(state int, a Action) int {
		if a.Type() == "BOOM" {
			panic("boom")
		}
		return counter(state, a)
	})
	s.Dispatch(incr{})

	var notified int
	s.Subscribe(func() { notified++ })

	assert.PanicsWithValue(t, "boom", func() { s.Dispatch(Unknown{Tag: "BOOM"}) })
	assert.Equal(t, 1, s.GetState())
	assert.Equal(t, 0, notified)

	// store remains usable
	s.Dispatch(incr{})
	assert.Equal(t, 2, s.GetState())
	assert.Equal(t, 1, notified)
}

func TestUnsubscribe_compacts_registry(t *testing.T) {
	s := New(counter)

	unsubs := make([]func(), 10)
	for i := range unsubs {
		unsubs[i] = s.Subscribe(func() {})
	}
	for _, u := range unsubs[:8] {
		u()
	}

	assert.Equal(t, 2, s.Len())
	assert.LessOrEqual(t, len(s.subs), 4)
}

func TestHooks(t *testing.T) {
	s := New(counter)

	var (
		dispatched []ActionType
		notified   []int
		totals     []int
	)
	s.OnDispatch(func(a Action, d time.Duration) {
		dispatched = append(dispatched, a.Type())
		assert.GreaterOrEqual(t, d, time.Duration(0))
	})
	s.OnNotify(func(n int) { notified = append(notified, n) })
	s.OnSubscribe(func(total int) { totals = append(totals, total) })

	unsub := s.Subscribe(func() {})
	s.Subscribe(func() {})
	s.Dispatch(incr{})
	unsub()
	s.Dispatch(decr{})

	assert.Equal(t, []ActionType{"INCREMENT", "DECREMENT"}, dispatched)
	assert.Equal(t, []int{2, 1}, notified)
	assert.Equal(t, []int{1, 2, 1}, totals)
}

func TestWithLogger_logs_dispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := New(counter, WithLogger(logger), WithName("counter"))
	buf.Reset()
	s.Dispatch(incr{})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "counter", entry["store"])
	assert.Equal(t, "INCREMENT", entry["action"])
	assert.Equal(t, "dispatch", entry["message"])
	assert.Equal(t, "counter", s.Name())
}

func TestStore_concurrent_dispatch_and_subscribe(t *testing.T) {
	const (
		dispatchers = 8
		perWorker   = 200
		subscribers = 4
		churn       = 100
	)

	s := New(counter)

	var notified atomic.Int64
	s.Subscribe(func() { notified.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < dispatchers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s.Dispatch(incr{})
			}
		}()
	}
	for i := 0; i < subscribers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < churn; j++ {
				unsub := s.Subscribe(func() { _ = s.GetState() })
				_ = s.Len()
				unsub()
				unsub()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, dispatchers*perWorker, s.GetState())
	assert.Equal(t, int64(dispatchers*perWorker), notified.Load())
	assert.Equal(t, 1, s.Len())
}
