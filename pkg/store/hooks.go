package store

import (
	"sync"
	"time"
)

// hooks holds observer callbacks. Hooks see what happened but cannot change
// the action or the resulting state.
type hooks struct {
	mu          sync.RWMutex
	onDispatch  []func(Action, time.Duration)
	onNotify    []func(int)
	onSubscribe []func(int)
}

// OnDispatch registers a hook that fires after the state has been replaced,
// before listeners are notified. It receives the action and the time spent in
// the reducer.
func (s *Store[S]) OnDispatch(fn func(Action, time.Duration)) {
	s.hooks.mu.Lock()
	s.hooks.onDispatch = append(s.hooks.onDispatch, fn)
	s.hooks.mu.Unlock()
}

// OnNotify registers a hook that fires after a notification pass with the
// number of listeners called.
func (s *Store[S]) OnNotify(fn func(int)) {
	s.hooks.mu.Lock()
	s.hooks.onNotify = append(s.hooks.onNotify, fn)
	s.hooks.mu.Unlock()
}

// OnSubscribe registers a hook that fires after every subscribe and
// unsubscribe with the number of active subscriptions.
func (s *Store[S]) OnSubscribe(fn func(int)) {
	s.hooks.mu.Lock()
	s.hooks.onSubscribe = append(s.hooks.onSubscribe, fn)
	s.hooks.mu.Unlock()
}

func (h *hooks) runOnDispatch(action Action, elapsed time.Duration) {
	h.mu.RLock()
	fns := make([]func(Action, time.Duration), len(h.onDispatch))
	copy(fns, h.onDispatch)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(action, elapsed)
	}
}

func (h *hooks) runOnNotify(n int) {
	h.mu.RLock()
	fns := make([]func(int), len(h.onNotify))
	copy(fns, h.onNotify)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(n)
	}
}

func (h *hooks) runOnSubscribe(total int) {
	h.mu.RLock()
	fns := make([]func(int), len(h.onSubscribe))
	copy(fns, h.onSubscribe)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(total)
	}
}
