// Package store implements a minimal unidirectional state container: a single
// state cell replaced by a pure reducer on every dispatch, with listeners
// notified synchronously afterwards.
package store

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Listener is invoked with no arguments once per dispatch, after the state
// has been replaced. Listeners read the new state through GetState.
type Listener func()

type subscription struct {
	fn     Listener
	active bool
}

// Store owns the current state and the listener registry. All mutation goes
// through Dispatch and Subscribe.
//
// Notification passes work on a snapshot of the registry taken when the pass
// starts: a listener subscribed during a pass is first called on the next
// dispatch, and a listener unsubscribed during a pass is still called in that
// pass if it had not been reached yet.
type Store[S any] struct {
	reducer Reducer[S]
	logger  zerolog.Logger
	name    string

	mu    sync.Mutex
	state S
	subs  []*subscription
	dead  int

	hooks hooks
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	name   string
}

// WithLogger sets the logger used for per-dispatch debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithName labels the store in log output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// New binds reducer to a new store and dispatches Init so that GetState
// returns the reducer's defaults immediately.
func New[S any](reducer Reducer[S], opts ...Option) *Store[S] {
	o := options{logger: zerolog.Nop(), name: "store"}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[S]{
		reducer: reducer,
		logger:  o.logger.With().Str("store", o.name).Logger(),
		name:    o.name,
	}
	s.Dispatch(Init{})
	return s
}

// Name returns the label given with WithName.
func (s *Store[S]) Name() string {
	return s.name
}

// GetState returns the current state.
func (s *Store[S]) GetState() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the reducer to the current state and action, replaces the
// state, then calls every listener registered when the notification pass
// begins, in registration order. A panicking reducer propagates to the caller
// and leaves the previous state in place.
func (s *Store[S]) Dispatch(action Action) {
	elapsed := s.reduce(action)

	s.hooks.runOnDispatch(action, elapsed)

	listeners := s.snapshot()
	s.logger.Debug().
		Str("action", string(action.Type())).
		Int("listeners", len(listeners)).
		Dur("elapsed", elapsed).
		Msg("dispatch")

	for _, fn := range listeners {
		fn()
	}

	s.hooks.runOnNotify(len(listeners))
}

func (s *Store[S]) reduce(action Action) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	next := s.reducer(s.state, action)
	s.state = next
	return time.Since(start)
}

func (s *Store[S]) snapshot() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Listener, 0, len(s.subs)-s.dead)
	for _, sub := range s.subs {
		if sub.active {
			out = append(out, sub.fn)
		}
	}
	return out
}

// Subscribe registers l for future dispatches and returns a function that
// removes exactly this registration. The returned function is idempotent.
func (s *Store[S]) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	sub := &subscription{fn: l, active: true}
	s.subs = append(s.subs, sub)
	total := len(s.subs) - s.dead
	s.mu.Unlock()

	s.hooks.runOnSubscribe(total)

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(sub) })
	}
}

func (s *Store[S]) unsubscribe(sub *subscription) {
	s.mu.Lock()
	sub.active = false
	s.dead++
	if s.dead > len(s.subs)/2 {
		s.compact()
	}
	total := len(s.subs) - s.dead
	s.mu.Unlock()

	s.hooks.runOnSubscribe(total)
}

// compact drops inactive subscriptions. Caller holds mu.
func (s *Store[S]) compact() {
	live := make([]*subscription, 0, len(s.subs)-s.dead)
	for _, sub := range s.subs {
		if sub.active {
			live = append(live, sub)
		}
	}
	s.subs = live
	s.dead = 0
}

// Len returns the number of active subscriptions.
func (s *Store[S]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs) - s.dead
}
