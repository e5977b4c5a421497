// Package app wires configuration, logging, and metrics into the stores the
// commands and TUIs consume.
package app

import (
	"github.com/colonyops/tinystore/internal/core/config"
	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/logging"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/internal/metrics"
	"github.com/colonyops/tinystore/pkg/store"
)

// App is the central entry point for tinystore operations. Commands build
// their stores through it instead of cherry-picking raw dependencies.
type App struct {
	Config  *config.Config
	Metrics *metrics.Recorder
}

// New constructs an App from explicit dependencies.
func New(cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Metrics: metrics.New(metrics.Config{Namespace: cfg.Metrics.Namespace}),
	}
}

// StoreOptions returns the options every store built by the app shares. The
// store logger is a child of the global logger as configured at call time.
func (a *App) StoreOptions(name string) []store.Option {
	return []store.Option{store.WithName(name), store.WithLogger(logging.Component("store"))}
}

// NewTodoStore creates a todo store with the configured seed todos and
// filter applied. It also returns the next free todo id.
func (a *App) NewTodoStore() (*store.Store[todos.State], int) {
	s := store.New(todos.Reduce, a.StoreOptions("todos")...)
	metrics.Attach(a.Metrics, s)

	nextID := 0
	for _, text := range a.Config.Todos.Seed {
		s.Dispatch(todos.AddTodo{ID: nextID, Text: text})
		nextID++
	}
	if f := a.Config.Todos.Filter; f != "" && f != todos.ShowAll {
		s.Dispatch(todos.SetVisibilityFilter{Filter: f})
	}

	return s, nextID
}

// NewCounterStore creates a counter store moved to the configured start value
// with the configured number of list counters.
func (a *App) NewCounterStore() *store.Store[counter.State] {
	s := store.New(counter.Reduce, a.StoreOptions("counter")...)
	metrics.Attach(a.Metrics, s)

	for v := a.Config.Counter.Start; v > 0; v-- {
		s.Dispatch(counter.Increment{})
	}
	for v := a.Config.Counter.Start; v < 0; v++ {
		s.Dispatch(counter.Decrement{})
	}
	for i := 0; i < a.Config.Counter.Counters; i++ {
		s.Dispatch(counter.AddCounter{})
	}

	return s
}
