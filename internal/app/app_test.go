package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tinystore/internal/core/config"
	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/internal/metrics"
	"github.com/colonyops/tinystore/pkg/store"
)

func TestNewTodoStore_defaults(t *testing.T) {
	cfg := config.DefaultConfig()
	a := New(&cfg)

	s, nextID := a.NewTodoStore()
	assert.Equal(t, 0, nextID)
	assert.Equal(t, todos.State{VisibilityFilter: todos.ShowAll}, s.GetState())
}

func TestNewTodoStore_seeded(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Todos.Seed = []string{"write docs", "go shopping"}
	cfg.Todos.Filter = todos.ShowActive
	a := New(&cfg)

	s, nextID := a.NewTodoStore()

	assert.Equal(t, 2, nextID)
	assert.Equal(t, todos.State{
		Todos: []todos.Todo{
			{ID: 0, Text: "write docs"},
			{ID: 1, Text: "go shopping"},
		},
		VisibilityFilter: todos.ShowActive,
	}, s.GetState())
}

func TestNewCounterStore(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		counters int
		want     counter.State
	}{
		{name: "defaults", want: counter.State{}},
		{name: "positive start", start: 3, want: counter.State{Value: 3}},
		{name: "negative start", start: -2, want: counter.State{Value: -2}},
		{name: "with list", counters: 2, want: counter.State{List: []int{0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Counter.Start = tt.start
			cfg.Counter.Counters = tt.counters

			s := New(&cfg).NewCounterStore()
			assert.Equal(t, tt.want, s.GetState())
		})
	}
}

func TestNewTodoStore_records_metrics(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Todos.Seed = []string{"a", "b"}
	a := New(&cfg)

	s, _ := a.NewTodoStore()
	assert.Equal(t, "todos", s.Name())

	samples, err := metrics.Summary(a.Metrics.Registry())
	require.NoError(t, err)

	lines := make([]string, len(samples))
	for i, sample := range samples {
		lines[i] = sample.String()
	}
	assert.Contains(t, lines, `tinystore_dispatch_total{action="ADD_TODO",store="todos"} 2`)
}

func TestStoreOptions_logs_through_global_logger(t *testing.T) {
	cfg := config.DefaultConfig()
	a := New(&cfg)

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	// Configured after New, the way main sets up logging in Before.
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := store.New(counter.Reduce, a.StoreOptions("counter")...)
	s.Dispatch(counter.Increment{})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store", entry["cmp"])
	assert.Equal(t, "counter", entry["store"])
	assert.Equal(t, "INCREMENT", entry["action"])
	assert.Equal(t, "dispatch", entry["message"])
}
