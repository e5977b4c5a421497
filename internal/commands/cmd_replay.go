package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tinystore/internal/app"
	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/internal/core/wire"
	"github.com/colonyops/tinystore/internal/metrics"
	"github.com/colonyops/tinystore/pkg/iojson"
	"github.com/colonyops/tinystore/pkg/store"
)

const (
	appTodos   = "todos"
	appCounter = "counter"

	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type ReplayCmd struct {
	flags *Flags
	app   *app.App
	fr    *iojson.FileReader[json.RawMessage]

	// flags
	target  string
	format  string
	filter  string
	match   string
	trace   bool
	metrics bool
}

// NewReplayCmd creates a new replay command
func NewReplayCmd(flags *Flags, app *app.App) *ReplayCmd {
	return &ReplayCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[json.RawMessage]{},
	}
}

// Register adds the replay command to the application
func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "replay",
		Usage: "Apply a JSON action log to a fresh store",
		UsageText: `tinystore replay [options]

Read from stdin:
  echo '[{"type":"ADD_TODO","id":0,"text":"milk"}]' | tinystore replay

Read from file:
  tinystore replay --app counter -f actions.json`,
		Description: `Dispatches every action in a JSON array, in order, to a new store and
prints the final state. Stores start from their initial state; configured
seeds are not applied.

Each action is an object with a "type" tag and the fields that action needs:
  {"type": "ADD_TODO", "id": 0, "text": "milk"}
  {"type": "TOGGLE_TODO", "id": 0}
  {"type": "SET_VISIBILITY_FILTER", "filter": "SHOW_ACTIVE"}
  {"type": "INCREMENT"} / {"type": "DECREMENT"}
  {"type": "ADD_COUNTER"}
  {"type": "REMOVE_COUNTER", "index": 0}
  {"type": "INCREMENT_COUNTER", "index": 0} / {"type": "DECREMENT_COUNTER", "index": 0}

Unknown types are dispatched and leave the state unchanged. An action missing
a required field rejects the whole log before anything is dispatched.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.StringFlag{
				Name:        "app",
				Usage:       "store to replay into (todos, counter)",
				Value:       appTodos,
				Destination: &cmd.target,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (json, markdown)",
				Value:       formatJSON,
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "filter",
				Usage:       "only print todos visible under this filter (all, active, completed)",
				Destination: &cmd.filter,
			},
			&cli.StringFlag{
				Name:        "match",
				Usage:       "only print todos whose text matches this glob",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "print every action and the state after it as JSON lines",
				Destination: &cmd.trace,
			},
			&cli.BoolFlag{
				Name:        "metrics",
				Usage:       "print store metrics to stderr when done",
				Destination: &cmd.metrics,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReplayCmd) run(ctx context.Context, c *cli.Command) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	raw, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read actions: %w", err)
	}

	actions, err := wire.DecodeAll(raw)
	if err != nil {
		return fmt.Errorf("decode actions: %w", err)
	}

	log.Debug().
		Str("app", cmd.target).
		Int("actions", len(actions)).
		Msg("replaying actions")

	out := c.Root().Writer

	switch cmd.target {
	case appCounter:
		s := store.New(counter.Reduce, cmd.app.StoreOptions(appCounter)...)
		metrics.Attach(cmd.app.Metrics, s)

		if err := cmd.replay(out, actions, storeRunner(s)); err != nil {
			return err
		}
		if err := cmd.print(out, c.Root().ErrWriter, s.GetState(), counterMarkdown(s.GetState())); err != nil {
			return err
		}
	default:
		s := store.New(todos.Reduce, cmd.app.StoreOptions(appTodos)...)
		metrics.Attach(cmd.app.Metrics, s)

		if err := cmd.replay(out, actions, storeRunner(s)); err != nil {
			return err
		}
		final, err := cmd.project(s.GetState())
		if err != nil {
			return err
		}
		if err := cmd.print(out, c.Root().ErrWriter, final, todos.Markdown(final)); err != nil {
			return err
		}
	}

	if cmd.metrics {
		return cmd.printMetrics(c.Root().ErrWriter)
	}
	return nil
}

func (cmd *ReplayCmd) validate() error {
	switch cmd.target {
	case appTodos, appCounter:
	default:
		return fmt.Errorf("unknown app %q: expected %s or %s", cmd.target, appTodos, appCounter)
	}

	switch cmd.format {
	case formatJSON, formatMarkdown:
	default:
		return fmt.Errorf("unknown format %q: expected %s or %s", cmd.format, formatJSON, formatMarkdown)
	}

	if cmd.target != appTodos && (cmd.filter != "" || cmd.match != "") {
		return fmt.Errorf("--filter and --match require --app %s", appTodos)
	}
	if cmd.filter != "" {
		if _, ok := parseFilter(cmd.filter); !ok {
			return fmt.Errorf("unknown filter %q", cmd.filter)
		}
	}
	if cmd.match != "" && !doublestar.ValidatePattern(cmd.match) {
		return fmt.Errorf("invalid glob %q", cmd.match)
	}
	return nil
}

// runner dispatches to a store without the caller knowing its state type.
type runner struct {
	dispatch  func(store.Action)
	subscribe func(func(state any)) func()
}

func storeRunner[S any](s *store.Store[S]) runner {
	return runner{
		dispatch: s.Dispatch,
		subscribe: func(fn func(any)) func() {
			return s.Subscribe(func() { fn(s.GetState()) })
		},
	}
}

// traceLine is one --trace record: the action in its wire format and the
// state it produced.
type traceLine struct {
	Action json.RawMessage `json:"action"`
	State  any             `json:"state"`
}

// replay dispatches actions in order. With tracing enabled a listener writes
// each action and the state after it.
func (cmd *ReplayCmd) replay(out io.Writer, actions []store.Action, r runner) error {
	var (
		current  json.RawMessage
		traceErr error
	)
	if cmd.trace {
		unsubscribe := r.subscribe(func(state any) {
			if traceErr != nil {
				return
			}
			traceErr = iojson.WriteLine(out, traceLine{Action: current, State: state})
		})
		defer unsubscribe()
	}

	for i, a := range actions {
		if cmd.trace {
			encoded, err := wire.Encode(a)
			if err != nil {
				return fmt.Errorf("action %d: %w", i, err)
			}
			current = encoded
		}

		r.dispatch(a)
		if traceErr != nil {
			return fmt.Errorf("write trace: %w", traceErr)
		}
	}
	return nil
}

// project narrows the todo list to what --filter and --match select.
func (cmd *ReplayCmd) project(s todos.State) (todos.State, error) {
	if cmd.filter != "" {
		f, _ := parseFilter(cmd.filter)
		s.Todos = todos.Visible(s.Todos, f)
		s.VisibilityFilter = f
	}

	if cmd.match != "" {
		matched := make([]todos.Todo, 0, len(s.Todos))
		for _, t := range s.Todos {
			ok, err := doublestar.Match(cmd.match, t.Text)
			if err != nil {
				return s, fmt.Errorf("match %q: %w", cmd.match, err)
			}
			if ok {
				matched = append(matched, t)
			}
		}
		s.Todos = matched
	}

	return s, nil
}

func (cmd *ReplayCmd) print(out, errOut io.Writer, state any, markdown string) error {
	if cmd.format == formatJSON {
		return iojson.WriteWith(out, errOut, state)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(glamourStyle(out)),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

func (cmd *ReplayCmd) printMetrics(w io.Writer) error {
	samples, err := metrics.Summary(cmd.app.Metrics.Registry())
	if err != nil {
		return err
	}
	for _, s := range samples {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// glamourStyle picks a colored style for terminals and plain text otherwise.
func glamourStyle(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "dark"
	}
	return "notty"
}

// parseFilter accepts a wire value (SHOW_ACTIVE) or a label (active).
func parseFilter(s string) (todos.Filter, bool) {
	for _, f := range todos.Filters {
		if s == string(f) || strings.EqualFold(s, f.Label()) {
			return f, true
		}
	}
	return "", false
}

func counterMarkdown(s counter.State) string {
	var b strings.Builder
	b.WriteString("# Counter\n\n")
	fmt.Fprintf(&b, "Value: **%d**\n\n", s.Value)

	if len(s.List) == 0 {
		b.WriteString("_no counters_\n")
		return b.String()
	}
	for i, v := range s.List {
		fmt.Fprintf(&b, "%d. %d\n", i+1, v)
	}
	return b.String()
}
