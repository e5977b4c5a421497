package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tinystore/internal/app"
	"github.com/colonyops/tinystore/internal/tui"
)

type CounterCmd struct {
	flags *Flags
	app   *app.App
}

// NewCounterCmd creates a new counter command
func NewCounterCmd(flags *Flags, app *app.App) *CounterCmd {
	return &CounterCmd{flags: flags, app: app}
}

// Register adds the counter command to the application
func (cmd *CounterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "counter",
		Usage:     "Open the counter",
		UsageText: "tinystore counter",
		Description: `Opens the interactive counter. +/- change the value, a adds a counter to
the list, x removes the selected one, and [ ] change the selected counter.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *CounterCmd) run(ctx context.Context, _ *cli.Command) error {
	m := tui.NewCounterModel(cmd.app.NewCounterStore())

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Debug().
		Int("value", m.State().Value).
		Int("renders", m.Renders()).
		Msg("counter tui closed")
	return nil
}
