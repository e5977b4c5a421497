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

type TodosCmd struct {
	flags *Flags
	app   *app.App
}

// NewTodosCmd creates a new todos command
func NewTodosCmd(flags *Flags, app *app.App) *TodosCmd {
	return &TodosCmd{flags: flags, app: app}
}

// Register adds the todos command to the application
func (cmd *TodosCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "todos",
		Usage:     "Open the todo list",
		UsageText: "tinystore todos",
		Description: `Opens the interactive todo list. New todos are typed into the input and
added with enter; tab moves focus to the list where space toggles the
selected todo and 1/2/3 switch the visibility filter.

This is also what runs when tinystore is called without a command.`,
		Action: cmd.Run,
	})

	return app
}

// Run executes the todo TUI. Exported for use as default command.
func (cmd *TodosCmd) Run(ctx context.Context, _ *cli.Command) error {
	s, nextID := cmd.app.NewTodoStore()
	m := tui.NewTodoModel(s, nextID)

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Debug().
		Int("todos", len(m.State().Todos)).
		Int("renders", m.Renders()).
		Msg("todo tui closed")
	return nil
}
