// Package tui renders stores as Bubble Tea programs. Each model subscribes a
// render listener to its store and turns key presses into dispatched actions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tinystore/internal/core/styles"
	"github.com/colonyops/tinystore/internal/core/todos"
	"github.com/colonyops/tinystore/pkg/store"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// TodoModel is the todo-list app.
type TodoModel struct {
	store       *store.Store[todos.State]
	unsubscribe func()

	input  textinput.Model
	focus  focus
	cursor int
	nextID int

	// frame is the state-derived part of the view, rebuilt by the store
	// listener after every dispatch.
	frame   string
	renders int
}

// NewTodoModel creates the model and subscribes its renderer to s. nextID is
// the id assigned to the next added todo.
func NewTodoModel(s *store.Store[todos.State], nextID int) *TodoModel {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	m := &TodoModel{
		store:  s,
		input:  ti,
		nextID: nextID,
	}
	m.unsubscribe = s.Subscribe(m.onChange)
	m.render()
	return m
}

// Init implements tea.Model.
func (m *TodoModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case keyCtrlC:
			return m, m.quit()
		case keyTab:
			return m, m.toggleFocus()
		}

		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(key)
	}

	return m, nil
}

func (m *TodoModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		m.submit()
		return m, nil
	case keyEsc:
		return m, m.toggleFocus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TodoModel) updateList(key string) (tea.Model, tea.Cmd) {
	switch {
	case key == keyUp || key == "k":
		m.moveCursor(-1)
	case key == keyDown || key == "j":
		m.moveCursor(1)
	case key == keyEnter || key == "x" || isSpace(key):
		m.toggleSelected()
	case key == "1":
		m.store.Dispatch(todos.SetVisibilityFilter{Filter: todos.ShowAll})
	case key == "2":
		m.store.Dispatch(todos.SetVisibilityFilter{Filter: todos.ShowActive})
	case key == "3":
		m.store.Dispatch(todos.SetVisibilityFilter{Filter: todos.ShowCompleted})
	case key == "i" || key == "a":
		return m, m.toggleFocus()
	case key == "q" || key == keyEsc:
		return m, m.quit()
	}
	return m, nil
}

// submit dispatches the input as a new todo. Blank input is ignored.
func (m *TodoModel) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	m.store.Dispatch(todos.AddTodo{ID: m.nextID, Text: text})
	m.nextID++
	m.input.Reset()
}

func (m *TodoModel) toggleSelected() {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return
	}
	m.store.Dispatch(todos.ToggleTodo{ID: visible[m.cursor].ID})
}

func (m *TodoModel) moveCursor(delta int) {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.render()
}

func (m *TodoModel) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.render()
		return nil
	}
	m.focus = focusInput
	m.render()
	return m.input.Focus()
}

func (m *TodoModel) quit() tea.Cmd {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	return tea.Quit
}

func (m *TodoModel) visible() []todos.Todo {
	s := m.store.GetState()
	return todos.Visible(s.Todos, s.VisibilityFilter)
}

// onChange is the store listener.
func (m *TodoModel) onChange() {
	m.renders++
	m.render()
}

// render rebuilds the list and footer from the current state.
func (m *TodoModel) render() {
	s := m.store.GetState()
	visible := todos.Visible(s.Todos, s.VisibilityFilter)
	if m.cursor >= len(visible) {
		m.cursor = max(len(visible)-1, 0)
	}

	var b strings.Builder
	if len(visible) == 0 {
		b.WriteString(styles.HelpStyle.Render("  nothing here yet"))
		b.WriteString("\n")
	}
	for i, t := range visible {
		pointer := "  "
		if m.focus == focusList && i == m.cursor {
			pointer = styles.CursorStyle.Render("> ")
		}

		check := "[ ]"
		line := styles.ItemStyle.Render(t.Text)
		if t.Completed {
			check = "[x]"
			line = styles.CompletedStyle.Render(t.Text)
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, check, line)
	}

	b.WriteString("\n")
	b.WriteString(footer(s.VisibilityFilter))

	active, _ := todos.Counts(s.Todos)
	fmt.Fprintf(&b, "  %d item(s) left", active)

	m.frame = b.String()
}

func footer(current todos.Filter) string {
	parts := make([]string, len(todos.Filters))
	for i, f := range todos.Filters {
		label := fmt.Sprintf("%d:%s", i+1, f.Label())
		if f == current {
			parts[i] = styles.FilterStyle.Render(label)
		} else {
			parts[i] = styles.FilterLinkStyle.Render(label)
		}
	}
	return "Show: " + strings.Join(parts, ", ")
}

// View implements tea.Model.
func (m *TodoModel) View() string {
	var help string
	if m.focus == focusInput {
		help = helpLine("enter", "add", "tab", "list", "ctrl+c", "quit")
	} else {
		help = helpLine("↑/↓", "move", "space", "toggle", "1/2/3", "filter", "tab", "input", "q", "quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("todos"),
		styles.InputStyle.Render(m.input.View()),
		m.frame,
		styles.HelpStyle.Render(help),
	)
}

// State returns the store's current state.
func (m *TodoModel) State() todos.State {
	return m.store.GetState()
}

// Renders returns how many store notifications the model has received.
func (m *TodoModel) Renders() int {
	return m.renders
}
