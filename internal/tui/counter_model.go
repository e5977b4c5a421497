package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tinystore/internal/core/counter"
	"github.com/colonyops/tinystore/internal/core/styles"
	"github.com/colonyops/tinystore/pkg/store"
)

// CounterModel shows the single counter and the counter list.
type CounterModel struct {
	store       *store.Store[counter.State]
	unsubscribe func()

	selected int
	frame    string
	renders  int
}

// NewCounterModel creates the model and subscribes its renderer to s.
func NewCounterModel(s *store.Store[counter.State]) *CounterModel {
	m := &CounterModel{store: s}
	m.unsubscribe = s.Subscribe(m.onChange)
	m.render()
	return m
}

// Init implements tea.Model.
func (m *CounterModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case keyCtrlC, "q", keyEsc:
		if m.unsubscribe != nil {
			m.unsubscribe()
			m.unsubscribe = nil
		}
		return m, tea.Quit
	case "+", "=", keyUp:
		m.store.Dispatch(counter.Increment{})
	case "-", keyDown:
		m.store.Dispatch(counter.Decrement{})
	case "a":
		m.store.Dispatch(counter.AddCounter{})
		m.selected = len(m.store.GetState().List) - 1
		m.render()
	case "x":
		m.store.Dispatch(counter.RemoveCounter{Index: m.selected})
	case "]":
		m.store.Dispatch(counter.IncrementCounter{Index: m.selected})
	case "[":
		m.store.Dispatch(counter.DecrementCounter{Index: m.selected})
	case keyLeft, "h":
		m.selected = max(m.selected-1, 0)
		m.render()
	case keyRight, "l":
		m.selected = min(m.selected+1, max(len(m.store.GetState().List)-1, 0))
		m.render()
	}

	return m, nil
}

func (m *CounterModel) onChange() {
	m.renders++
	m.render()
}

func (m *CounterModel) render() {
	s := m.store.GetState()
	if m.selected >= len(s.List) {
		m.selected = max(len(s.List)-1, 0)
	}

	var b strings.Builder
	b.WriteString(styles.CounterStyle.Render(strconv.Itoa(s.Value)))
	b.WriteString("\n\n")

	if len(s.List) == 0 {
		b.WriteString(styles.HelpStyle.Render("no counters in the list"))
	} else {
		cells := make([]string, len(s.List))
		for i, v := range s.List {
			cell := fmt.Sprintf(" %d ", v)
			if i == m.selected {
				cell = styles.CursorStyle.Render("[" + strings.TrimSpace(cell) + "]")
			} else {
				cell = styles.CounterListStyle.Render(cell)
			}
			cells[i] = cell
		}
		b.WriteString("list: ")
		b.WriteString(strings.Join(cells, " "))
	}

	m.frame = b.String()
}

// View implements tea.Model.
func (m *CounterModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("counter"),
		m.frame,
		styles.HelpStyle.Render(helpLine(
			"+/-", "value",
			"a", "add",
			"x", "remove",
			"←/→", "select",
			"[/]", "dec/inc",
			"q", "quit",
		)),
	)
}

// State returns the store's current state.
func (m *CounterModel) State() counter.State {
	return m.store.GetState()
}

// Renders returns how many store notifications the model has received.
func (m *CounterModel) Renders() int {
	return m.renders
}
