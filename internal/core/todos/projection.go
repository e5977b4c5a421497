package todos

import (
	"fmt"
	"strings"
)

// Visible returns the todos matching filter, preserving their order. The
// input slice is not modified; ShowAll returns it as is.
func Visible(list []Todo, filter Filter) []Todo {
	if filter == ShowAll || filter == "" {
		return list
	}
	out := make([]Todo, 0, len(list))
	for _, t := range list {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Counts returns the number of active and completed todos.
func Counts(list []Todo) (active, completed int) {
	for _, t := range list {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}

// Markdown renders the visible todos as a GitHub-style task list.
func Markdown(s State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Todos (%s)\n\n", s.VisibilityFilter.Label())

	visible := Visible(s.Todos, s.VisibilityFilter)
	if len(visible) == 0 {
		b.WriteString("_nothing to show_\n")
		return b.String()
	}

	for _, t := range visible {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, t.Text)
	}

	active, completed := Counts(s.Todos)
	fmt.Fprintf(&b, "\n%d active, %d completed\n", active, completed)
	return b.String()
}
