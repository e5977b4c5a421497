// Package styles provides shared lipgloss styles for the TUIs.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	TitleStyle       lipgloss.Style
	InputStyle       lipgloss.Style
	ItemStyle        lipgloss.Style
	CompletedStyle   lipgloss.Style
	CursorStyle      lipgloss.Style
	FilterStyle      lipgloss.Style
	FilterLinkStyle  lipgloss.Style
	HelpStyle        lipgloss.Style
	CounterStyle     lipgloss.Style
	CounterListStyle lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	ItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	CompletedStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	CursorStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	FilterStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)
	FilterLinkStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Underline(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	CounterStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true).
		Padding(0, 2)
	CounterListStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
}
