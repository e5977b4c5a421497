package tui

import "strings"

// Key names as reported by tea.KeyMsg.String.
const (
	keyCtrlC = "ctrl+c"
	keyTab   = "tab"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyUp    = "up"
	keyDown  = "down"
	keyLeft  = "left"
	keyRight = "right"
)

func isSpace(key string) bool {
	return key == " " || key == "space"
}

// helpLine joins key/description pairs into a single help line.
func helpLine(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pairs[i]+" "+pairs[i+1])
	}
	return strings.Join(parts, " • ")
}
