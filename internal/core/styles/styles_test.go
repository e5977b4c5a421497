package styles

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, DefaultTheme)
}

func TestGetPalette(t *testing.T) {
	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)

	p, ok := GetPalette("gruvbox")
	assert.True(t, ok)
	assert.Equal(t, "#83a598", string(p.Primary))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() {
		p, _ := GetPalette(DefaultTheme)
		SetTheme(p)
	})

	p, _ := GetPalette("plain")
	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
}
