package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)
}

func TestPalettesAreValidHex(t *testing.T) {
	for _, name := range ThemeNames() {
		p, ok := GetPalette(name)
		require.True(t, ok)
		for _, c := range []lipgloss.Color{
			p.Primary, p.Secondary, p.Foreground,
			p.Muted, p.Background, p.Surface,
			p.Success, p.Warning, p.Error,
		} {
			assert.NotNil(t, colorHexPtr(c), "%s: %s", name, c)
		}
	}
}

func TestColorForString_Deterministic(t *testing.T) {
	assert.Equal(t, ColorForString("Ada Lovelace"), ColorForString("Ada Lovelace"))
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	p, _ := GetPalette("echo-light")
	SetTheme(p)
	t.Cleanup(func() {
		def, _ := GetPalette(DefaultTheme)
		SetTheme(def)
	})

	cfg := GlamourStyle()
	require.NotNil(t, cfg.Heading.Color)
	assert.Equal(t, "#4747c2", *cfg.Heading.Color)
}
