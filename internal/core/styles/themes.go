package styles

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is the name of the default theme.
const DefaultTheme = "echo"

// themes holds the built-in named palettes. The echo variants follow the
// design system's brand colors; slate is a low-saturation alternative.
var themes = map[string]Palette{
	"echo": {
		Primary:    lipgloss.Color("#5b5bd6"),
		Secondary:  lipgloss.Color("#00a2c7"),
		Foreground: lipgloss.Color("#e8e8f0"),
		Muted:      lipgloss.Color("#8b8d98"),
		Background: lipgloss.Color("#18181f"),
		Surface:    lipgloss.Color("#2b2b36"),
		Success:    lipgloss.Color("#30a46c"),
		Warning:    lipgloss.Color("#ffb224"),
		Error:      lipgloss.Color("#e5484d"),
	},
	"echo-light": {
		Primary:    lipgloss.Color("#4747c2"),
		Secondary:  lipgloss.Color("#0078a1"),
		Foreground: lipgloss.Color("#1b1b24"),
		Muted:      lipgloss.Color("#6f7180"),
		Background: lipgloss.Color("#fbfbfd"),
		Surface:    lipgloss.Color("#e4e4ee"),
		Success:    lipgloss.Color("#218358"),
		Warning:    lipgloss.Color("#b36b00"),
		Error:      lipgloss.Color("#cd2b31"),
	},
	"echo-contrast": {
		Primary:    lipgloss.Color("#9d9dff"),
		Secondary:  lipgloss.Color("#4ce0ff"),
		Foreground: lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#b4b6c2"),
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#3c3c4a"),
		Success:    lipgloss.Color("#4cc38a"),
		Warning:    lipgloss.Color("#ffd166"),
		Error:      lipgloss.Color("#ff6369"),
	},
	"slate": {
		Primary:    lipgloss.Color("#8da4bf"),
		Secondary:  lipgloss.Color("#9fb8ad"),
		Foreground: lipgloss.Color("#d4d8de"),
		Muted:      lipgloss.Color("#6b7280"),
		Background: lipgloss.Color("#1c1f24"),
		Surface:    lipgloss.Color("#30353d"),
		Success:    lipgloss.Color("#8fbf8f"),
		Warning:    lipgloss.Color("#d8b66a"),
		Error:      lipgloss.Color("#d47a7a"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
