package components

import (
	"strings"

	"github.com/colonyops/echotable/internal/core/styles"
)

// Control describes one clickable row action.
type Control struct {
	Label   string
	Danger  bool
	Focused bool
}

// Button renders a bracketed action button.
func Button(c Control) string {
	style := styles.ButtonStyle
	if c.Danger {
		style = styles.ButtonDanger
	}
	if c.Focused {
		style = style.Bold(true).Reverse(true)
	}
	return style.Render("[" + c.Label + "]")
}

// Link renders an underlined text action.
func Link(c Control) string {
	style := styles.LinkStyle
	if c.Danger {
		style = styles.LinkDangerStyle
	}
	if c.Focused {
		style = style.Bold(true).Reverse(true)
	}
	return style.Render(c.Label)
}

// JoinControls joins rendered controls with sep.
func JoinControls(rendered []string, sep string) string {
	return strings.Join(rendered, sep)
}
