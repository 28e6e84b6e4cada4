package components

import "github.com/colonyops/echotable/internal/core/styles"

// CheckState is the visual state of a checkbox.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

// CheckboxWidth is the printable width of every checkbox rendering.
const CheckboxWidth = 3

// Checkbox renders a tri-state checkbox.
func Checkbox(state CheckState) string {
	switch state {
	case Checked:
		return styles.CheckboxOnStyle.Render("[x]")
	case Indeterminate:
		return styles.CheckboxOnStyle.Render("[-]")
	default:
		return styles.CheckboxOffStyle.Render("[ ]")
	}
}
