package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// maxSharedPad bounds the blank run that Pad slices from.
const maxSharedPad = 256

var blanks = strings.Repeat(" ", maxSharedPad)

// Pad returns n spaces. Widths up to maxSharedPad share one backing string.
func Pad(n int) string {
	switch {
	case n <= 0:
		return ""
	case n <= maxSharedPad:
		return blanks[:n]
	default:
		return strings.Repeat(" ", n)
	}
}

// Fit truncates s to width printable cells (ending in an ellipsis when cut)
// and right-pads it to exactly width. ANSI sequences are preserved and do
// not count towards the width.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return s + Pad(width-ansi.StringWidth(s))
}

// VisibleWidth returns the printable width of s, ignoring ANSI sequences.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}
