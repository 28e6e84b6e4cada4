package components

import (
	"strings"

	"github.com/colonyops/echotable/internal/core/styles"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
)

// Stars renders filled glyphs followed by empty ones.
func Stars(filled, empty int) string {
	filled, empty = max(filled, 0), max(empty, 0)
	return styles.StarFilledStyle.Render(strings.Repeat(starFilled, filled)) +
		styles.StarEmptyStyle.Render(strings.Repeat(starEmpty, empty))
}
