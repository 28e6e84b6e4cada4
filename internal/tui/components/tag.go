package components

import (
	"strconv"
	"strings"

	"github.com/colonyops/echotable/internal/core/styles"
)

// Tag renders a single chip.
func Tag(label string) string {
	return styles.TagStyle.Render("#" + label)
}

// OverflowChip renders the "+N" chip for hidden items. It renders nothing
// for n <= 0.
func OverflowChip(n int) string {
	if n <= 0 {
		return ""
	}
	return styles.TagOverflowStyle.Render("+" + strconv.Itoa(n))
}

// TagList renders chips separated by spaces, followed by the overflow chip.
func TagList(labels []string, overflow int) string {
	parts := make([]string, 0, len(labels)+1)
	for _, l := range labels {
		parts = append(parts, Tag(l))
	}
	if chip := OverflowChip(overflow); chip != "" {
		parts = append(parts, chip)
	}
	return strings.Join(parts, " ")
}
