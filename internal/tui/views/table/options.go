package table

import (
	"strings"

	coretable "github.com/colonyops/echotable/internal/core/table"
)

// Size is the display-size variant. It only affects spacing and default
// column widths.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ParseSize returns the size for s, defaulting to medium.
func ParseSize(s string) Size {
	switch Size(strings.ToLower(s)) {
	case SizeSmall:
		return SizeSmall
	case SizeLarge:
		return SizeLarge
	default:
		return SizeMedium
	}
}

// gap is the number of spaces between columns.
func (s Size) gap() int {
	switch s {
	case SizeSmall:
		return 1
	case SizeLarge:
		return 4
	default:
		return 2
	}
}

// cellWidth is the default width of a text column.
func (s Size) cellWidth() int {
	switch s {
	case SizeSmall:
		return 12
	case SizeLarge:
		return 22
	default:
		return 16
	}
}

// rowSpacing is the number of blank lines between body rows.
func (s Size) rowSpacing() int {
	if s == SizeLarge {
		return 1
	}
	return 0
}

// Options are the construction inputs that do not change table state.
type Options struct {
	Title             string
	Subtitle          string
	Size              Size
	ShowHeaderActions bool
	ShowPagination    bool
	ShowSubtitle      bool
	ConfirmDelete     bool
	Limits            coretable.Limits
}

// DefaultOptions shows every optional section.
func DefaultOptions() Options {
	return Options{
		Size:              SizeMedium,
		ShowHeaderActions: true,
		ShowPagination:    true,
		ShowSubtitle:      true,
		ConfirmDelete:     true,
		Limits:            coretable.DefaultLimits(),
	}
}
