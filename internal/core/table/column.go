package table

import (
	"fmt"
	"strings"
)

// ContentType is the discriminant that decides how a column's cells render.
type ContentType int

const (
	ContentUnknown ContentType = iota
	ContentTitle
	ContentText
	ContentMultiTag
	ContentLinks
	ContentRating
	ContentGroupAvatars
	ContentProgressBar
	ContentButtonGroup
)

var contentTypeNames = map[ContentType]string{
	ContentTitle:        "title",
	ContentText:         "text",
	ContentMultiTag:     "multi-tag",
	ContentLinks:        "links",
	ContentRating:       "rating",
	ContentGroupAvatars: "group-avatars",
	ContentProgressBar:  "progress-bar",
	ContentButtonGroup:  "button-group",
}

func (c ContentType) String() string {
	if name, ok := contentTypeNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseContentType maps a name such as "multi-tag" or "MultiTag" to its
// ContentType. Unrecognized names yield ContentUnknown, which renders as
// plain text.
func ParseContentType(s string) ContentType {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for ct, name := range contentTypeNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return ct
		}
	}
	return ContentUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (c ContentType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContentType) UnmarshalText(b []byte) error {
	*c = ParseContentType(string(b))
	return nil
}

// SortDirection is the direction a column is currently sorted in.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// ParseSortDirection accepts asc/ascending and desc/descending. Anything else
// is SortNone.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return SortAscending
	case "desc", "descending":
		return SortDescending
	default:
		return SortNone
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d SortDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *SortDirection) UnmarshalText(b []byte) error {
	*d = ParseSortDirection(string(b))
	return nil
}

// Column describes one table column. Columns are supplied by the caller and
// treated as read-only; the orchestrator keeps its own copy of the sort
// directions.
type Column struct {
	Key           string        `yaml:"key" json:"key"`
	Title         string        `yaml:"title" json:"title"`
	ContentType   ContentType   `yaml:"content_type" json:"content_type"`
	IsLeadColumn  bool          `yaml:"lead" json:"lead,omitempty"`
	Sortable      bool          `yaml:"sortable" json:"sortable,omitempty"`
	SortDirection SortDirection `yaml:"sort_direction" json:"sort_direction"`
	Width         string        `yaml:"width" json:"width,omitempty"`
	// MaxVisible caps the chips or avatars a multi-tag or group-avatars
	// cell shows before collapsing the rest into a "+N" chip. Zero means
	// the table-wide default.
	MaxVisible int `yaml:"max_visible" json:"max_visible,omitempty"`
}

// LeadColumnIndex returns the index of the first lead column, or -1.
func LeadColumnIndex(cols []Column) int {
	for i, c := range cols {
		if c.IsLeadColumn {
			return i
		}
	}
	return -1
}

// ValidateColumns reports duplicate or empty keys and more than one lead
// column. The rest of the package tolerates invalid columns; this exists
// for loaders that want to reject bad input early.
func ValidateColumns(cols []Column) error {
	seen := make(map[string]bool, len(cols))
	leads := 0
	for i, c := range cols {
		if c.Key == "" {
			return fmt.Errorf("column %d: key is required", i)
		}
		if seen[c.Key] {
			return fmt.Errorf("column %d: duplicate key %q", i, c.Key)
		}
		seen[c.Key] = true
		if c.IsLeadColumn {
			leads++
		}
	}
	if leads > 1 {
		return fmt.Errorf("at most one lead column is allowed, got %d", leads)
	}
	return nil
}
