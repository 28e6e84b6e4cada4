package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// RatingMax is the number of glyphs a rating cell always renders.
	RatingMax = 5
	// ProgressMax is the upper bound of a progress cell percentage.
	ProgressMax = 100
)

// Action is a row-level action offered by links and button-group cells.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// DefaultActions is used when a links or button-group cell names none.
var DefaultActions = []Action{ActionEdit, ActionDelete}

// Limits carries the table-wide defaults for overflow-collapsing cells.
type Limits struct {
	MaxTags    int
	MaxAvatars int
}

// DefaultLimits matches the sample configuration of the design system.
func DefaultLimits() Limits {
	return Limits{MaxTags: 2, MaxAvatars: 3}
}

// Content is the decoded payload of one cell. Exactly one concrete type
// exists per ContentType, plus RawContent for anything unrecognized, so a
// cell can never be configured as two kinds at once.
type Content interface {
	Kind() ContentType
}

type TitleContent struct {
	Text string
	Lead bool // rendered next to the row checkbox
}

type TextContent struct {
	Text string
}

type TagsContent struct {
	Shown    []string
	Overflow int
}

type LinksContent struct {
	RowID   string
	Actions []Action
}

type RatingContent struct {
	Filled int
}

type AvatarsContent struct {
	Shown    []string
	Overflow int
}

type ProgressContent struct {
	Percent int
}

type ButtonsContent struct {
	RowID   string
	Actions []Action
}

// RawContent is the fallback for unknown content types: the value printed
// as text. An absent value is an empty RawContent.
type RawContent struct {
	Text string
}

func (TitleContent) Kind() ContentType    { return ContentTitle }
func (TextContent) Kind() ContentType     { return ContentText }
func (TagsContent) Kind() ContentType     { return ContentMultiTag }
func (LinksContent) Kind() ContentType    { return ContentLinks }
func (RatingContent) Kind() ContentType   { return ContentRating }
func (AvatarsContent) Kind() ContentType  { return ContentGroupAvatars }
func (ProgressContent) Kind() ContentType { return ContentProgressBar }
func (ButtonsContent) Kind() ContentType  { return ContentButtonGroup }
func (RawContent) Kind() ContentType      { return ContentUnknown }

// Unfilled returns the number of empty glyphs.
func (r RatingContent) Unfilled() int {
	return RatingMax - r.Filled
}

// Decode turns the row's value for col into typed content. It never fails:
// missing or mis-shaped values decode to the variant's empty form and
// numeric values are clamped into range.
func Decode(col Column, row Row, limits Limits) Content {
	v := row.Value(col.Key)

	switch col.ContentType {
	case ContentTitle:
		return TitleContent{Text: toString(v), Lead: col.IsLeadColumn}
	case ContentText:
		return TextContent{Text: toString(v)}
	case ContentMultiTag:
		shown, overflow := collapse(toStrings(v), visibleLimit(col.MaxVisible, limits.MaxTags))
		return TagsContent{Shown: shown, Overflow: overflow}
	case ContentLinks:
		return LinksContent{RowID: row.ID, Actions: toActions(v)}
	case ContentRating:
		n, _ := toInt(v)
		return RatingContent{Filled: clamp(n, 0, RatingMax)}
	case ContentGroupAvatars:
		shown, overflow := collapse(toAvatarNames(v), visibleLimit(col.MaxVisible, limits.MaxAvatars))
		return AvatarsContent{Shown: shown, Overflow: overflow}
	case ContentProgressBar:
		n, _ := toInt(v)
		return ProgressContent{Percent: clamp(n, 0, ProgressMax)}
	case ContentButtonGroup:
		return ButtonsContent{RowID: row.ID, Actions: toActions(v)}
	default:
		return RawContent{Text: toString(v)}
	}
}

func visibleLimit(column, table int) int {
	if column > 0 {
		return column
	}
	return max(table, 0)
}

// collapse keeps the first limit items and reports how many were hidden.
func collapse(items []string, limit int) ([]string, int) {
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case []any, []string:
		return strings.Join(toStrings(t), ", ")
	default:
		return fmt.Sprint(t)
	}
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := toString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return []string{toString(t)}
	}
}

// toAvatarNames accepts plain names or maps carrying a "name" key.
func toAvatarNames(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return toStrings(v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if name := toString(m["name"]); name != "" {
				out = append(out, name)
			}
			continue
		}
		if s := toString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(min(uint64(t), math.MaxInt32)), true
	case uint64:
		return int(min(t, math.MaxInt32)), true
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(t, "%")))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(clampFloat(f, math.MinInt32, math.MaxInt32))), true
}

func clampFloat(f, lo, hi float64) float64 {
	return math.Min(math.Max(f, lo), hi)
}

func toActions(v any) []Action {
	names := toStrings(v)
	if len(names) == 0 {
		return DefaultActions
	}
	out := make([]Action, 0, len(names))
	for _, name := range names {
		switch a := Action(strings.ToLower(strings.TrimSpace(name))); a {
		case ActionEdit, ActionDelete:
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return DefaultActions
	}
	return out
}
