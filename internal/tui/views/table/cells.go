package table

import (
	"github.com/colonyops/echotable/internal/core/styles"
	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/tui/components"
)

var actionLabels = map[coretable.Action]string{
	coretable.ActionEdit:   "Edit",
	coretable.ActionDelete: "Delete",
}

// cellFocus marks the action control that has keyboard focus. Index -1
// means no control in this cell is focused.
type cellFocus struct {
	action int
}

var noFocus = cellFocus{action: -1}

// RenderCell renders one cell. Content decoding is done by the core
// package; this only maps each content variant onto a widget.
func RenderCell(col coretable.Column, row coretable.Row, limits coretable.Limits) string {
	return renderContent(coretable.Decode(col, row, limits), noFocus)
}

func renderContent(content coretable.Content, focus cellFocus) string {
	switch c := content.(type) {
	case coretable.TitleContent:
		if c.Lead {
			return styles.LeadCellStyle.Render(c.Text)
		}
		return styles.TitleCellStyle.Render(c.Text)
	case coretable.TextContent:
		return styles.CellStyle.Render(c.Text)
	case coretable.TagsContent:
		return components.TagList(c.Shown, c.Overflow)
	case coretable.LinksContent:
		return renderActions(c.Actions, focus, components.Link)
	case coretable.RatingContent:
		return components.Stars(c.Filled, c.Unfilled())
	case coretable.AvatarsContent:
		return components.AvatarGroup(c.Shown, c.Overflow)
	case coretable.ProgressContent:
		return components.ProgressCircles(c.Percent)
	case coretable.ButtonsContent:
		return renderActions(c.Actions, focus, components.Button)
	case coretable.RawContent:
		return styles.CellStyle.Render(c.Text)
	default:
		return ""
	}
}

func renderActions(actions []coretable.Action, focus cellFocus, widget func(components.Control) string) string {
	rendered := make([]string, len(actions))
	for i, a := range actions {
		rendered[i] = widget(components.Control{
			Label:   actionLabels[a],
			Danger:  a == coretable.ActionDelete,
			Focused: i == focus.action,
		})
	}
	return components.JoinControls(rendered, " ")
}

// cellActions returns the actions offered by content, or nil when it is not
// an action cell.
func cellActions(content coretable.Content) []coretable.Action {
	switch c := content.(type) {
	case coretable.LinksContent:
		return c.Actions
	case coretable.ButtonsContent:
		return c.Actions
	default:
		return nil
	}
}

// isActionColumn reports whether col renders row actions.
func isActionColumn(col coretable.Column) bool {
	return col.ContentType == coretable.ContentLinks || col.ContentType == coretable.ContentButtonGroup
}

// naturalWidth is the width a column wants when it has no explicit width.
func naturalWidth(col coretable.Column, limits coretable.Limits, size Size) int {
	switch col.ContentType {
	case coretable.ContentRating:
		return coretable.RatingMax
	case coretable.ContentProgressBar:
		return components.Milestones + 5
	case coretable.ContentLinks:
		return len("Edit Delete")
	case coretable.ContentButtonGroup:
		return len("[Edit] [Delete]")
	case coretable.ContentGroupAvatars:
		n := limits.MaxAvatars
		if col.MaxVisible > 0 {
			n = col.MaxVisible
		}
		return max(n*3+3, len(col.Title))
	default:
		return size.cellWidth()
	}
}
