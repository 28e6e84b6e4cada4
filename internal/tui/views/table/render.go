package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colonyops/echotable/internal/core/styles"
	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/tui/components"
)

const (
	cursorMarker = "›"
	cursorWidth  = 2
	pxPerCell    = 8
)

// Render draws the whole table for the controller's current state. It is
// a pure function of its inputs; rendering the same state twice yields the
// same string.
func Render(c *Controller, opts Options, width int) string {
	state := c.State()
	widths := columnWidths(state.Columns, c.Limits(), opts.Size, width)
	lead := coretable.LeadColumnIndex(state.Columns)

	var lines []string

	if opts.Title != "" {
		lines = append(lines, styles.TitleStyle.Render(opts.Title))
	}
	if opts.ShowSubtitle && opts.Subtitle != "" {
		lines = append(lines, styles.SubtitleStyle.Render(opts.Subtitle))
	}
	if opts.ShowHeaderActions {
		lines = append(lines, renderHeaderActions(state))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	header := renderHeader(c, widths, lead, opts.Size)
	lines = append(lines, header)
	lines = append(lines, styles.DividerStyle.Render(strings.Repeat("─", max(components.VisibleWidth(header), 1))))

	if len(state.Rows) == 0 {
		lines = append(lines, styles.SubtitleStyle.Render(components.Pad(cursorWidth)+"No rows"))
	}
	for i := range state.Rows {
		if i > 0 {
			for range opts.Size.rowSpacing() {
				lines = append(lines, "")
			}
		}
		lines = append(lines, renderRow(c, i, widths, lead, opts.Size))
	}

	if opts.ShowPagination {
		lines = append(lines, "", RenderPagination(state.Pagination))
	}

	return strings.Join(lines, "\n")
}

func renderHeaderActions(state coretable.State) string {
	total := len(state.Rows)
	selected := 0
	for _, r := range state.Rows {
		if state.Selection.Has(r.ID) {
			selected++
		}
	}

	var summary string
	switch state.Status() {
	case coretable.StatusNone:
		summary = "No rows selected"
	case coretable.StatusAll:
		summary = fmt.Sprintf("All %d rows selected", total)
	default:
		summary = fmt.Sprintf("%d of %d selected", selected, total)
	}

	hint := "a select all"
	if state.Status() == coretable.StatusAll {
		hint = "a clear selection"
	}
	return styles.SummaryStyle.Render(summary) + styles.HelpStyle.Render("  ·  "+hint)
}

func renderHeader(c *Controller, widths []int, lead int, size Size) string {
	state := c.State()
	_, focusCol := c.Cursor()

	var b strings.Builder
	b.WriteString(components.Pad(cursorWidth))
	if lead < 0 {
		b.WriteString(components.Checkbox(checkState(state.Status())))
		b.WriteString(components.Pad(size.gap()))
	}

	for i, col := range state.Columns {
		title := col.Title + sortIndicator(col)
		style := styles.HeaderCellStyle
		if i == focusCol {
			style = styles.HeaderActiveStyle
		}
		cell := style.Render(title)
		if i == lead {
			cell = components.Checkbox(checkState(state.Status())) + " " + cell
		}
		b.WriteString(components.Fit(cell, widths[i]))
		if i < len(state.Columns)-1 {
			b.WriteString(components.Pad(size.gap()))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func renderRow(c *Controller, idx int, widths []int, lead int, size Size) string {
	state := c.State()
	row := state.Rows[idx]
	cursorRow, focusCol := c.Cursor()
	selected := state.Selection.Has(row.ID)
	isCursor := idx == cursorRow

	var b strings.Builder
	if isCursor {
		b.WriteString(styles.ColumnCursorStyle.Render(cursorMarker) + " ")
	} else {
		b.WriteString(components.Pad(cursorWidth))
	}
	if lead < 0 {
		b.WriteString(components.Checkbox(boolCheck(selected)))
		b.WriteString(components.Pad(size.gap()))
	}

	for i, col := range state.Columns {
		focus := noFocus
		if isCursor && i == focusCol && isActionColumn(col) {
			focus = cellFocus{action: c.FocusedAction()}
		}
		cell := renderContent(coretable.Decode(col, row, c.Limits()), focus)
		if i == lead {
			cell = components.Checkbox(boolCheck(selected)) + " " + cell
		}
		b.WriteString(components.Fit(cell, widths[i]))
		if i < len(state.Columns)-1 {
			b.WriteString(components.Pad(size.gap()))
		}
	}

	line := strings.TrimRight(b.String(), " ")
	if selected {
		line = styles.RowSelectedStyle.Render(line)
	}
	return line
}

// RenderPagination draws the footer: previous, the page window, next.
func RenderPagination(p coretable.Pagination) string {
	p = p.Normalize()

	prev := styles.PageNavStyle.Render("‹ prev")
	if p.CurrentPage == 1 {
		prev = styles.PageNavOffStyle.Render("‹ prev")
	}
	next := styles.PageNavStyle.Render("next ›")
	if p.CurrentPage == p.TotalPages {
		next = styles.PageNavOffStyle.Render("next ›")
	}

	window := p.Window()
	tokens := make([]string, len(window))
	for i, t := range window {
		switch {
		case t.IsEllipsis():
			tokens[i] = styles.PageEllipsisStyle.Render(t.String())
		case t.Page == p.CurrentPage:
			tokens[i] = styles.PageCurrentStyle.Render("[" + strconv.Itoa(t.Page) + "]")
		default:
			tokens[i] = styles.PageStyle.Render(t.String())
		}
	}

	return components.Pad(cursorWidth) + prev + "  " + strings.Join(tokens, " ") + "  " + next
}

func sortIndicator(col coretable.Column) string {
	if !col.Sortable {
		return ""
	}
	switch col.SortDirection {
	case coretable.SortAscending:
		return styles.SortIndicator.Render(" ▲")
	case coretable.SortDescending:
		return styles.SortIndicator.Render(" ▼")
	default:
		return styles.HeaderCellStyle.Render(" ↕")
	}
}

func checkState(s coretable.Status) components.CheckState {
	switch s {
	case coretable.StatusAll:
		return components.Checked
	case coretable.StatusSome:
		return components.Indeterminate
	default:
		return components.Unchecked
	}
}

func boolCheck(b bool) components.CheckState {
	if b {
		return components.Checked
	}
	return components.Unchecked
}

// columnWidths resolves each column's width. Width accepts a cell count
// ("20"), pixels ("160px", eight pixels per cell) or a share of the
// terminal width ("25%"); anything else falls back
// to the content type's natural width. The lead column gets room for its
// checkbox on top.
func columnWidths(cols []coretable.Column, limits coretable.Limits, size Size, total int) []int {
	widths := make([]int, len(cols))
	for i, col := range cols {
		w := parseWidth(col.Width, total)
		if w <= 0 {
			w = max(naturalWidth(col, limits, size), len([]rune(col.Title))+2)
		}
		if col.IsLeadColumn {
			w += components.CheckboxWidth + 1
		}
		widths[i] = w
	}
	return widths
}

func parseWidth(s string, total int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(pct)
		if err != nil || total <= 0 {
			return 0
		}
		return total * min(max(n, 0), 100) / 100
	}
	if px, ok := strings.CutSuffix(s, "px"); ok {
		n, err := strconv.Atoi(px)
		if err != nil {
			return 0
		}
		return max(n/pxPerCell, 0)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return max(n, 0)
}
