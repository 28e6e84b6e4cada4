package table

import (
	coretable "github.com/colonyops/echotable/internal/core/table"
)

// Controller tracks the cursor and feeds gestures through the core reducer.
// It contains pure data logic with no Bubble Tea dependencies.
type Controller struct {
	state  coretable.State
	limits coretable.Limits
	row    int // cursor row within the current page
	col    int // focused column
	action int // focused control within an action cell
}

// NewController creates a controller for one page of rows.
func NewController(cols []coretable.Column, rows []coretable.Row, p coretable.Pagination, limits coretable.Limits) *Controller {
	c := &Controller{
		state:  coretable.NewState(cols, rows, p),
		limits: limits,
	}
	c.col = max(coretable.LeadColumnIndex(cols), 0)
	return c
}

// State returns the current table state.
func (c *Controller) State() coretable.State {
	return c.state
}

// Limits returns the overflow limits used for decoding cells.
func (c *Controller) Limits() coretable.Limits {
	return c.limits
}

// Apply reduces one event into the state and returns the emissions.
func (c *Controller) Apply(ev coretable.Event) []coretable.Emission {
	next, out := coretable.Reduce(c.state, ev)
	c.state = next
	c.clamp()
	return out
}

// SetRows swaps in rows supplied by the caller.
func (c *Controller) SetRows(rows []coretable.Row) {
	c.state = c.state.WithRows(rows)
	c.clamp()
}

// SetPagination replaces the pagination state supplied by the caller.
func (c *Controller) SetPagination(p coretable.Pagination) {
	c.state = c.state.WithPagination(p)
}

// Cursor returns the cursor row and focused column.
func (c *Controller) Cursor() (row, col int) {
	return c.row, c.col
}

// FocusedAction returns the index of the focused control in action cells.
func (c *Controller) FocusedAction() int {
	return c.action
}

// MoveUp moves the cursor up one row.
func (c *Controller) MoveUp() {
	if c.row > 0 {
		c.row--
	}
}

// MoveDown moves the cursor down one row.
func (c *Controller) MoveDown() {
	if c.row < len(c.state.Rows)-1 {
		c.row++
	}
}

// MoveLeft focuses the previous column.
func (c *Controller) MoveLeft() {
	if c.col > 0 {
		c.col--
		c.action = 0
	}
}

// MoveRight focuses the next column.
func (c *Controller) MoveRight() {
	if c.col < len(c.state.Columns)-1 {
		c.col++
		c.action = 0
	}
}

// CurrentRow returns the row under the cursor.
func (c *Controller) CurrentRow() (coretable.Row, bool) {
	if c.row < 0 || c.row >= len(c.state.Rows) {
		return coretable.Row{}, false
	}
	return c.state.Rows[c.row], true
}

// CurrentColumn returns the focused column.
func (c *Controller) CurrentColumn() (coretable.Column, bool) {
	if c.col < 0 || c.col >= len(c.state.Columns) {
		return coretable.Column{}, false
	}
	return c.state.Columns[c.col], true
}

// ToggleCurrentRow flips the selection of the row under the cursor.
func (c *Controller) ToggleCurrentRow() []coretable.Emission {
	row, ok := c.CurrentRow()
	if !ok {
		return nil
	}
	return c.Apply(coretable.ToggleRow{RowID: row.ID})
}

// ToggleAll is the header checkbox.
func (c *Controller) ToggleAll() []coretable.Emission {
	return c.Apply(coretable.ToggleAll{})
}

// SortCurrentColumn toggles the sort direction of the focused column.
func (c *Controller) SortCurrentColumn() []coretable.Emission {
	col, ok := c.CurrentColumn()
	if !ok {
		return nil
	}
	return c.Apply(coretable.ToggleSortColumn{ColumnKey: col.Key})
}

// GoToPage requests an absolute page.
func (c *Controller) GoToPage(page int) []coretable.Emission {
	return c.Apply(coretable.ChangePage{Page: page})
}

// NextPage requests the page after the current one.
func (c *Controller) NextPage() []coretable.Emission {
	return c.GoToPage(c.state.Pagination.CurrentPage + 1)
}

// PrevPage requests the page before the current one.
func (c *Controller) PrevPage() []coretable.Emission {
	return c.GoToPage(c.state.Pagination.CurrentPage - 1)
}

// FirstPage requests page 1.
func (c *Controller) FirstPage() []coretable.Emission {
	return c.GoToPage(1)
}

// LastPage requests the last page.
func (c *Controller) LastPage() []coretable.Emission {
	return c.GoToPage(c.state.Pagination.TotalPages)
}

// CycleAction moves focus to the next control of the focused action cell.
func (c *Controller) CycleAction() {
	actions := c.currentActions()
	if len(actions) == 0 {
		return
	}
	c.action = (c.action + 1) % len(actions)
}

// Focused returns the action under keyboard focus, if the focused column
// is an action column.
func (c *Controller) Focused() (coretable.Action, bool) {
	actions := c.currentActions()
	if c.action < 0 || c.action >= len(actions) {
		return "", false
	}
	return actions[c.action], true
}

// RowAction returns the current row's id if some action cell in the row
// offers a. Keyboard shortcuts use it so e/d work from any column.
func (c *Controller) RowAction(a coretable.Action) (string, bool) {
	row, ok := c.CurrentRow()
	if !ok {
		return "", false
	}
	for _, col := range c.state.Columns {
		if !isActionColumn(col) {
			continue
		}
		for _, offered := range cellActions(coretable.Decode(col, row, c.limits)) {
			if offered == a {
				return row.ID, true
			}
		}
	}
	return "", false
}

// Invoke runs action a against rowID.
func (c *Controller) Invoke(rowID string, a coretable.Action) []coretable.Emission {
	return c.Apply(coretable.InvokeAction{RowID: rowID, Action: a})
}

func (c *Controller) currentActions() []coretable.Action {
	col, ok := c.CurrentColumn()
	if !ok || !isActionColumn(col) {
		return nil
	}
	row, ok := c.CurrentRow()
	if !ok {
		return nil
	}
	return cellActions(coretable.Decode(col, row, c.limits))
}

func (c *Controller) clamp() {
	c.row = min(c.row, len(c.state.Rows)-1)
	c.row = max(c.row, 0)
	c.col = min(c.col, len(c.state.Columns)-1)
	c.col = max(c.col, 0)
	if n := len(c.currentActions()); c.action >= n {
		c.action = 0
	}
}
