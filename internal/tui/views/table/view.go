package table

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/tui/components"
)

// Gesture holds the callbacks produced by one key press for the owner of
// the data.
type Gesture struct {
	Phase     coretable.Phase
	Emissions []coretable.Emission
}

// View is the Bubble Tea sub-model for an interactive table.
type View struct {
	ctrl          *Controller
	opts          Options
	keys          KeyMap
	help          help.Model
	modal         *components.Modal
	pendingDelete string
	pending       []Gesture
	width         int
	height        int
}

// New creates a table view over one page of rows.
func New(cols []coretable.Column, rows []coretable.Row, p coretable.Pagination, opts Options) View {
	return View{
		ctrl: NewController(cols, rows, p, opts.Limits),
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (v View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the table view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		if v.modal != nil {
			return v.handleModalKey(msg)
		}
		return v.handleKey(msg)
	}
	return v, nil
}

// View renders the table, the help line and any open modal.
func (v View) View() string {
	out := Render(v.ctrl, v.opts, v.width) + "\n\n" + v.help.View(v.keys)
	if v.modal != nil {
		return v.modal.Overlay(out, v.width, v.height)
	}
	return out
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
}

// SetRows swaps in a new page of rows from the caller.
func (v *View) SetRows(rows []coretable.Row) {
	v.ctrl.SetRows(rows)
}

// SetPagination replaces the pagination state.
func (v *View) SetPagination(p coretable.Pagination) {
	v.ctrl.SetPagination(p)
}

// Controller exposes the underlying controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// TakeEvents returns the callbacks queued by Update and clears the queue.
// The owner drains it after every Update so each gesture is settled before
// the next message is handled.
func (v *View) TakeEvents() []Gesture {
	out := v.pending
	v.pending = nil
	return out
}

// HasModal returns true while the delete confirmation is open.
func (v View) HasModal() bool {
	return v.modal != nil
}

func (v View) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	c := v.ctrl

	switch {
	case key.Matches(msg, v.keys.Up):
		c.MoveUp()
	case key.Matches(msg, v.keys.Down):
		c.MoveDown()
	case key.Matches(msg, v.keys.Left):
		c.MoveLeft()
	case key.Matches(msg, v.keys.Right):
		c.MoveRight()
	case key.Matches(msg, v.keys.Select):
		return v.emit(coretable.PhaseRowToggling, c.ToggleCurrentRow())
	case key.Matches(msg, v.keys.SelectAll):
		return v.emit(coretable.PhaseBulkToggling, c.ToggleAll())
	case key.Matches(msg, v.keys.Sort):
		return v.emit(coretable.PhaseSorting, c.SortCurrentColumn())
	case key.Matches(msg, v.keys.NextPage):
		return v.emit(coretable.PhasePageChanging, c.NextPage())
	case key.Matches(msg, v.keys.PrevPage):
		return v.emit(coretable.PhasePageChanging, c.PrevPage())
	case key.Matches(msg, v.keys.FirstPage):
		return v.emit(coretable.PhasePageChanging, c.FirstPage())
	case key.Matches(msg, v.keys.LastPage):
		return v.emit(coretable.PhasePageChanging, c.LastPage())
	case key.Matches(msg, v.keys.Edit):
		if rowID, ok := c.RowAction(coretable.ActionEdit); ok {
			return v.emit(coretable.PhaseActing, c.Invoke(rowID, coretable.ActionEdit))
		}
	case key.Matches(msg, v.keys.Delete):
		if rowID, ok := c.RowAction(coretable.ActionDelete); ok {
			return v.requestDelete(rowID)
		}
	case key.Matches(msg, v.keys.NextFocus):
		c.CycleAction()
	case key.Matches(msg, v.keys.Activate):
		return v.activate()
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	}
	return v, nil
}

func (v View) activate() (View, tea.Cmd) {
	action, ok := v.ctrl.Focused()
	if !ok {
		return v, nil
	}
	row, ok := v.ctrl.CurrentRow()
	if !ok {
		return v, nil
	}
	if action == coretable.ActionDelete {
		return v.requestDelete(row.ID)
	}
	return v.emit(coretable.PhaseActing, v.ctrl.Invoke(row.ID, action))
}

func (v View) requestDelete(rowID string) (View, tea.Cmd) {
	if !v.opts.ConfirmDelete {
		return v.emit(coretable.PhaseActing, v.ctrl.Invoke(rowID, coretable.ActionDelete))
	}
	modal := components.NewModal("Delete row", fmt.Sprintf("Delete %q? This cannot be undone.", rowID))
	v.modal = &modal
	v.pendingDelete = rowID
	return v, nil
}

func (v View) handleModalKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		v.modal.ToggleSelection()
		return v, nil
	case "y", "Y":
		return v.closeModal(true)
	case "enter":
		return v.closeModal(v.modal.ConfirmSelected())
	case "esc", "n", "N", "q":
		return v.closeModal(false)
	}
	return v, nil
}

func (v View) closeModal(confirmed bool) (View, tea.Cmd) {
	rowID := v.pendingDelete
	v.modal = nil
	v.pendingDelete = ""
	if !confirmed {
		return v, nil
	}
	return v.emit(coretable.PhaseActing, v.ctrl.Invoke(rowID, coretable.ActionDelete))
}

func (v View) emit(phase coretable.Phase, out []coretable.Emission) (View, tea.Cmd) {
	if len(out) > 0 {
		v.pending = append(v.pending, Gesture{Phase: phase, Emissions: out})
	}
	return v, nil
}
