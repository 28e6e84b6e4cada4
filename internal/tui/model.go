// Package tui hosts the root Bubble Tea model. The model owns a dataset and
// answers the table's emitted requests by resorting, paging and deleting
// rows.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/echotable/internal/core/logging"
	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/data/dataset"
	tableview "github.com/colonyops/echotable/internal/tui/views/table"
)

// Key constants for event handling.
const (
	keyCtrlC = "ctrl+c"
	keyQuit  = "q"
	keyEsc   = "esc"
)

// EventSink receives one record per emitted table event.
type EventSink interface {
	Write(obj any) error
}

// Options configures the TUI behavior.
type Options struct {
	PageSize int
	Table    tableview.Options
	Events   EventSink // optional
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx      context.Context
	log      zerolog.Logger
	ds       *dataset.Dataset
	store    *dataset.Store
	selected map[string]bool // caller-side selection, survives paging
	page     int
	table    tableview.View
	toasts   *ToastController
	events   EventSink
	now      func() time.Time
	width    int
	height   int
}

// New creates the root model for ds. The dataset's initial sort, if any, is
// applied before the first page is cut.
func New(ctx context.Context, ds *dataset.Dataset, opts Options) Model {
	store := dataset.NewStore(ds.Rows, opts.PageSize)
	if req, ok := ds.InitialSort(); ok {
		store.Sort(req)
	}

	selected := make(map[string]bool)
	for _, r := range ds.Rows {
		if r.Selected {
			selected[r.ID] = true
		}
	}

	tableOpts := opts.Table
	if tableOpts.Title == "" {
		tableOpts.Title = ds.Title
	}
	if tableOpts.Subtitle == "" {
		tableOpts.Subtitle = ds.Subtitle
	}

	m := Model{
		ctx:      logging.WithDataset(ctx, ds.Title),
		log:      logging.Component("table"),
		ds:       ds,
		store:    store,
		selected: selected,
		page:     1,
		toasts:   NewToastController(),
		events:   opts.Events,
		now:      time.Now,
	}
	m.table = tableview.New(ds.Columns, m.pageRows(), store.Pagination(1), tableOpts)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.ticking = false
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	out := m.table.View()
	if m.toasts.HasToasts() {
		out += "\n\n" + m.toasts.View()
	}
	return out
}

// Store exposes the rows owned by the model.
func (m Model) Store() *dataset.Store {
	return m.store
}

// Table exposes the table view.
func (m Model) Table() tableview.View {
	return m.table
}

// Page returns the current page number.
func (m Model) Page() int {
	return m.page
}

// Toasts returns the active toast messages.
func (m Model) Toasts() []string {
	return m.toasts.Messages()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.table.HasModal() {
		switch msg.String() {
		case keyCtrlC, keyQuit:
			return m, tea.Quit
		case keyEsc:
			if m.toasts.HasToasts() {
				m.toasts.Dismiss()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	for _, ev := range m.table.TakeEvents() {
		m.handleEvents(ev)
	}
	tick := m.ensureToastTick()
	return m, tea.Batch(cmd, tick)
}

func (m *Model) handleEvents(msg tableview.Gesture) {
	for _, em := range msg.Emissions {
		m.record(msg.Phase, em)
	}

	coretable.Handlers{
		OnSort:       m.onSort,
		OnRowSelect:  m.onRowSelect,
		OnSelectAll:  m.onSelectAll,
		OnPageChange: m.onPageChange,
		OnEdit:       m.onEdit,
		OnDelete:     m.onDelete,
	}.Dispatch(msg.Emissions...)
}

func (m *Model) onSort(columnKey string, dir coretable.SortDirection) {
	m.store.Sort(coretable.SortRequest{ColumnKey: columnKey, Direction: dir})
	m.refresh()

	title := columnKey
	if col, _, ok := m.table.Controller().State().Column(columnKey); ok && col.Title != "" {
		title = col.Title
	}
	m.toasts.Push(ToastInfo, fmt.Sprintf("Sorted by %s (%s)", title, dir))
}

func (m *Model) onRowSelect(rowID string, selected bool) {
	m.setSelected(rowID, selected)
}

func (m *Model) onSelectAll(selected bool) {
	for _, r := range m.table.Controller().State().Rows {
		m.setSelected(r.ID, selected)
	}
}

func (m *Model) onPageChange(page int) {
	m.page = page
	m.refresh()
}

func (m *Model) onEdit(rowID string) {
	m.toasts.Push(ToastInfo, fmt.Sprintf("Edit requested for %s", m.rowLabel(rowID)))
}

func (m *Model) onDelete(rowID string) {
	label := m.rowLabel(rowID)
	if !m.store.Delete(rowID) {
		m.toasts.Push(ToastWarning, fmt.Sprintf("Row %s no longer exists", rowID))
		return
	}
	delete(m.selected, rowID)
	m.refresh()
	m.toasts.Push(ToastInfo, fmt.Sprintf("Deleted %s", label))
}

func (m *Model) setSelected(rowID string, selected bool) {
	if selected {
		m.selected[rowID] = true
		return
	}
	delete(m.selected, rowID)
}

// refresh hands the current page back to the table, clamping the page
// number when deletes shrank the page count.
func (m *Model) refresh() {
	p := m.store.Pagination(m.page)
	m.page = p.CurrentPage
	m.table.SetPagination(p)
	m.table.SetRows(m.pageRows())
}

// pageRows returns the current page with Selected reflecting the
// caller-side selection, so the table restores it when the row set changes.
func (m Model) pageRows() []coretable.Row {
	rows := m.store.Page(m.page)
	for i := range rows {
		rows[i].Selected = m.selected[rows[i].ID]
	}
	return rows
}

func (m Model) rowLabel(rowID string) string {
	r, ok := m.store.Row(rowID)
	if !ok {
		return rowID
	}
	for _, c := range m.ds.Columns {
		if c.IsLeadColumn {
			if s, ok := r.Value(c.Key).(string); ok && s != "" {
				return s
			}
		}
	}
	return rowID
}

func (m *Model) ensureToastTick() tea.Cmd {
	if m.toasts.HasToasts() && !m.toasts.ticking {
		m.toasts.ticking = true
		return scheduleToastTick()
	}
	return nil
}
