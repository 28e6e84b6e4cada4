package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/data/dataset"
	tableview "github.com/colonyops/echotable/internal/tui/views/table"
	"github.com/colonyops/echotable/pkg/tuitest"
)

type recordingSink struct {
	records []EventRecord
	err     error
}

func (s *recordingSink) Write(obj any) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, obj.(EventRecord))
	return nil
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Title: "Crew",
		Columns: []coretable.Column{
			{Key: "name", Title: "Name", ContentType: coretable.ContentTitle, IsLeadColumn: true, Sortable: true, SortDirection: coretable.SortAscending},
			{Key: "score", Title: "Score", ContentType: coretable.ContentRating, Sortable: true},
			{Key: "actions", Title: "Actions", ContentType: coretable.ContentButtonGroup},
		},
		Rows: []coretable.Row{
			{ID: "e", Values: map[string]any{"name": "Echo", "score": 1}},
			{ID: "a", Values: map[string]any{"name": "Alpha", "score": 5}},
			{ID: "d", Values: map[string]any{"name": "Delta", "score": 2}},
			{ID: "c", Values: map[string]any{"name": "Charlie", "score": 4}},
			{ID: "b", Selected: true, Values: map[string]any{"name": "Bravo", "score": 3}},
		},
	}
}

func newTestModel(confirmDelete bool, sink EventSink) Model {
	opts := tableview.DefaultOptions()
	opts.ConfirmDelete = confirmDelete
	m := New(context.Background(), testDataset(), Options{PageSize: 2, Table: opts, Events: sink})
	next, _ := m.Update(tuitest.WindowSize(120, 40))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func pageIDs(m Model) []string {
	return coretable.RowIDs(m.Table().Controller().State().Rows)
}

func TestNew_AppliesInitialSortAndFirstPage(t *testing.T) {
	m := newTestModel(true, nil)

	assert.Equal(t, []string{"a", "b"}, pageIDs(m))
	assert.Equal(t, coretable.Pagination{CurrentPage: 1, TotalPages: 3}, m.Table().Controller().State().Pagination)
	assert.True(t, m.Table().Controller().State().Selection.Has("b"), "advisory flags seed the selection")
	assert.Contains(t, m.View(), "Crew")
}

func TestModel_PageChangeSlicesStore(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('n'))
	assert.Equal(t, 2, m.Page())
	assert.Equal(t, []string{"c", "d"}, pageIDs(m))

	m = press(t, m, tuitest.KeyPress('G'))
	assert.Equal(t, 3, m.Page())
	assert.Equal(t, []string{"e"}, pageIDs(m))

	m = press(t, m, tuitest.KeyPress('n'))
	assert.Equal(t, 3, m.Page(), "next on the last page is a no-op")

	m = press(t, m, tuitest.KeyPress('g'))
	assert.Equal(t, []string{"a", "b"}, pageIDs(m))
}

func TestModel_SortResortsStore(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('s'))

	assert.Equal(t, []string{"e", "d"}, pageIDs(m))
	col, _, ok := m.Table().Controller().State().Column("name")
	require.True(t, ok)
	assert.Equal(t, coretable.SortDescending, col.SortDirection)
	assert.Equal(t, coretable.SortRequest{ColumnKey: "name", Direction: coretable.SortDescending}, m.Store().Sorted())
	assert.Equal(t, []string{"Sorted by Name (desc)"}, m.Toasts())
}

func TestModel_RepeatedSortSettlesInUpdate(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('s'))
	m = press(t, m, tuitest.KeyPress('s'))

	col, _, ok := m.Table().Controller().State().Column("name")
	require.True(t, ok)
	assert.Equal(t, coretable.SortAscending, col.SortDirection)
	assert.Equal(t, coretable.SortRequest{ColumnKey: "name", Direction: col.SortDirection}, m.Store().Sorted())
	assert.Equal(t, []string{"a", "b"}, pageIDs(m))
}

func TestModel_RepeatedToggleMatchesCallerSelection(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('x'))
	m = press(t, m, tuitest.KeyPress('x'))
	assert.False(t, m.Table().Controller().State().Selection.Has("a"))

	m = press(t, m, tuitest.KeyPress('n'))
	m = press(t, m, tuitest.KeyPress('p'))
	assert.False(t, m.Table().Controller().State().Selection.Has("a"), "a stays unselected after paging back")
	assert.True(t, m.Table().Controller().State().Selection.Has("b"))
}

func TestModel_SelectionSurvivesPaging(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('x'))
	assert.True(t, m.Table().Controller().State().Selection.Has("a"))

	m = press(t, m, tuitest.KeyPress('n'))
	assert.Equal(t, 0, m.Table().Controller().State().Selection.Len())

	m = press(t, m, tuitest.KeyPress('p'))
	sel := m.Table().Controller().State().Selection
	assert.True(t, sel.Has("a"))
	assert.True(t, sel.Has("b"))
}

func TestModel_SelectAllThenClear(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('a'))
	assert.Equal(t, coretable.StatusAll, m.Table().Controller().State().Status())

	m = press(t, m, tuitest.KeyPress('a'))
	assert.Equal(t, coretable.StatusNone, m.Table().Controller().State().Status())

	m = press(t, m, tuitest.KeyPress('n'))
	m = press(t, m, tuitest.KeyPress('p'))
	assert.Equal(t, coretable.StatusNone, m.Table().Controller().State().Status(), "cleared rows stay cleared")
}

func TestModel_DeleteWithoutConfirm(t *testing.T) {
	m := newTestModel(false, nil)

	m = press(t, m, tuitest.KeyPress('d'))

	assert.Equal(t, 4, m.Store().Len())
	assert.Equal(t, []string{"b", "c"}, pageIDs(m))
	assert.Equal(t, []string{"Deleted Alpha"}, m.Toasts())
}

func TestModel_DeleteClampsPage(t *testing.T) {
	m := newTestModel(false, nil)

	m = press(t, m, tuitest.KeyPress('G'))
	m = press(t, m, tuitest.KeyPress('d'))

	assert.Equal(t, 2, m.Page())
	assert.Equal(t, []string{"c", "d"}, pageIDs(m))
	assert.Equal(t, coretable.Pagination{CurrentPage: 2, TotalPages: 2}, m.Table().Controller().State().Pagination)
}

func TestModel_DeleteConfirmModal(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('d'))
	require.True(t, m.Table().HasModal())
	assert.Equal(t, 5, m.Store().Len())

	next, cmd := m.Update(tuitest.KeyPress('q'))
	m = next.(Model)
	assert.Nil(t, cmd, "q closes the modal instead of quitting")
	assert.False(t, m.Table().HasModal())
	assert.Equal(t, 5, m.Store().Len())

	m = press(t, m, tuitest.KeyPress('d'))
	m = press(t, m, tuitest.KeyPress('y'))
	assert.False(t, m.Table().HasModal())
	assert.Equal(t, 4, m.Store().Len())
}

func TestModel_Edit(t *testing.T) {
	m := newTestModel(true, nil)

	m = press(t, m, tuitest.KeyPress('e'))

	assert.Equal(t, 5, m.Store().Len())
	assert.Equal(t, []string{"Edit requested for Alpha"}, m.Toasts())
	assert.Contains(t, m.View(), "Edit requested for Alpha")

	m = press(t, m, tuitest.Key(tea.KeyEsc))
	assert.Empty(t, m.Toasts())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(true, nil)

	for _, msg := range []tea.KeyMsg{tuitest.KeyPress('q'), tuitest.Key(tea.KeyCtrlC)} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_EventLog(t *testing.T) {
	sink := &recordingSink{}
	m := newTestModel(true, sink)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	m = press(t, m, tuitest.KeyPress('x'))
	_ = press(t, m, tuitest.KeyPress('n'))

	require.Len(t, sink.records, 2)
	assert.Equal(t, EventRecord{
		Time:    fixed,
		Dataset: "Crew",
		Phase:   "row-toggling",
		Kind:    coretable.EmitRowSelect,
		Payload: coretable.RowSelected{RowID: "a", Selected: true},
	}, sink.records[0])
	assert.Equal(t, coretable.EmitPage, sink.records[1].Kind)
	assert.Equal(t, coretable.PageChanged{Page: 2}, sink.records[1].Payload)
}

func TestModel_EventLogFailureDoesNotBreakUI(t *testing.T) {
	m := newTestModel(true, &recordingSink{err: errors.New("disk full")})

	m = press(t, m, tuitest.KeyPress('n'))

	assert.Equal(t, 2, m.Page())
}
