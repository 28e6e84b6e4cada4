package table

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/pkg/tuitest"
)

func newTestView(confirmDelete bool) View {
	opts := DefaultOptions()
	opts.ConfirmDelete = confirmDelete
	v := New(testColumns(), testRows(), coretable.Pagination{CurrentPage: 1, TotalPages: 3}, opts)
	v.SetSize(120, 40)
	return v
}

// gesture drains the single gesture queued by the last Update.
func gesture(t *testing.T, v *View) Gesture {
	t.Helper()
	queued := v.TakeEvents()
	require.Len(t, queued, 1)
	return queued[0]
}

func TestView_SelectRow(t *testing.T) {
	v := newTestView(true)

	v, _ = v.Update(tuitest.KeyPress('x'))

	ev := gesture(t, &v)
	assert.Equal(t, coretable.PhaseRowToggling, ev.Phase)
	assert.Equal(t, []coretable.Emission{coretable.RowSelected{RowID: "r1", Selected: true}}, ev.Emissions)
	assert.True(t, v.Controller().State().Selection.Has("r1"))
}

func TestView_QueuesGesturesInOrder(t *testing.T) {
	v := newTestView(true)

	v, _ = v.Update(tuitest.KeyPress('x'))
	v, _ = v.Update(tuitest.KeyPress('x'))

	queued := v.TakeEvents()
	require.Len(t, queued, 2)
	assert.Equal(t, []coretable.Emission{coretable.RowSelected{RowID: "r1", Selected: true}}, queued[0].Emissions)
	assert.Equal(t, []coretable.Emission{coretable.RowSelected{RowID: "r1", Selected: false}}, queued[1].Emissions)
	assert.Empty(t, v.TakeEvents(), "the queue is cleared once taken")
}

func TestView_SelectAllAndSort(t *testing.T) {
	v := newTestView(true)

	v, _ = v.Update(tuitest.KeyPress('a'))
	assert.Equal(t, []coretable.Emission{coretable.AllSelected{Selected: true}}, gesture(t, &v).Emissions)

	v, _ = v.Update(tuitest.KeyPress('s'))
	ev := gesture(t, &v)
	assert.Equal(t, coretable.PhaseSorting, ev.Phase)
	assert.Equal(t, []coretable.Emission{coretable.SortRequested{ColumnKey: "name", Direction: coretable.SortAscending}}, ev.Emissions)
}

func TestView_SortNonSortableEmitsNothing(t *testing.T) {
	v := newTestView(true)

	v, _ = v.Update(tuitest.Key(tea.KeyRight))
	v, _ = v.Update(tuitest.KeyPress('s'))

	assert.Empty(t, v.TakeEvents())
}

func TestView_Paging(t *testing.T) {
	v := newTestView(true)

	v, _ = v.Update(tuitest.KeyPress('n'))
	assert.Equal(t, []coretable.Emission{coretable.PageChanged{Page: 2}}, gesture(t, &v).Emissions)

	v, _ = v.Update(tuitest.KeyPress('G'))
	assert.Equal(t, []coretable.Emission{coretable.PageChanged{Page: 3}}, gesture(t, &v).Emissions)

	v, _ = v.Update(tuitest.KeyPress('n'))
	assert.Empty(t, v.TakeEvents(), "past the last page is a no-op")
}

func TestView_Edit(t *testing.T) {
	v := newTestView(true)

	v, _ = v.Update(tuitest.KeyPress('e'))

	assert.Equal(t, []coretable.Emission{coretable.EditRequested{RowID: "r1"}}, gesture(t, &v).Emissions)
}

func TestView_DeleteWithConfirm(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		v := newTestView(true)

		v, _ = v.Update(tuitest.KeyPress('d'))
		assert.Empty(t, v.TakeEvents())
		require.True(t, v.HasModal())
		assert.Contains(t, plain(v.View()), "Delete row")

		v, _ = v.Update(tuitest.KeyPress('y'))
		assert.False(t, v.HasModal())
		assert.Equal(t, []coretable.Emission{coretable.DeleteRequested{RowID: "r1"}}, gesture(t, &v).Emissions)
	})

	t.Run("enter defaults to cancel", func(t *testing.T) {
		v := newTestView(true)

		v, _ = v.Update(tuitest.KeyPress('d'))
		v, _ = v.Update(tuitest.Key(tea.KeyEnter))

		assert.False(t, v.HasModal())
		assert.Empty(t, v.TakeEvents())
	})

	t.Run("toggle then enter confirms", func(t *testing.T) {
		v := newTestView(true)

		v, _ = v.Update(tuitest.KeyPress('d'))
		v, _ = v.Update(tuitest.Key(tea.KeyRight))
		v, _ = v.Update(tuitest.Key(tea.KeyEnter))

		assert.Equal(t, []coretable.Emission{coretable.DeleteRequested{RowID: "r1"}}, gesture(t, &v).Emissions)
	})

	t.Run("esc cancels", func(t *testing.T) {
		v := newTestView(true)

		v, _ = v.Update(tuitest.KeyPress('d'))
		v, _ = v.Update(tuitest.Key(tea.KeyEsc))

		assert.False(t, v.HasModal())
		assert.Empty(t, v.TakeEvents())
	})
}

func TestView_DeleteWithoutConfirm(t *testing.T) {
	v := newTestView(false)

	v, _ = v.Update(tuitest.KeyPress('d'))

	assert.False(t, v.HasModal())
	assert.Equal(t, []coretable.Emission{coretable.DeleteRequested{RowID: "r1"}}, gesture(t, &v).Emissions)
}

func TestView_ActivateFocusedAction(t *testing.T) {
	v := newTestView(false)
	for range 4 {
		v, _ = v.Update(tuitest.KeyPress('l'))
	}

	v, _ = v.Update(tuitest.Key(tea.KeyEnter))
	assert.Equal(t, []coretable.Emission{coretable.EditRequested{RowID: "r1"}}, gesture(t, &v).Emissions)

	v, _ = v.Update(tuitest.Key(tea.KeyTab))
	v, _ = v.Update(tuitest.Key(tea.KeyEnter))
	assert.Equal(t, []coretable.Emission{coretable.DeleteRequested{RowID: "r1"}}, gesture(t, &v).Emissions)
}

func TestView_HelpToggle(t *testing.T) {
	v := newTestView(true)
	short := plain(v.View())

	v, _ = v.Update(tuitest.KeyPress('?'))
	full := plain(v.View())

	assert.NotContains(t, short, "first page")
	assert.Contains(t, full, "first page")
}

func TestView_SetRowsResetsSelectionForNewPage(t *testing.T) {
	v := newTestView(true)
	v, _ = v.Update(tuitest.KeyPress('a'))

	v.SetRows([]coretable.Row{{ID: "p2-1"}, {ID: "p2-2"}})
	v.SetPagination(coretable.Pagination{CurrentPage: 2, TotalPages: 3})

	assert.Equal(t, coretable.StatusNone, v.Controller().State().Status())
	assert.Contains(t, plain(v.View()), "1 [2] 3")
}
