package table

// State is everything the orchestrator owns for one mounted table. It is a
// value: Reduce returns the next State and never mutates its input.
type State struct {
	Columns    []Column
	Rows       []Row
	Selection  Selection
	Pagination Pagination

	rowSet string
}

// NewState builds the initial state. Columns are copied so sort toggles do
// not write through to the caller's slice, and the selection is derived
// from the rows' advisory flags.
func NewState(cols []Column, rows []Row, p Pagination) State {
	return State{
		Columns:    append([]Column(nil), cols...),
		Rows:       rows,
		Selection:  NewSelection(rows),
		Pagination: p.Normalize(),
		rowSet:     RowSetKey(rows),
	}
}

// WithRows swaps in a new page of rows from the caller. When the set of row
// ids changes the selection is re-derived from the advisory flags; a
// reordering of the same rows keeps it.
func (s State) WithRows(rows []Row) State {
	key := RowSetKey(rows)
	s.Rows = rows
	if key != s.rowSet {
		s.Selection = NewSelection(rows)
		s.rowSet = key
	}
	return s
}

// WithPagination replaces the pagination state, normalized.
func (s State) WithPagination(p Pagination) State {
	s.Pagination = p.Normalize()
	return s
}

// Status is the aggregate selection status over the current rows.
func (s State) Status() Status {
	return s.Selection.Status(s.Rows)
}

// Window is the footer's pagination window.
func (s State) Window() []Token {
	return s.Pagination.Window()
}

// Column returns the column with key and its index.
func (s State) Column(key string) (Column, int, bool) {
	for i, c := range s.Columns {
		if c.Key == key {
			return c, i, true
		}
	}
	return Column{}, -1, false
}

// Reduce applies one event and returns the next state with the callbacks to
// emit. Invalid events are absorbed: the state comes back unchanged with no
// emissions.
func Reduce(s State, ev Event) (State, []Emission) {
	switch ev := ev.(type) {
	case ToggleRow:
		next, selected, changed := s.Selection.Toggle(s.Rows, ev.RowID)
		if !changed {
			return s, nil
		}
		s.Selection = next
		return s, []Emission{RowSelected{RowID: ev.RowID, Selected: selected}}

	case ToggleAll:
		return Reduce(s, SetAll{Selected: s.Status() != StatusAll})

	case SetAll:
		if len(s.Rows) == 0 {
			return s, nil
		}
		s.Selection = s.Selection.SetAll(s.Rows, ev.Selected)
		return s, []Emission{AllSelected{Selected: ev.Selected}}

	case ToggleSortColumn:
		col, idx, ok := s.Column(ev.ColumnKey)
		if !ok {
			return s, nil
		}
		col, req, ok := ToggleSort(col)
		if !ok {
			return s, nil
		}
		s.Columns = append([]Column(nil), s.Columns...)
		s.Columns[idx] = col
		return s, []Emission{SortRequested(req)}

	case ChangePage:
		p := s.Pagination.Normalize()
		if ev.Page < 1 || ev.Page > p.TotalPages || ev.Page == p.CurrentPage {
			return s, nil
		}
		p.CurrentPage = ev.Page
		s.Pagination = p
		return s, []Emission{PageChanged{Page: ev.Page}}

	case InvokeAction:
		if !containsRow(s.Rows, ev.RowID) {
			return s, nil
		}
		switch ev.Action {
		case ActionEdit:
			return s, []Emission{EditRequested{RowID: ev.RowID}}
		case ActionDelete:
			return s, []Emission{DeleteRequested{RowID: ev.RowID}}
		}
		return s, nil
	}

	return s, nil
}
