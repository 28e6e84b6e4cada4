package table

import "slices"

// Status is the aggregate selection state that drives the tri-state
// "select all" checkbox.
type Status int

const (
	StatusNone Status = iota
	StatusSome
	StatusAll
)

func (s Status) String() string {
	switch s {
	case StatusAll:
		return "all"
	case StatusSome:
		return "some"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Selection is the set of selected row ids. The zero value is an empty
// selection. Methods never mutate the receiver; they return the next value.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection builds a selection from rows whose advisory Selected flag is
// set.
func NewSelection(rows []Row) Selection {
	s := Selection{ids: make(map[string]struct{})}
	for _, r := range rows {
		if r.Selected {
			s.ids[r.ID] = struct{}{}
		}
	}
	return s
}

func (s Selection) clone() Selection {
	next := Selection{ids: make(map[string]struct{}, len(s.ids))}
	for id := range s.ids {
		next.ids[id] = struct{}{}
	}
	return next
}

// Toggle flips membership of rowID. Ids that are not in rows are ignored so
// the selection stays a subset of the current row set. The returned bool
// reports the row's new state and whether anything changed.
func (s Selection) Toggle(rows []Row, rowID string) (next Selection, selected bool, changed bool) {
	if !containsRow(rows, rowID) {
		return s, false, false
	}
	next = s.clone()
	if _, ok := next.ids[rowID]; ok {
		delete(next.ids, rowID)
		return next, false, true
	}
	next.ids[rowID] = struct{}{}
	return next, true, true
}

// SetAll replaces the selection with every row id (selected=true) or with
// nothing (selected=false).
func (s Selection) SetAll(rows []Row, selected bool) Selection {
	next := Selection{ids: make(map[string]struct{}, len(rows))}
	if selected {
		for _, r := range rows {
			next.ids[r.ID] = struct{}{}
		}
	}
	return next
}

// Has reports whether rowID is selected.
func (s Selection) Has(rowID string) bool {
	_, ok := s.ids[rowID]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids sorted for stable output.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether both selections hold the same ids.
func (s Selection) Equal(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for id := range s.ids {
		if _, ok := other.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Status derives the aggregate status against rows. Only ids present in
// rows count, and an empty row list is always StatusNone.
func (s Selection) Status(rows []Row) Status {
	if len(rows) == 0 {
		return StatusNone
	}
	count := 0
	for _, r := range rows {
		if s.Has(r.ID) {
			count++
		}
	}
	switch {
	case count == 0:
		return StatusNone
	case count == len(rows):
		return StatusAll
	default:
		return StatusSome
	}
}

func containsRow(rows []Row, id string) bool {
	for _, r := range rows {
		if r.ID == id {
			return true
		}
	}
	return false
}
