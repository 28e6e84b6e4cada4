package dataset

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/colonyops/echotable/internal/core/table"
)

// Store owns a dataset's rows on behalf of the table. The table only
// emits requests; Store carries them out and hands back pages.
type Store struct {
	rows     []table.Row
	pageSize int
	sort     table.SortRequest
}

// NewStore copies rows into a store that serves pages of pageSize rows.
func NewStore(rows []table.Row, pageSize int) *Store {
	return &Store{
		rows:     slices.Clone(rows),
		pageSize: max(pageSize, 1),
	}
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.rows)
}

// PageSize returns the number of rows per page.
func (s *Store) PageSize() int {
	return s.pageSize
}

// TotalPages returns the page count, never less than one.
func (s *Store) TotalPages() int {
	return table.PageCount(len(s.rows), s.pageSize)
}

// Pagination returns normalized pagination state for page.
func (s *Store) Pagination(page int) table.Pagination {
	return table.Pagination{CurrentPage: page, TotalPages: s.TotalPages()}.Normalize()
}

// Page returns the rows of the 1-based page. Out-of-range pages are
// clamped.
func (s *Store) Page(page int) []table.Row {
	p := s.Pagination(page)
	start := (p.CurrentPage - 1) * s.pageSize
	end := min(start+s.pageSize, len(s.rows))
	if start >= end {
		return []table.Row{}
	}
	return slices.Clone(s.rows[start:end])
}

// Sorted reports the last applied sort.
func (s *Store) Sorted() table.SortRequest {
	return s.sort
}

// Sort orders rows by the values under req.ColumnKey. The sort is stable so
// equal values keep their relative order. SortNone restores nothing and is
// ignored.
func (s *Store) Sort(req table.SortRequest) {
	if req.Direction == table.SortNone {
		return
	}
	s.sort = req
	slices.SortStableFunc(s.rows, func(a, b table.Row) int {
		c := compareValues(a.Value(req.ColumnKey), b.Value(req.ColumnKey))
		if req.Direction == table.SortDescending {
			return -c
		}
		return c
	})
}

// Delete removes the row with id. It reports whether a row was removed.
func (s *Store) Delete(id string) bool {
	idx := slices.IndexFunc(s.rows, func(r table.Row) bool { return r.ID == id })
	if idx < 0 {
		return false
	}
	s.rows = slices.Delete(s.rows, idx, idx+1)
	return true
}

// Row returns the row with id.
func (s *Store) Row(id string) (table.Row, bool) {
	idx := slices.IndexFunc(s.rows, func(r table.Row) bool { return r.ID == id })
	if idx < 0 {
		return table.Row{}, false
	}
	return s.rows[idx], true
}

// compareValues orders cell values: missing values first, then numbers
// numerically, sequences by length, and everything else as case-folded
// text.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}

	if la, ok := a.([]any); ok {
		if lb, ok := b.([]any); ok {
			return cmp.Compare(len(la), len(lb))
		}
	}

	return cmp.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}

func number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(t), "%"), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
