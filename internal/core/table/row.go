package table

import (
	"slices"
	"strings"
)

// Row is one record. Values is keyed by Column.Key and each value's shape is
// dictated by that column's ContentType. Selected is only the advisory
// initial state; the live selection lives in Selection.
type Row struct {
	ID       string         `yaml:"id" json:"id"`
	Selected bool           `yaml:"selected" json:"selected,omitempty"`
	Values   map[string]any `yaml:"values" json:"values"`
}

// Value returns the value stored for key, or nil when the row has none.
func (r Row) Value(key string) any {
	if r.Values == nil {
		return nil
	}
	return r.Values[key]
}

// RowIDs returns the ids of rows in order.
func RowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

// RowSetKey identifies a row set independent of its order. Two slices
// holding the same ids share a key, so resorting a page keeps the current
// selection while swapping in a different data set resets it.
func RowSetKey(rows []Row) string {
	ids := RowIDs(rows)
	slices.Sort(ids)
	return strings.Join(ids, "\x00")
}
