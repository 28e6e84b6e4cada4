package table

// SortRequest is what the sort controller hands back to the caller. The
// table never reorders rows itself; the caller resorts and resupplies them.
type SortRequest struct {
	ColumnKey string        `json:"column_key"`
	Direction SortDirection `json:"direction"`
}

// NextDirection returns the direction a click moves to. Ascending and
// descending swap; a column with no direction starts descending.
func NextDirection(d SortDirection) SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// ToggleSort flips the direction of col. Non-sortable columns are returned
// unchanged with ok=false and no request.
func ToggleSort(col Column) (Column, SortRequest, bool) {
	if !col.Sortable {
		return col, SortRequest{}, false
	}
	col.SortDirection = NextDirection(col.SortDirection)
	return col, SortRequest{ColumnKey: col.Key, Direction: col.SortDirection}, true
}
