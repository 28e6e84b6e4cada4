package table

// Phase names the transient state the orchestrator passes through while it
// handles one event. Every transition starts and ends at PhaseIdle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRowToggling
	PhaseBulkToggling
	PhaseSorting
	PhasePageChanging
	PhaseActing
)

func (p Phase) String() string {
	switch p {
	case PhaseRowToggling:
		return "row-toggling"
	case PhaseBulkToggling:
		return "bulk-toggling"
	case PhaseSorting:
		return "sorting"
	case PhasePageChanging:
		return "page-changing"
	case PhaseActing:
		return "acting"
	default:
		return "idle"
	}
}

// Event is a single user gesture fed to Reduce.
type Event interface {
	Phase() Phase
}

// ToggleRow flips the selection of one row.
type ToggleRow struct {
	RowID string
}

// ToggleAll is a click on the header checkbox: it selects every row unless
// all rows are already selected, in which case it clears the selection.
type ToggleAll struct{}

// SetAll selects or clears every row.
type SetAll struct {
	Selected bool
}

// ToggleSortColumn is a click on a column header.
type ToggleSortColumn struct {
	ColumnKey string
}

// ChangePage moves to an absolute page.
type ChangePage struct {
	Page int
}

// InvokeAction triggers a row action from a links or button-group cell.
type InvokeAction struct {
	RowID  string
	Action Action
}

func (ToggleRow) Phase() Phase        { return PhaseRowToggling }
func (ToggleAll) Phase() Phase        { return PhaseBulkToggling }
func (SetAll) Phase() Phase           { return PhaseBulkToggling }
func (ToggleSortColumn) Phase() Phase { return PhaseSorting }
func (ChangePage) Phase() Phase       { return PhasePageChanging }
func (InvokeAction) Phase() Phase     { return PhaseActing }

// EmissionKind identifies an emitted callback.
type EmissionKind string

const (
	EmitSort      EmissionKind = "sort"
	EmitRowSelect EmissionKind = "row_select"
	EmitSelectAll EmissionKind = "select_all"
	EmitPage      EmissionKind = "page_change"
	EmitEdit      EmissionKind = "edit"
	EmitDelete    EmissionKind = "delete"
)

// Emission is a request or notification for the caller, who owns the data.
type Emission interface {
	Kind() EmissionKind
}

type SortRequested struct {
	ColumnKey string        `json:"column_key"`
	Direction SortDirection `json:"direction"`
}

type RowSelected struct {
	RowID    string `json:"row_id"`
	Selected bool   `json:"selected"`
}

type AllSelected struct {
	Selected bool `json:"selected"`
}

type PageChanged struct {
	Page int `json:"page"`
}

type EditRequested struct {
	RowID string `json:"row_id"`
}

type DeleteRequested struct {
	RowID string `json:"row_id"`
}

func (SortRequested) Kind() EmissionKind   { return EmitSort }
func (RowSelected) Kind() EmissionKind     { return EmitRowSelect }
func (AllSelected) Kind() EmissionKind     { return EmitSelectAll }
func (PageChanged) Kind() EmissionKind     { return EmitPage }
func (EditRequested) Kind() EmissionKind   { return EmitEdit }
func (DeleteRequested) Kind() EmissionKind { return EmitDelete }

// Handlers are optional caller callbacks. Nil handlers are skipped.
type Handlers struct {
	OnSort       func(columnKey string, direction SortDirection)
	OnRowSelect  func(rowID string, selected bool)
	OnSelectAll  func(selected bool)
	OnPageChange func(page int)
	OnEdit       func(rowID string)
	OnDelete     func(rowID string)
}

// Dispatch calls the handler matching each emission in order.
func (h Handlers) Dispatch(emissions ...Emission) {
	for _, e := range emissions {
		switch e := e.(type) {
		case SortRequested:
			if h.OnSort != nil {
				h.OnSort(e.ColumnKey, e.Direction)
			}
		case RowSelected:
			if h.OnRowSelect != nil {
				h.OnRowSelect(e.RowID, e.Selected)
			}
		case AllSelected:
			if h.OnSelectAll != nil {
				h.OnSelectAll(e.Selected)
			}
		case PageChanged:
			if h.OnPageChange != nil {
				h.OnPageChange(e.Page)
			}
		case EditRequested:
			if h.OnEdit != nil {
				h.OnEdit(e.RowID)
			}
		case DeleteRequested:
			if h.OnDelete != nil {
				h.OnDelete(e.RowID)
			}
		}
	}
}
