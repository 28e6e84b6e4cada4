// Package dataset loads table data sets from YAML or JSONC files and plays the role
// of the table's caller: it owns the rows, sorts them, slices pages and
// applies deletes.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/echotable/internal/core/table"
)

// Dataset is one table definition with its rows.
type Dataset struct {
	Title       string         `yaml:"title" json:"title"`
	Subtitle    string         `yaml:"subtitle" json:"subtitle"`
	Description string         `yaml:"description" json:"description"` // markdown
	Columns     []table.Column `yaml:"columns" json:"columns"`
	Rows        []table.Row    `yaml:"rows" json:"rows"`

	Path string `yaml:"-" json:"-"`
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	parse := Parse
	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		parse = ParseJSONC
	}

	ds, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Path = path
	return ds, nil
}

// Parse decodes and validates dataset YAML.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return validated(&ds)
}

// ParseJSONC decodes a dataset from JSON that may carry comments and
// trailing commas.
func ParseJSONC(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(jsonc.ToJSON(data), &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return validated(&ds)
}

func validated(ds *Dataset) (*Dataset, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return ds, nil
}

// Validate checks the structural invariants the table relies on: unique
// column keys, at most one lead column and unique, non-empty row ids.
// Missing cell values are allowed; they render empty.
func (d *Dataset) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if len(d.Columns) == 0 {
		errs = errs.Append("columns", errors.New("at least one column is required"))
	} else if err := table.ValidateColumns(d.Columns); err != nil {
		errs = errs.Append("columns", err)
	}

	seen := make(map[string]bool, len(d.Rows))
	for i, r := range d.Rows {
		field := fmt.Sprintf("rows[%d].id", i)
		switch {
		case r.ID == "":
			errs = errs.Append(field, errors.New("id is required"))
		case seen[r.ID]:
			errs = errs.Append(field, fmt.Errorf("duplicate id %q", r.ID))
		}
		seen[r.ID] = true
	}

	return errs.ToError()
}

// InitialSort returns the first sortable column that carries a direction.
func (d *Dataset) InitialSort() (table.SortRequest, bool) {
	for _, c := range d.Columns {
		if c.Sortable && c.SortDirection != table.SortNone {
			return table.SortRequest{ColumnKey: c.Key, Direction: c.SortDirection}, true
		}
	}
	return table.SortRequest{}, false
}
