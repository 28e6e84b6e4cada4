package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/echotable/internal/core/table"
)

const sampleYAML = `
title: Projects
subtitle: Active work
description: |
  # Projects
  Everything in flight.
columns:
  - key: name
    title: Name
    content_type: title
    lead: true
    sortable: true
    sort_direction: desc
  - key: tags
    title: Tags
    content_type: multi-tag
    max_visible: 1
  - key: score
    title: Score
    content_type: rating
    sortable: true
rows:
  - id: p1
    values:
      name: Apollo
      tags: [infra, go]
      score: 4
  - id: p2
    selected: true
    values:
      name: Borealis
      score: 2
`

func TestParse(t *testing.T) {
	ds, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Projects", ds.Title)
	assert.Equal(t, "Active work", ds.Subtitle)
	assert.Contains(t, ds.Description, "Everything in flight.")

	require.Len(t, ds.Columns, 3)
	assert.Equal(t, table.ContentTitle, ds.Columns[0].ContentType)
	assert.True(t, ds.Columns[0].IsLeadColumn)
	assert.Equal(t, table.SortDescending, ds.Columns[0].SortDirection)
	assert.Equal(t, table.ContentMultiTag, ds.Columns[1].ContentType)
	assert.Equal(t, 1, ds.Columns[1].MaxVisible)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "p1", ds.Rows[0].ID)
	assert.Equal(t, "Apollo", ds.Rows[0].Value("name"))
	assert.True(t, ds.Rows[1].Selected)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no columns",
			yaml:    "rows: []",
			wantErr: "at least one column is required",
		},
		{
			name: "duplicate column key",
			yaml: `
columns:
  - {key: a, title: A}
  - {key: a, title: B}
`,
			wantErr: `duplicate key "a"`,
		},
		{
			name: "two lead columns",
			yaml: `
columns:
  - {key: a, lead: true}
  - {key: b, lead: true}
`,
			wantErr: "at most one lead column",
		},
		{
			name: "missing row id",
			yaml: `
columns:
  - {key: a}
rows:
  - values: {a: x}
`,
			wantErr: "id is required",
		},
		{
			name: "duplicate row id",
			yaml: `
columns:
  - {key: a}
rows:
  - {id: r1}
  - {id: r1}
`,
			wantErr: `duplicate id "r1"`,
		},
		{
			name:    "malformed yaml",
			yaml:    "columns: [",
			wantErr: "parse dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, ds.Path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDataset_InitialSort(t *testing.T) {
	ds, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	req, ok := ds.InitialSort()
	require.True(t, ok)
	assert.Equal(t, table.SortRequest{ColumnKey: "name", Direction: table.SortDescending}, req)

	ds.Columns[0].SortDirection = table.SortNone
	_, ok = ds.InitialSort()
	assert.False(t, ok)
}

const sampleJSONC = `{
  // exported from the tracker
  "title": "Projects",
  "columns": [
    {"key": "name", "title": "Name", "content_type": "title", "lead": true},
    {"key": "progress", "title": "Progress", "content_type": "progress-bar", "sortable": true, "sort_direction": "asc"},
  ],
  "rows": [
    {"id": "p1", "values": {"name": "Apollo", "progress": 40}},
    {"id": "p2", "selected": true, "values": {"name": "Borealis", "progress": 75.5}},
  ],
}`

func TestParseJSONC(t *testing.T) {
	ds, err := ParseJSONC([]byte(sampleJSONC))
	require.NoError(t, err)

	assert.Equal(t, "Projects", ds.Title)
	require.Len(t, ds.Columns, 2)
	assert.Equal(t, table.ContentProgressBar, ds.Columns[1].ContentType)
	assert.Equal(t, table.SortAscending, ds.Columns[1].SortDirection)

	require.Len(t, ds.Rows, 2)
	assert.InDelta(t, 40.0, ds.Rows[0].Value("progress"), 0.001)
	assert.True(t, ds.Rows[1].Selected)
}

func TestParseJSONC_Invalid(t *testing.T) {
	_, err := ParseJSONC([]byte(`{"columns": [{"key": "a", "title": "A", "content_type": "title"}], "rows": [{"id": ""}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dataset")
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSONC), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Projects", ds.Title)
	assert.Equal(t, path, ds.Path)
}
