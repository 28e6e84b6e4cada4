package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/data/dataset"
	tableview "github.com/colonyops/echotable/internal/tui/views/table"
	"github.com/colonyops/echotable/pkg/iojson"
)

type RenderCmd struct {
	flags *Flags
	input iojson.FileReader

	// flags
	page       int
	selectIDs  string
	width      int
	color      string
	jsonOutput bool
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render one page of a dataset without interaction",
		UsageText: "echotable render [<dataset> | -f file] [--page N] [--select id,...] [--json]",
		Description: `Renders a single page of the table and exits.

Without a dataset argument the document is read from --file or stdin as
YAML, or as JSONC when the file name ends in .json or .jsonc. --select overrides the dataset's selected flags.
With --json the derived table state is printed instead: aggregate selection
status, pagination window, sort directions and the plain text of each cell.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.IntFlag{
				Name:        "page",
				Usage:       "page to render (clamped into range)",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.StringFlag{
				Name:        "select",
				Usage:       "comma-separated row ids to mark selected",
				Destination: &cmd.selectIDs,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "render width in cells",
				Value:       staticWidth,
				Destination: &cmd.width,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output: auto, always or never",
				Value:       "auto",
				Destination: &cmd.color,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the derived table state as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	if err := setColorMode(cmd.color); err != nil {
		return err
	}

	ds, err := cmd.load(c.Args().First())
	if err != nil {
		return err
	}

	opts := cmd.flags.tableOptions(ds)
	ctrl := snapshot(ds, cmd.flags.Config.Table.PageSize, cmd.page, splitIDs(cmd.selectIDs), opts.Limits)
	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, describe(ds, ctrl))
	}

	_, err = fmt.Fprintln(out, tableview.Render(ctrl, opts, cmd.width))
	return err
}

func (cmd *RenderCmd) load(ref string) (*dataset.Dataset, error) {
	if ref != "" {
		return cmd.flags.loadDataset(ref)
	}

	data, err := cmd.input.Read()
	if err != nil {
		return nil, err
	}
	parse := dataset.Parse
	if name := cmd.input.Name(); strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".jsonc") {
		parse = dataset.ParseJSONC
	}

	ds, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.input.Name(), err)
	}
	return ds, nil
}

// setColorMode forces the lipgloss color profile. "auto" keeps whatever
// was detected for stdout.
func setColorMode(mode string) error {
	switch mode {
	case "", "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
	return nil
}

// snapshot cuts one page out of ds the way the interactive view does and
// returns a controller over it. A non-nil selected list replaces the rows'
// own selected flags.
func snapshot(ds *dataset.Dataset, pageSize, page int, selected []string, limits coretable.Limits) *tableview.Controller {
	store := dataset.NewStore(ds.Rows, pageSize)
	if req, ok := ds.InitialSort(); ok {
		store.Sort(req)
	}

	p := store.Pagination(page)
	rows := store.Page(p.CurrentPage)
	if selected != nil {
		for i := range rows {
			rows[i].Selected = slices.Contains(selected, rows[i].ID)
		}
	}

	return tableview.NewController(ds.Columns, rows, p, limits)
}

type columnState struct {
	Key         string                  `json:"key"`
	ContentType coretable.ContentType   `json:"content_type"`
	Sortable    bool                    `json:"sortable"`
	Direction   coretable.SortDirection `json:"sort_direction"`
}

type rowState struct {
	ID       string            `json:"id"`
	Selected bool              `json:"selected"`
	Cells    map[string]string `json:"cells"`
}

type tableState struct {
	Title      string            `json:"title"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Window     []coretable.Token `json:"window"`
	Status     coretable.Status  `json:"status"`
	Selected   []string          `json:"selected"`
	Columns    []columnState     `json:"columns"`
	Rows       []rowState        `json:"rows"`
}

func describe(ds *dataset.Dataset, ctrl *tableview.Controller) tableState {
	state := ctrl.State()

	out := tableState{
		Title:      ds.Title,
		Page:       state.Pagination.CurrentPage,
		TotalPages: state.Pagination.TotalPages,
		Window:     state.Window(),
		Status:     state.Status(),
		Selected:   state.Selection.IDs(),
		Columns:    make([]columnState, len(state.Columns)),
		Rows:       make([]rowState, len(state.Rows)),
	}

	for i, col := range state.Columns {
		out.Columns[i] = columnState{
			Key:         col.Key,
			ContentType: col.ContentType,
			Sortable:    col.Sortable,
			Direction:   col.SortDirection,
		}
	}

	for i, row := range state.Rows {
		cells := make(map[string]string, len(state.Columns))
		for _, col := range state.Columns {
			cells[col.Key] = ansi.Strip(tableview.RenderCell(col, row, ctrl.Limits()))
		}
		out.Rows[i] = rowState{ID: row.ID, Selected: state.Selection.Has(row.ID), Cells: cells}
	}

	return out
}

func splitIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
