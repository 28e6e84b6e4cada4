package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/echotable/internal/core/styles"
	"github.com/colonyops/echotable/internal/data/dataset"
)

type InfoCmd struct {
	flags *Flags

	// flags
	raw   bool
	width int
}

// NewInfoCmd creates a new info command
func NewInfoCmd(flags *Flags) *InfoCmd {
	return &InfoCmd{flags: flags}
}

// Register adds the info command to the application
func (cmd *InfoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "info",
		Usage:       "Describe a dataset",
		UsageText:   "echotable info <dataset> [--raw]",
		Description: "Renders the dataset's markdown description followed by a summary of its columns.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the markdown source instead of rendering it",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InfoCmd) run(ctx context.Context, c *cli.Command) error {
	ds, err := cmd.flags.loadDataset(c.Args().First())
	if err != nil {
		return err
	}

	md := describeMarkdown(ds)
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

// describeMarkdown builds the info document for ds.
func describeMarkdown(ds *dataset.Dataset) string {
	var b strings.Builder

	title := ds.Title
	if title == "" {
		title = dataset.Name(ds.Path)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if ds.Subtitle != "" {
		fmt.Fprintf(&b, "_%s_\n\n", ds.Subtitle)
	}
	if desc := strings.TrimSpace(ds.Description); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "## Columns\n\n%d rows across %d columns.\n\n", len(ds.Rows), len(ds.Columns))
	b.WriteString("| Key | Title | Content | Sortable | Lead |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, col := range ds.Columns {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
			col.Key, col.Title, col.ContentType, yesNo(col.Sortable), yesNo(col.IsLeadColumn))
	}

	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
