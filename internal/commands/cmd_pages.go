package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/pkg/iojson"
)

type PagesCmd struct {
	flags *Flags

	// flags
	current    int
	total      int
	jsonOutput bool
}

// NewPagesCmd creates a new pages command
func NewPagesCmd(flags *Flags) *PagesCmd {
	return &PagesCmd{flags: flags}
}

// Register adds the pages command to the application
func (cmd *PagesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pages",
		Usage:     "Print the pagination window for a page",
		UsageText: "echotable pages --current N --total M [--json]",
		Description: `Prints the page tokens the table footer would show. The current page is
bracketed and hidden runs of pages collapse to an ellipsis once there are
more than seven pages. Out-of-range values are clamped.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "current",
				Usage:       "current page (1-based)",
				Value:       1,
				Destination: &cmd.current,
			},
			&cli.IntFlag{
				Name:        "total",
				Usage:       "total number of pages",
				Value:       1,
				Destination: &cmd.total,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PagesCmd) run(ctx context.Context, c *cli.Command) error {
	p := coretable.Pagination{CurrentPage: cmd.current, TotalPages: cmd.total}.Normalize()
	tokens := p.Window()

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, struct {
			Current int               `json:"current"`
			Total   int               `json:"total"`
			Tokens  []coretable.Token `json:"tokens"`
		}{p.CurrentPage, p.TotalPages, tokens})
	}

	_, err := fmt.Fprintln(c.Root().Writer, formatWindow(tokens, p.CurrentPage))
	return err
}

func formatWindow(tokens []coretable.Token, current int) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t.Page == current {
			parts[i] = "[" + t.String() + "]"
			continue
		}
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
