package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/echotable/internal/data/dataset"
	"github.com/colonyops/echotable/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List dataset files",
		UsageText: "echotable ls [dir...] [--json]",
		Description: `Finds every *.yaml, *.yml, *.json and *.jsonc file below the given
directories (or the configured dataset directories) and lists the ones that
load as datasets.

Files that fail to load are reported on stderr.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type datasetInfo struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Columns  int       `json:"columns"`
	Rows     int       `json:"rows"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	dirs := c.Args().Slice()
	if len(dirs) == 0 {
		dirs = cmd.flags.Config.DatasetDirs()
	}

	var (
		found  []datasetInfo
		broken []string
		seen   = make(map[string]bool)
	)

	for _, dir := range dirs {
		paths, err := dataset.Discover(dir)
		if err != nil {
			return err
		}
		for _, path := range paths {
			if seen[path] {
				continue
			}
			seen[path] = true

			ds, err := dataset.Load(path)
			if err != nil {
				broken = append(broken, err.Error())
				continue
			}
			stat, err := os.Stat(path)
			if err != nil {
				broken = append(broken, err.Error())
				continue
			}
			found = append(found, datasetInfo{
				Name:     dataset.Name(path),
				Title:    ds.Title,
				Columns:  len(ds.Columns),
				Rows:     len(ds.Rows),
				Path:     path,
				Size:     stat.Size(),
				Modified: stat.ModTime(),
			})
		}
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, info := range found {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode dataset: %w", err)
			}
		}
	} else if len(found) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "NAME\tTITLE\tCOLUMNS\tROWS\tSIZE\tMODIFIED\tPATH")
		for _, info := range found {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
				info.Name, info.Title, info.Columns, info.Rows,
				humanize.Bytes(uint64(info.Size)), humanize.Time(info.Modified), info.Path)
		}
		_ = w.Flush()
	} else {
		fmt.Fprintf(os.Stderr, "No datasets found\n")
	}

	if len(broken) > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d file(s) that are not valid datasets:\n", len(broken))
		for _, msg := range broken {
			fmt.Fprintf(os.Stderr, "  %s\n", msg)
		}
	}

	return nil
}
