package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/echotable/internal/core/logging"
	"github.com/colonyops/echotable/internal/profiler"
	"github.com/colonyops/echotable/internal/tui"
	tableview "github.com/colonyops/echotable/internal/tui/views/table"
	"github.com/colonyops/echotable/pkg/iojson"
)

// staticWidth is the render width used when stdout is not a terminal.
const staticWidth = 100

type ViewCmd struct {
	flags        *Flags
	profilerPort int
}

// NewViewCmd creates a new view command
func NewViewCmd(flags *Flags) *ViewCmd {
	return &ViewCmd{flags: flags}
}

// Register adds the view command to the application
func (cmd *ViewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "view",
		Usage:     "Browse a dataset in an interactive table",
		UsageText: "echotable view <dataset>",
		Description: `Opens the dataset in an interactive table. The dataset may be a path or a
name found under the configured dataset directories.

When stdout is not a terminal the first page is printed once instead.`,
		Action: cmd.run,
	})

	return app
}

// Flags returns the viewer flags for registration on the root command, so
// they apply to both "view" and the bare dataset form.
func (cmd *ViewCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "serve pprof on this localhost port while the table is open (0 disables)",
			Sources:     cli.EnvVars("ECHOTABLE_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Run executes the view command. Exported for use as default command.
func (cmd *ViewCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ViewCmd) run(ctx context.Context, c *cli.Command) error {
	ds, err := cmd.flags.loadDataset(c.Args().First())
	if err != nil {
		return err
	}
	ctx = logging.WithCommand(ctx, "view")
	opts := cmd.flags.tableOptions(ds)

	if !iojson.IsTerminal(os.Stdout) {
		ctrl := snapshot(ds, cmd.flags.Config.Table.PageSize, 1, nil, opts.Limits)
		_, err := fmt.Fprintln(c.Root().Writer, tableview.Render(ctrl, opts, staticWidth))
		return err
	}

	var sink tui.EventSink
	if path := cmd.flags.Config.EventsFile(); path != "" {
		lw, err := iojson.OpenLines(path)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer func() { _ = lw.Close() }()
		sink = lw
	}

	logger := logging.Component("view")

	if cmd.profilerPort > 0 {
		prof := profiler.New(cmd.profilerPort)
		if err := prof.Start(ctx); err != nil {
			return fmt.Errorf("start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := prof.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("shutdown profiler")
			}
		}()
		logger.Info().Str("url", prof.URL()).Msg("profiler endpoint available")
	}

	logger.Debug().Ctx(ctx).Str("path", ds.Path).Int("rows", len(ds.Rows)).Msg("opening table")

	model := tui.New(ctx, ds, tui.Options{
		PageSize: cmd.flags.Config.Table.PageSize,
		Table:    opts,
		Events:   sink,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
