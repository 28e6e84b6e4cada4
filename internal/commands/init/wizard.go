// Package initcmd implements the interactive 'echotable init' wizard.
package initcmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/echotable/internal/core/config"
	"github.com/colonyops/echotable/internal/core/styles"
	"github.com/colonyops/echotable/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
	// prompt collects answers; replaced in tests.
	prompt func(ConfigOptions) (ConfigOptions, error)
	// confirm asks before overwriting; replaced in tests.
	confirm func(path string) (bool, error)
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts, prompt: promptUser, confirm: confirmOverwrite}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		overwrite, err := w.confirm(w.opts.ConfigPath)
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	opts := DefaultConfigOptions()
	if !w.opts.Yes {
		var err error
		if opts, err = w.prompt(opts); err != nil {
			return err
		}
	}

	content, err := GenerateConfig(opts)
	if err != nil {
		return err
	}

	// The generated file must load cleanly before it replaces anything.
	probe := config.DefaultConfig()
	probe.Theme, probe.Table.Size, probe.Table.PageSize = opts.Theme, opts.Size, opts.PageSize
	probe.DataDir = w.opts.DataDir
	if err := probe.Validate(); err != nil {
		return fmt.Errorf("generated config is invalid: %w", err)
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(content, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'echotable config validate' to check the file")
	p.Printf("  2. Run 'echotable ls' to find datasets")
	p.Printf("  3. Run 'echotable view <dataset>' to open one")

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Config file already exists").
		Description(path + "\nOverwrite? (a backup will be created)").
		Value(&overwrite).
		Run()
	return overwrite, err
}

func promptUser(defaults ConfigOptions) (ConfigOptions, error) {
	opts := defaults
	pageSize := strconv.Itoa(defaults.PageSize)

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&opts.Theme),
		huh.NewSelect[string]().
			Title("Table size").
			Description("Only spacing changes between sizes").
			Options(huh.NewOptions(config.SizeSmall, config.SizeMedium, config.SizeLarge)...).
			Value(&opts.Size),
		huh.NewInput().
			Title("Rows per page").
			Value(&pageSize).
			Validate(validatePageSize),
		huh.NewInput().
			Title("Datasets directory").
			Description("Optional; searched when a dataset is named without a path").
			Value(&opts.DatasetsDir),
	))
	if err := form.Run(); err != nil {
		return opts, err
	}

	opts.PageSize, _ = strconv.Atoi(strings.TrimSpace(pageSize))
	opts.DatasetsDir = strings.TrimSpace(opts.DatasetsDir)
	return opts, nil
}

func validatePageSize(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of at least 1")
	}
	return nil
}
