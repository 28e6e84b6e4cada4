// Package config handles configuration loading and validation for echotable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/echotable/internal/core/styles"
)

// Table size variants. Size only affects spacing.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

var sizes = []string{SizeSmall, SizeMedium, SizeLarge}

// Config holds the application configuration.
type Config struct {
	Theme       string       `yaml:"theme"`
	DatasetsDir string       `yaml:"datasets_dir"` // searched when a dataset is referenced by name
	Table       TableConfig  `yaml:"table"`
	Events      EventsConfig `yaml:"events"`
	DataDir     string       `yaml:"-"` // set by caller, not from config file
}

// TableConfig controls how tables are presented and paged.
type TableConfig struct {
	Size              string `yaml:"size"`
	PageSize          int    `yaml:"page_size"`
	MaxTags           int    `yaml:"max_tags"`
	MaxAvatars        int    `yaml:"max_avatars"`
	ShowHeaderActions bool   `yaml:"show_header_actions"`
	ShowPagination    bool   `yaml:"show_pagination"`
	ShowSubtitle      bool   `yaml:"show_subtitle"`
	ConfirmDelete     bool   `yaml:"confirm_delete"`
}

// EventsConfig configures the optional event log.
type EventsConfig struct {
	// File receives one JSON object per emitted table event. Empty disables
	// the log.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Table: TableConfig{
			Size:              SizeMedium,
			PageSize:          10,
			MaxTags:           2,
			MaxAvatars:        3,
			ShowHeaderActions: true,
			ShowPagination:    true,
			ShowSubtitle:      true,
			ConfirmDelete:     true,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		errs = errs.Append("theme", fmt.Errorf("unknown theme %q, expected one of %v", c.Theme, styles.ThemeNames()))
	}

	if !slices.Contains(sizes, c.Table.Size) {
		errs = errs.Append("table.size", fmt.Errorf("invalid size %q, expected one of %v", c.Table.Size, sizes))
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"table.page_size", c.Table.PageSize},
		{"table.max_tags", c.Table.MaxTags},
		{"table.max_avatars", c.Table.MaxAvatars},
	} {
		if f.value < 1 {
			errs = errs.Append(f.name, fmt.Errorf("must be at least 1, got %d", f.value))
		}
	}

	return errs.ToError()
}

// DatasetDirs returns the directories searched for datasets referenced by
// name, in lookup order.
func (c *Config) DatasetDirs() []string {
	dirs := []string{"."}
	if c.DatasetsDir != "" {
		dirs = append(dirs, c.DatasetsDir)
	}
	if c.DataDir != "" {
		dirs = append(dirs, filepath.Join(c.DataDir, "datasets"))
	}
	return dirs
}

// EventsFile returns the event log path or "" when disabled. Relative paths
// are resolved against the data directory.
func (c *Config) EventsFile() string {
	if c.Events.File == "" || filepath.IsAbs(c.Events.File) {
		return c.Events.File
	}
	return filepath.Join(c.DataDir, c.Events.File)
}
