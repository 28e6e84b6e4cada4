package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/echotable/internal/core/config"
	coretable "github.com/colonyops/echotable/internal/core/table"
	"github.com/colonyops/echotable/internal/data/dataset"
	tableview "github.com/colonyops/echotable/internal/tui/views/table"
)

const appName = "echotable"

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName)
}

// DefaultLogFile returns the log file used when --log-file is not set.
func DefaultLogFile(dataDir string) string {
	return filepath.Join(dataDir, appName+".log")
}

// loadDataset resolves ref against the configured dataset directories and
// loads it.
func (f *Flags) loadDataset(ref string) (*dataset.Dataset, error) {
	if ref == "" {
		return nil, fmt.Errorf("a dataset path or name is required")
	}

	path, err := dataset.Resolve(ref, f.Config.DatasetDirs()...)
	if err != nil {
		return nil, err
	}
	return dataset.Load(path)
}

// tableOptions builds view options for ds from the loaded config.
func (f *Flags) tableOptions(ds *dataset.Dataset) tableview.Options {
	t := f.Config.Table
	return tableview.Options{
		Title:             ds.Title,
		Subtitle:          ds.Subtitle,
		Size:              tableview.ParseSize(t.Size),
		ShowHeaderActions: t.ShowHeaderActions,
		ShowPagination:    t.ShowPagination,
		ShowSubtitle:      t.ShowSubtitle,
		ConfirmDelete:     t.ConfirmDelete,
		Limits:            coretable.Limits{MaxTags: t.MaxTags, MaxAvatars: t.MaxAvatars},
	}
}
