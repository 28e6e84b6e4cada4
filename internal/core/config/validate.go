package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility. The configPath argument specifies the config
// file location to validate (empty string skips config file check). This
// calls Validate() first for basic structural validation, then adds I/O
// checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("datasets_dir", c.DatasetsDir, isDirectoryOrNotExist),
		criterio.Run("events.file", c.EventsFile(), isWritableFileOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.DatasetsDir != "" {
		if _, err := os.Stat(c.DatasetsDir); os.IsNotExist(err) {
			warnings = append(warnings, ValidationWarning{
				Category: "Datasets",
				Item:     c.DatasetsDir,
				Message:  "datasets directory does not exist",
			})
		}
	}

	if !c.Table.ShowPagination {
		warnings = append(warnings, ValidationWarning{
			Category: "Table",
			Item:     "show_pagination",
			Message:  fmt.Sprintf("pagination footer is hidden; pages of %d rows are only reachable with keys", c.Table.PageSize),
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// isWritableFileOrNotExist validates that a path is a regular file, or that
// it does not exist yet and its parent is not a file.
func isWritableFileOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := isDirectoryOrNotExist(filepath.Dir(path)); err != nil {
			return fmt.Errorf("parent %s: %w", filepath.Dir(path), err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
