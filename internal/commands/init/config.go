package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/echotable/internal/core/config"
)

const configHeader = "# echotable configuration\n# Generated by 'echotable init'. See 'echotable config validate'.\n\n"

// ConfigOptions are the choices collected by the wizard.
type ConfigOptions struct {
	Theme       string
	Size        string
	PageSize    int
	DatasetsDir string
}

// DefaultConfigOptions mirrors config.DefaultConfig.
func DefaultConfigOptions() ConfigOptions {
	d := config.DefaultConfig()
	return ConfigOptions{
		Theme:    d.Theme,
		Size:     d.Table.Size,
		PageSize: d.Table.PageSize,
	}
}

// GenerateConfig renders a starter config file.
func GenerateConfig(opts ConfigOptions) (string, error) {
	cfg := config.DefaultConfig()
	cfg.Theme = opts.Theme
	cfg.Table.Size = opts.Size
	cfg.Table.PageSize = opts.PageSize
	cfg.DatasetsDir = opts.DatasetsDir

	bits, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return configHeader + string(bits), nil
}

// WriteConfig writes content to configPath, creating parent directories.
func WriteConfig(content, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(configPath, []byte(content), 0o644)
}

// BackupConfig creates a backup of existing config before overwriting.
// Returns empty string if no backup was needed (file doesn't exist).
func BackupConfig(configPath string) (string, error) {
	content, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}

	backupPath := configPath + ".bak"
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	return backupPath, nil
}

// ConfigExists checks if a config file exists at the given path.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return err == nil
}
