package initcmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/echotable/internal/core/config"
	"github.com/colonyops/echotable/internal/printer"
)

func testWizard(t *testing.T, opts WizardOptions) (*Wizard, *bytes.Buffer) {
	t.Helper()
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "echotable", "config.yaml")
	}
	opts.DataDir = t.TempDir()

	w := NewWizard(opts)
	w.prompt = func(ConfigOptions) (ConfigOptions, error) {
		t.Fatal("prompt should not run")
		return ConfigOptions{}, nil
	}
	w.confirm = func(string) (bool, error) {
		t.Fatal("confirm should not run")
		return false, nil
	}
	return w, &bytes.Buffer{}
}

func run(w *Wizard, out *bytes.Buffer) error {
	return w.Run(printer.NewContext(context.Background(), printer.New(out)))
}

func TestWizard_YesWritesDefaults(t *testing.T) {
	w, out := testWizard(t, WizardOptions{Yes: true})

	require.NoError(t, run(w, out))

	cfg, err := config.Load(w.opts.ConfigPath, w.opts.DataDir)
	require.NoError(t, err)
	want := config.DefaultConfig()
	want.DataDir = w.opts.DataDir
	assert.Equal(t, &want, cfg)
	assert.Contains(t, out.String(), "Created config")
}

func TestWizard_PromptAnswersAreWritten(t *testing.T) {
	w, out := testWizard(t, WizardOptions{})
	w.prompt = func(d ConfigOptions) (ConfigOptions, error) {
		d.Theme = "slate"
		d.Size = config.SizeSmall
		d.PageSize = 25
		return d, nil
	}

	require.NoError(t, run(w, out))

	cfg, err := config.Load(w.opts.ConfigPath, w.opts.DataDir)
	require.NoError(t, err)
	assert.Equal(t, "slate", cfg.Theme)
	assert.Equal(t, config.SizeSmall, cfg.Table.Size)
	assert.Equal(t, 25, cfg.Table.PageSize)
}

func TestWizard_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	t.Run("yes without force refuses", func(t *testing.T) {
		w, out := testWizard(t, WizardOptions{ConfigPath: path, Yes: true})
		err := run(w, out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--force")
	})

	t.Run("declined overwrite leaves file", func(t *testing.T) {
		w, out := testWizard(t, WizardOptions{ConfigPath: path})
		w.confirm = func(string) (bool, error) { return false, nil }

		require.NoError(t, run(w, out))
		assert.Contains(t, out.String(), "Init cancelled")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "theme: light\n", string(data))
	})

	t.Run("force backs up and overwrites", func(t *testing.T) {
		w, out := testWizard(t, WizardOptions{ConfigPath: path, Yes: true, Force: true})

		require.NoError(t, run(w, out))

		backup, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "theme: light\n", string(backup))
		assert.Contains(t, out.String(), "Backed up config")
	})
}

func TestWizard_PromptError(t *testing.T) {
	w, out := testWizard(t, WizardOptions{})
	w.prompt = func(ConfigOptions) (ConfigOptions, error) { return ConfigOptions{}, errors.New("aborted") }

	require.EqualError(t, run(w, out), "aborted")
	assert.False(t, ConfigExists(w.opts.ConfigPath))
}

func TestValidatePageSize(t *testing.T) {
	assert.NoError(t, validatePageSize(" 12 "))
	assert.Error(t, validatePageSize("0"))
	assert.Error(t, validatePageSize("ten"))
}
