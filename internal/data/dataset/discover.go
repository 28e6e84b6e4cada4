package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// extGlob is the brace set of dataset file extensions.
const extGlob = ".{yaml,yml,json,jsonc}"

// Pattern matches dataset files below a directory.
const Pattern = "**/*" + extGlob

// Discover returns every dataset file below root, sorted. A missing root
// yields no files.
func Discover(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob datasets in %s: %w", root, err)
	}

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	slices.Sort(paths)
	return paths, nil
}

// Resolve turns a dataset reference into a path. An existing file is used
// as is; otherwise ref is treated as a name and looked up under each dir,
// so "projects" finds "<dir>/team/projects.yaml".
func Resolve(ref string, dirs ...string) (string, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return ref, nil
	}

	pattern := "**/" + globMeta.Replace(Name(ref)) + extGlob

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		fsys := os.DirFS(dir)
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return "", fmt.Errorf("glob %s in %s: %w", pattern, dir, err)
		}
		if len(matches) > 0 {
			slices.Sort(matches)
			return filepath.Join(dir, filepath.FromSlash(matches[0])), nil
		}
	}

	return "", fmt.Errorf("dataset %q not found: %w", ref, fs.ErrNotExist)
}

// globMeta escapes doublestar metacharacters so a dataset name matches
// literally.
var globMeta = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// Name returns the lookup name of a dataset file, its base name without
// a dataset extension.
func Name(path string) string {
	base := filepath.Base(path)
	switch ext := filepath.Ext(base); ext {
	case ".yaml", ".yml", ".json", ".jsonc":
		return strings.TrimSuffix(base, ext)
	}
	return base
}
