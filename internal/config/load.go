package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loaded is the materialized config plus where it came from.
type Loaded struct {
	Path     string
	Exists   bool
	Config   Config
	Warnings []Warning
}

// Load resolves explicitPath, then reads and validates it. A missing file yields defaults.
func Load(explicitPath string) (Loaded, error) {
	path, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	loaded := Loaded{Path: path, Config: Default()}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		loaded.Warnings = []Warning{{Message: fmt.Sprintf("config file %q not found; using defaults", path)}}
		return loaded, nil
	case err != nil:
		return Loaded{}, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, warnings, err := Parse(string(content), loaded.Config)
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	loaded.Exists = true
	loaded.Config = cfg
	loaded.Warnings = warnings
	return loaded, nil
}
