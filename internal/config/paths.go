// Package config manages previewsync configuration and filesystem paths.
//
// The data root defaults to ~/.previewsync and can be moved with the
// PREVIEWSYNC_ROOT environment variable. It holds the file registry's
// projects/ directory, the SQLite registry database and config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv names the environment variable overriding the data root.
const RootEnv = "PREVIEWSYNC_ROOT"

// Paths contains all the filesystem paths used by previewsync.
type Paths struct {
	// Root is the base directory for all previewsync data.
	Root string

	// Projects holds one document per project for the file registry.
	Projects string

	// Registry is the SQLite registry database.
	Registry string

	// Config is the path to the config file.
	Config string
}

// DefaultPaths returns the paths under PREVIEWSYNC_ROOT, or ~/.previewsync
// when it is unset.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(RootEnv)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".previewsync")
	}
	return PathsAt(root), nil
}

// PathsAt returns the layout rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Projects: filepath.Join(root, "projects"),
		Registry: filepath.Join(root, "registry.db"),
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates the root and projects directories.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Projects} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
