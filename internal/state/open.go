package state

import (
	"fmt"

	"github.com/danieljhkim/previewsync/internal/clock"
	"github.com/danieljhkim/previewsync/internal/config"
	"github.com/danieljhkim/previewsync/internal/fsops"
)

// Open returns the registry selected by cfg.Registry.Driver.
func Open(cfg *config.Config, paths *config.Paths, fs fsops.FS, clk clock.Clock) (Registry, error) {
	switch cfg.Registry.Driver {
	case config.DriverFile, "":
		return NewFileRegistry(fs, paths.Projects, clk), nil
	case config.DriverSQLite:
		return OpenSQLiteRegistry(paths.Registry, clk)
	default:
		return nil, fmt.Errorf("unknown registry driver %q", cfg.Registry.Driver)
	}
}
