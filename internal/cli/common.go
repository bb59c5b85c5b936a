package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/danieljhkim/previewsync/internal/clock"
	"github.com/danieljhkim/previewsync/internal/config"
	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/fsops"
	"github.com/danieljhkim/previewsync/internal/state"
)

// env is everything a command needs: resolved paths and config, a logger,
// and the project registry the engine runs against.
type env struct {
	paths    *config.Paths
	cfg      *config.Config
	fs       fsops.FS
	logger   *slog.Logger
	registry state.Registry
}

// newEnv resolves paths, loads config and opens the registry. Callers must
// call close.
func newEnv() (*env, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	path := configPath
	if path == "" {
		path = paths.Config
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	registry, err := state.Open(cfg, paths, fs, clock.Real{})
	if err != nil {
		return nil, fmt.Errorf("failed to open project registry: %w", err)
	}

	return &env{paths: paths, cfg: cfg, fs: fs, logger: logger, registry: registry}, nil
}

// engine creates an engine over the env's registry with host as its host.
func (e *env) engine(host engine.Host) *engine.Engine {
	return engine.New(engine.Deps{
		Host:     host,
		Registry: e.registry,
		FS:       e.fs,
		Logger:   e.logger,
		Names:    engine.SaveNamesFromConfig(e.cfg.Save),
	})
}

func (e *env) close() {
	if err := e.registry.Close(); err != nil {
		e.logger.Warn("cli: failed to close registry", "error", err)
	}
}

// newLogger builds the slog logger described by c.
func newLogger(c config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch c.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
