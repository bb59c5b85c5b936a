// Package engine provides the operations previewsync performs on projects.
//
// The engine is the orchestration layer between the CLI or the WebSocket
// transport and the collaborators that do the actual work: the host that
// owns dialogs and files, the project registry, the serializer and the
// model-tree syncer.
//
// Key components:
//   - Engine: holds the collaborators and runs operations
//   - Save: the save pipeline answering save requests from a host
//   - Import/List/Describe/Diff: registry operations used by the CLI
package engine

import (
	"log/slog"

	"github.com/danieljhkim/previewsync/internal/config"
	"github.com/danieljhkim/previewsync/internal/fsops"
	"github.com/danieljhkim/previewsync/internal/hash"
	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/modeltree"
	"github.com/danieljhkim/previewsync/internal/persist"
	"github.com/danieljhkim/previewsync/internal/state"
)

// Engine runs previewsync operations.
type Engine struct {
	host       Host
	registry   state.Registry
	serializer persist.Serializer
	syncer     modeltree.Syncer
	fs         fsops.FS
	hasher     hash.Hasher
	ids        idgen.Generator
	logger     *slog.Logger
	names      SaveNames

	// liveRenderSurface makes saves push the saved project to the host's
	// sender. It is decided by whoever builds the engine.
	liveRenderSurface bool
}

// Deps are the collaborators of an Engine.
type Deps struct {
	Host       Host
	Registry   state.Registry
	Serializer persist.Serializer
	Syncer     modeltree.Syncer
	FS         fsops.FS
	Hasher     hash.Hasher
	IDs        idgen.Generator
	Logger     *slog.Logger
	Names      SaveNames

	LiveRenderSurface bool
}

// New creates an Engine. Missing optional collaborators get defaults: the
// JSON serializer, a model-tree pusher, the real filesystem, SHA-256
// digests, UUID ids and the default logger.
func New(deps Deps) *Engine {
	e := &Engine{
		host:              deps.Host,
		registry:          deps.Registry,
		serializer:        deps.Serializer,
		syncer:            deps.Syncer,
		fs:                deps.FS,
		hasher:            deps.Hasher,
		ids:               deps.IDs,
		logger:            deps.Logger,
		names:             deps.Names,
		liveRenderSurface: deps.LiveRenderSurface,
	}
	if e.ids == nil {
		e.ids = idgen.Default
	}
	if e.serializer == nil {
		e.serializer = persist.NewJSONSerializer()
	}
	if e.syncer == nil {
		e.syncer = modeltree.New(e.ids)
	}
	if e.fs == nil {
		e.fs = fsops.NewRealFS()
	}
	if e.hasher == nil {
		e.hasher = hash.NewSHA256Hasher()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.names == (SaveNames{}) {
		e.names = DefaultSaveNames()
	}
	return e
}

// Registry returns the engine's project registry.
func (e *Engine) Registry() state.Registry {
	return e.registry
}

// SaveNames are the user-facing strings of the save dialog.
type SaveNames struct {
	// Extension is the project file extension, without a dot.
	Extension string
	// FallbackName names projects whose name was never changed from their id.
	FallbackName string
	DialogTitle  string
	FilterName   string
}

// DefaultSaveNames returns the names used when none are configured.
func DefaultSaveNames() SaveNames {
	return SaveNamesFromConfig(config.Default().Save)
}

// SaveNamesFromConfig maps the save section of config.yaml.
func SaveNamesFromConfig(c config.SaveConfig) SaveNames {
	return SaveNames{
		Extension:    c.Extension,
		FallbackName: c.FallbackName,
		DialogTitle:  c.DialogTitle,
		FilterName:   c.FilterName,
	}
}
