package engine

import (
	"context"

	"github.com/danieljhkim/previewsync/internal/message"
)

// Host is the application the engine runs inside. It owns the user's
// apps, dialogs and files.
type Host interface {
	// Log records a diagnostic line.
	Log(msg string, args ...any)

	// App resolves a connected app by id. A nil app means none.
	App(ctx context.Context, id string) (message.App, error)

	// SelectSaveFile asks the user for a destination. An empty path means
	// the user cancelled.
	SelectSaveFile(ctx context.Context, opts SaveFileOptions) (string, error)

	// Mkdir creates dir and its parents. Existing directories are fine.
	Mkdir(ctx context.Context, dir string) error

	// WriteFile writes data to path.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Sender returns the channel to the rendering surface, or nil.
	Sender(ctx context.Context) (message.Sender, error)
}

// SaveFileOptions configures a save dialog.
type SaveFileOptions struct {
	Title       string
	DefaultPath string
	Filters     []FileFilter
}

// FileFilter restricts a save dialog to some extensions.
type FileFilter struct {
	Name       string
	Extensions []string
}
