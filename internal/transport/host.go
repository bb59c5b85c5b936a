package transport

import (
	"context"
	"path/filepath"

	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/fsops"
	"github.com/danieljhkim/previewsync/internal/message"
)

// serverHost is the engine host of a running server. It has no user to
// ask, so publishing saves go to the save directory under the dialog's
// default name.
type serverHost struct {
	server  *Server
	fs      fsops.FS
	saveDir string
}

func (h *serverHost) Log(msg string, args ...any) {
	h.server.logger.Info(msg, args...)
}

func (h *serverHost) App(ctx context.Context, id string) (message.App, error) {
	app, ok := h.server.app(id)
	if !ok {
		return nil, nil
	}
	return app, nil
}

func (h *serverHost) SelectSaveFile(ctx context.Context, opts engine.SaveFileOptions) (string, error) {
	if h.saveDir == "" || opts.DefaultPath == "" {
		return "", nil
	}
	return filepath.Join(h.saveDir, filepath.Base(opts.DefaultPath)), nil
}

func (h *serverHost) Mkdir(ctx context.Context, dir string) error {
	return h.fs.MkdirAll(dir, 0755)
}

func (h *serverHost) WriteFile(ctx context.Context, path string, data []byte) error {
	return h.fs.AtomicWrite(path, data, 0644)
}

func (h *serverHost) Sender(ctx context.Context) (message.Sender, error) {
	return surfaceSender{server: h.server}, nil
}
