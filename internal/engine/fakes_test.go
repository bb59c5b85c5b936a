package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
)

// fakeHost records everything the save pipeline asks of it.
type fakeHost struct {
	mu sync.Mutex

	apps     map[string]message.App
	savePath string
	saveErr  error
	mkdirErr error
	writeErr error
	sender   message.Sender

	logs    []string
	dialogs []SaveFileOptions
	dirs    []string
	files   map[string][]byte
}

func newFakeHost(apps ...*message.Recorder) *fakeHost {
	h := &fakeHost{apps: make(map[string]message.App), files: make(map[string][]byte)}
	for _, app := range apps {
		h.apps[app.ID()] = app
	}
	return h
}

func (h *fakeHost) Log(msg string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logs = append(h.logs, fmt.Sprint(append([]any{msg}, args...)...))
}

func (h *fakeHost) App(ctx context.Context, id string) (message.App, error) {
	app, ok := h.apps[id]
	if !ok {
		return nil, nil
	}
	return app, nil
}

func (h *fakeHost) SelectSaveFile(ctx context.Context, opts SaveFileOptions) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialogs = append(h.dialogs, opts)
	return h.savePath, h.saveErr
}

func (h *fakeHost) Mkdir(ctx context.Context, dir string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.mkdirErr != nil {
		return h.mkdirErr
	}
	h.dirs = append(h.dirs, dir)
	return nil
}

func (h *fakeHost) WriteFile(ctx context.Context, path string, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.writeErr != nil {
		return h.writeErr
	}
	h.files[path] = data
	return nil
}

func (h *fakeHost) Sender(ctx context.Context) (message.Sender, error) {
	return h.sender, nil
}

// failingSerializer always fails with err.
type failingSerializer struct {
	err error
}

func (s failingSerializer) Serialize(*model.Project) ([]byte, error) { return nil, s.err }
func (s failingSerializer) Deserialize([]byte) (*model.Project, error) {
	return nil, errors.New("not implemented")
}

// recordingSyncer records the projects pushed through it.
type recordingSyncer struct {
	synced  []string
	senders []message.Sender
}

func (s *recordingSyncer) Sync(p *model.Project, sender message.Sender) error {
	s.synced = append(s.synced, p.ID())
	s.senders = append(s.senders, sender)
	return nil
}
