// Package transport connects host apps and rendering surfaces to previewsync
// over WebSockets.
//
// Routes:
//
//	GET /health                   liveness
//	GET /projects                 registry listing as JSON
//	GET /ws/app/{appID}           host channel: save requests and replies
//	GET /ws/preview/{projectID}   surface channel: pointer, keyboard, scroll
//	                              and page events in, selection and
//	                              highlight out (?app= binds a host app)
//
// Every inbound message from every connection is handled under one lock,
// which plays the part of the single event loop the preview store and the
// save pipeline expect.
package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/fsops"
	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/preview"
	"github.com/danieljhkim/previewsync/internal/state"
)

// Options configure a Server.
type Options struct {
	Registry state.Registry

	// Engine carries the save pipeline's collaborators. Host and Registry
	// are filled in by the server.
	Engine engine.Deps

	// FS and SaveDir back the server's host: publishing saves land in
	// SaveDir under the dialog's default file name.
	FS      fsops.FS
	SaveDir string

	// Mode is the document mode of preview sessions. Defaults to Live.
	Mode       model.DocumentMode
	Components preview.Components

	IDs          idgen.Generator
	Logger       *slog.Logger
	WriteTimeout time.Duration
}

// Server routes WebSocket traffic to preview stores and the save pipeline.
type Server struct {
	registry   state.Registry
	engine     *engine.Engine
	mode       model.DocumentMode
	components preview.Components
	ids        idgen.Generator
	logger     *slog.Logger
	timeout    time.Duration
	upgrader   websocket.Upgrader

	// loop serializes all message handling.
	loop sync.Mutex

	connMu   sync.Mutex
	apps     map[string]*AppConn
	previews map[*session]struct{}
}

// NewServer creates a Server.
func NewServer(opts Options) *Server {
	s := &Server{
		registry:   opts.Registry,
		mode:       opts.Mode,
		components: opts.Components,
		ids:        opts.IDs,
		logger:     opts.Logger,
		timeout:    opts.WriteTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		apps:     make(map[string]*AppConn),
		previews: make(map[*session]struct{}),
	}
	if s.mode == "" {
		s.mode = model.ModeLive
	}
	if s.ids == nil {
		s.ids = idgen.Default
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.timeout == 0 {
		s.timeout = 10 * time.Second
	}
	fs := opts.FS
	if fs == nil {
		fs = fsops.NewRealFS()
	}

	deps := opts.Engine
	deps.Host = &serverHost{server: s, fs: fs, saveDir: opts.SaveDir}
	deps.Registry = opts.Registry
	if deps.IDs == nil {
		deps.IDs = s.ids
	}
	if deps.Logger == nil {
		deps.Logger = s.logger
	}
	s.engine = engine.New(deps)

	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
		s.loop.Lock()
		entries, err := s.registry.Projects(r.Context())
		s.loop.Unlock()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if entries == nil {
			entries = []state.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
	})

	r.Get("/ws/app/{appID}", s.serveApp)
	r.Get("/ws/preview/{projectID}", s.servePreview)

	return r
}

func (s *Server) serveApp(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("transport: upgrade failed", "app", appID, "error", err)
		return
	}
	app := &AppConn{Conn: newConn(ws, s.timeout), id: appID}

	s.connMu.Lock()
	if old, ok := s.apps[appID]; ok {
		old.close()
	}
	s.apps[appID] = app
	s.connMu.Unlock()

	s.logger.Info("transport: app connected", "app", appID)

	defer func() {
		s.connMu.Lock()
		if s.apps[appID] == app {
			delete(s.apps, appID)
		}
		s.connMu.Unlock()
		app.close()
		s.logger.Info("transport: app disconnected", "app", appID)
	}()

	for {
		data, err := app.next()
		if err != nil {
			return
		}
		m, err := message.Decode(data)
		if err != nil {
			s.logger.Warn("transport: bad app message", "app", appID, "error", err)
			continue
		}
		if m.AppID == "" {
			m.AppID = appID
		}
		s.dispatchApp(r.Context(), m)
	}
}

func (s *Server) dispatchApp(ctx context.Context, m message.Message) {
	s.loop.Lock()
	defer s.loop.Unlock()

	switch m.Type {
	case message.TypeSave:
		outcome := s.engine.Save(ctx, m, engine.SaveConfig{})
		s.logger.Debug("transport: save handled", "transaction", m.Transaction, "state", outcome.State, "path", outcome.Path)
	default:
		s.logger.Debug("transport: ignoring app message", "type", m.Type)
	}
}

// app returns the connected app with id.
func (s *Server) app(id string) (*AppConn, bool) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	app, ok := s.apps[id]
	return app, ok
}

// surfaceSender delivers update-project messages to the previews showing
// that project.
type surfaceSender struct {
	server *Server
}

func (ss surfaceSender) Send(m message.Message) error {
	projectID := ""
	if p, ok := m.Payload.(message.UpdateProjectPayload); ok {
		projectID = p.Project.ID
	}

	ss.server.connMu.Lock()
	var targets fanout
	for sess := range ss.server.previews {
		if projectID == "" || sess.projectID == projectID {
			targets = append(targets, sess.conn)
		}
	}
	ss.server.connMu.Unlock()

	return targets.Send(m)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
