package transport

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/preview"
)

// session is one rendering surface showing one project.
type session struct {
	projectID string
	conn      *Conn
	store     *preview.Store
}

func (s *Server) servePreview(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	appID := r.URL.Query().Get("app")

	// Projects are shared with the save path, so lookups and store setup
	// happen on the loop.
	s.loop.Lock()
	project, err := s.registry.Project(r.Context(), projectID)
	s.loop.Unlock()
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("transport: upgrade failed", "project", projectID, "error", err)
		return
	}

	sess := &session{projectID: projectID, conn: newConn(ws, s.timeout)}

	s.loop.Lock()
	sess.store = preview.New(preview.Init{
		Mode:       s.mode,
		Project:    project,
		Components: s.components,
		IDs:        s.ids,
		Logger:     s.logger,
	})

	// Selection and highlight go back to the surface and to the bound app.
	outbound := fanout{sess.conn}
	if appID != "" {
		if _, ok := s.app(appID); !ok {
			s.logger.Info("transport: preview bound to app that is not connected yet", "app", appID, "project", projectID)
		}
		ref := appRef{server: s, id: appID}
		sess.store.SetApp(ref)
		outbound = append(outbound, ref)
	}
	sess.store.SetSender(outbound)
	s.loop.Unlock()

	s.connMu.Lock()
	s.previews[sess] = struct{}{}
	s.connMu.Unlock()

	s.logger.Info("transport: preview connected", "project", projectID, "app", appID)

	defer func() {
		s.connMu.Lock()
		delete(s.previews, sess)
		s.connMu.Unlock()
		sess.conn.close()
		s.loop.Lock()
		sess.store.Close()
		s.loop.Unlock()
		s.logger.Info("transport: preview disconnected", "project", projectID)
	}()

	for {
		data, err := sess.conn.next()
		if err != nil {
			return
		}
		m, err := message.Decode(data)
		if err != nil {
			s.logger.Warn("transport: bad preview message", "project", projectID, "error", err)
			continue
		}
		s.dispatchPreview(sess, m)
	}
}

// appRef addresses an app by id and resolves its connection at send time,
// so a preview keeps reaching the app across reconnects.
type appRef struct {
	server *Server
	id     string
}

func (a appRef) ID() string { return a.id }

func (a appRef) Send(m message.Message) error {
	app, ok := a.server.app(a.id)
	if !ok {
		return fmt.Errorf("app %q not connected", a.id)
	}
	return app.Send(m)
}

func (s *Server) dispatchPreview(sess *session, m message.Message) {
	s.loop.Lock()
	defer s.loop.Unlock()

	store := sess.store

	switch p := m.Payload.(type) {
	case message.PointerPayload:
		// The highlight belongs to the project, so clearing it needs no element.
		if m.Type == message.TypeHighlightedElementRemove {
			store.OnHighlightedElementRemove(preview.Target{Node: remoteNode(p.Node)})
			return
		}

		el, ok := store.ElementByID(p.ElementID)
		if !ok {
			s.logger.Debug("transport: event for unknown element", "type", m.Type, "element", p.ElementID)
			return
		}
		target := preview.Target{Element: el, Node: remoteNode(p.Node)}
		event := &preview.SyntheticEvent{Modifier: p.MetaKey}

		switch m.Type {
		case message.TypeElementClick:
			store.OnElementClick(event, target)
		case message.TypeElementMouseOver:
			store.OnElementMouseOver(event, target)
		}

	case message.KeyboardChangePayload:
		store.SetMetaDown(p.MetaDown)

	case message.ScrollChangePayload:
		store.SetScrollPosition(preview.Point{X: p.X, Y: p.Y})

	case message.ActivatePagePayload:
		page, ok := store.Project().PageByID(p.PageID)
		if !ok {
			s.logger.Debug("transport: unknown page", "page", p.PageID)
			return
		}
		store.SetActivePage(page)

	default:
		if m.Type == message.TypeOutsideClick {
			store.OnOutsideClick(&preview.SyntheticEvent{})
			return
		}
		s.logger.Debug("transport: ignoring preview message", "type", m.Type)
	}
}
