package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danieljhkim/previewsync/internal/clock"
	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model/modeltest"
	"github.com/danieljhkim/previewsync/internal/state"
)

type testServer struct {
	srv      *Server
	url      string
	fixture  *modeltest.Fixture
	saveDir  string
	registry *state.MemoryRegistry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	registry := state.NewMemoryRegistry(clock.Real{})
	f := modeltest.New("p1")
	if err := registry.AddProject(context.Background(), f.Project); err != nil {
		t.Fatal(err)
	}
	saveDir := t.TempDir()

	srv := NewServer(Options{
		Registry: registry,
		Engine:   engine.Deps{LiveRenderSurface: true},
		SaveDir:  saveDir,
		IDs:      idgen.Sequence("srv"),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testServer{srv: srv, url: ts.URL, fixture: f, saveDir: saveDir, registry: registry}
}

func (ts *testServer) dial(t *testing.T, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.url, "http") + path
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) error = %v", path, err)
	}
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func send(t *testing.T, ws *websocket.Conn, m message.Message) {
	t.Helper()
	data, err := message.Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}
}

// receive reads messages until one of type want arrives.
func receive(t *testing.T, ws *websocket.Conn, want message.Type) message.Message {
	t.Helper()
	_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %s: %v", want, err)
		}
		m, err := message.Decode(data)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if m.Type == want {
			return m
		}
	}
}

// waitFor polls until cond holds. Dial returns once the handshake is done,
// which is before the server has registered the connection.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (ts *testServer) waitForApp(t *testing.T, id string) {
	t.Helper()
	waitFor(t, "app "+id, func() bool {
		_, ok := ts.srv.app(id)
		return ok
	})
}

func (ts *testServer) waitForPreviews(t *testing.T, n int) {
	t.Helper()
	waitFor(t, "previews", func() bool {
		ts.srv.connMu.Lock()
		defer ts.srv.connMu.Unlock()
		return len(ts.srv.previews) == n
	})
}

func TestHealthAndProjects(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.url + "/health")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health status = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get(ts.url + "/projects")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	var entries []state.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode /projects: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "p1" {
		t.Errorf("/projects = %+v, want [p1]", entries)
	}
}

func TestPreview_UnknownProject(t *testing.T) {
	ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.url, "http") + "/ws/preview/nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() should fail for an unknown project")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("response = %v, want 404", resp)
	}
}

func TestPreview_ClickSelects(t *testing.T) {
	ts := newTestServer(t)
	app := ts.dial(t, "/ws/app/app-1")
	ts.waitForApp(t, "app-1")
	surface := ts.dial(t, "/ws/preview/p1?app=app-1")
	ts.waitForPreviews(t, 1)

	send(t, surface, message.Message{
		Type: message.TypeElementClick,
		ID:   "ev-1",
		Payload: message.PointerPayload{
			ElementID: "box-1",
			Node:      message.NodeData{ID: "n1", X: 1, Y: 2, Width: 3, Height: 4},
		},
	})

	for _, ws := range []*websocket.Conn{surface, app} {
		m := receive(t, ws, message.TypeSelectElement)
		if m.AppID != "app-1" {
			t.Errorf("AppID = %q, want %q", m.AppID, "app-1")
		}
		p := m.Payload.(message.SelectElementPayload)
		if p.Element.ID != "box-1" || p.ProjectID != "p1" {
			t.Errorf("payload = %+v, want box-1 in p1", p)
		}
	}

	if el, ok := ts.fixture.Project.SelectedElement(); !ok || el.ID() != "box-1" {
		t.Errorf("SelectedElement() = %v, %v; want box-1", el, ok)
	}
}

func TestPreview_ModifierClickAndKeyboard(t *testing.T) {
	ts := newTestServer(t)
	surface := ts.dial(t, "/ws/preview/p1")

	send(t, surface, message.Message{
		Type:    message.TypeKeyboardChange,
		Payload: message.KeyboardChangePayload{MetaDown: true},
	})
	send(t, surface, message.Message{
		Type:    message.TypeElementClick,
		Payload: message.PointerPayload{ElementID: "box-1", MetaKey: true},
	})
	send(t, surface, message.Message{
		Type:    message.TypeElementMouseOver,
		Payload: message.PointerPayload{ElementID: "box-2"},
	})

	// Messages on one connection are handled in order, so the highlight
	// arriving means the click was already processed.
	receive(t, surface, message.TypeHighlightElement)

	if _, ok := ts.fixture.Project.SelectedElement(); ok {
		t.Error("modifier click should not select")
	}
	if el, ok := ts.fixture.Project.HighlightedElement(); !ok || el.ID() != "box-2" {
		t.Errorf("HighlightedElement() = %v, %v; want box-2", el, ok)
	}
}

func TestApp_SaveRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	app := ts.dial(t, "/ws/app/app-1")
	surface := ts.dial(t, "/ws/preview/p1")
	ts.waitForApp(t, "app-1")
	ts.waitForPreviews(t, 1)

	send(t, app, message.Message{
		Type:        message.TypeSave,
		ID:          "req-1",
		Transaction: "tx-1",
		Payload:     message.SavePayload{ProjectID: "p1", Publish: true},
	})

	reply := receive(t, app, message.TypeSaveResult)
	if reply.Transaction != "tx-1" {
		t.Errorf("Transaction = %q, want %q", reply.Transaction, "tx-1")
	}
	saved := reply.Payload.(message.SaveResultPayload).Project
	wantPath := filepath.Join(ts.saveDir, "p1.alva")
	if saved.Path != wantPath || saved.Draft || saved.Name != "p1" {
		t.Errorf("saved = %+v, want non-draft %q at %s", saved, "p1", wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("project file not written: %v", err)
	}

	update := receive(t, surface, message.TypeUpdateProject)
	if p := update.Payload.(message.UpdateProjectPayload); p.Project.Path != wantPath {
		t.Errorf("pushed path = %q, want %q", p.Project.Path, wantPath)
	}
}

func TestPreview_AppReconnect(t *testing.T) {
	tests := []struct {
		name      string
		appFirst  bool
		reconnect bool
	}{
		{name: "app reconnects", appFirst: true, reconnect: true},
		{name: "app connects after preview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			var app *websocket.Conn
			if tt.appFirst {
				app = ts.dial(t, "/ws/app/app-1")
				ts.waitForApp(t, "app-1")
			}
			surface := ts.dial(t, "/ws/preview/p1?app=app-1")
			ts.waitForPreviews(t, 1)

			if tt.reconnect {
				old, _ := ts.srv.app("app-1")
				_ = app.Close()
				app = ts.dial(t, "/ws/app/app-1")
				waitFor(t, "replacement app", func() bool {
					cur, ok := ts.srv.app("app-1")
					return ok && cur != old
				})
			} else {
				app = ts.dial(t, "/ws/app/app-1")
				ts.waitForApp(t, "app-1")
			}

			send(t, surface, message.Message{
				Type:    message.TypeElementClick,
				Payload: message.PointerPayload{ElementID: "box-1"},
			})

			m := receive(t, app, message.TypeSelectElement)
			if m.AppID != "app-1" {
				t.Errorf("AppID = %q, want %q", m.AppID, "app-1")
			}
			if p := m.Payload.(message.SelectElementPayload); p.Element.ID != "box-1" {
				t.Errorf("selected = %q, want box-1", p.Element.ID)
			}
		})
	}
}

func TestPreview_HighlightRemoveWithoutElement(t *testing.T) {
	ts := newTestServer(t)
	surface := ts.dial(t, "/ws/preview/p1")

	send(t, surface, message.Message{
		Type:    message.TypeElementMouseOver,
		Payload: message.PointerPayload{ElementID: "box-2"},
	})
	receive(t, surface, message.TypeHighlightElement)

	// The surface reports the node that left the document; its element may
	// already be gone from the project.
	send(t, surface, message.Message{
		Type: message.TypeHighlightedElementRemove,
		Payload: message.PointerPayload{
			ElementID: "gone",
			Node:      message.NodeData{ID: "n9"},
		},
	})

	waitFor(t, "highlight cleared", func() bool {
		ts.srv.loop.Lock()
		defer ts.srv.loop.Unlock()
		_, ok := ts.fixture.Project.HighlightedElement()
		return !ok
	})
}

func TestProjects_DuringSave(t *testing.T) {
	ts := newTestServer(t)
	app := ts.dial(t, "/ws/app/app-1")
	ts.waitForApp(t, "app-1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			resp, err := http.Get(ts.url + "/projects")
			if err != nil {
				return
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}()

	for i := 0; i < 3; i++ {
		send(t, app, message.Message{
			Type:        message.TypeSave,
			Transaction: "tx",
			Payload:     message.SavePayload{ProjectID: "p1", Publish: true},
		})
		receive(t, app, message.TypeSaveResult)
	}
	<-done

	entries, err := ts.registry.Projects(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Path != filepath.Join(ts.saveDir, "p1.alva") {
		t.Errorf("entries = %+v, want p1 saved under %s", entries, ts.saveDir)
	}
}
