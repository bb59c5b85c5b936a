package preview

import (
	"io"
	"log/slog"
	"testing"

	"github.com/danieljhkim/previewsync/internal/geometry"
	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/model/modeltest"
)

type fakeNode struct {
	rect geometry.Rect
}

func (n *fakeNode) BoundingRect() geometry.Rect { return n.rect }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, mode model.DocumentMode) (*Store, *modeltest.Fixture) {
	t.Helper()
	f := modeltest.New("p1")
	s := New(Init{
		Mode:    mode,
		Project: f.Project,
		IDs:     idgen.Sequence("msg"),
		Logger:  quietLogger(),
	})
	return s, f
}

// snapshot captures everything an interaction handler may touch.
type snapshot struct {
	selected           string
	highlighted        string
	highlightedContent string
	selectionVisible   bool
	selectionNode      geometry.Node
	highlightVisible   bool
	highlightNode      geometry.Node
	box1Selected       bool
	box1Highlighted    bool
}

func takeSnapshot(s *Store, f *modeltest.Fixture) snapshot {
	var snap snapshot
	if el, ok := s.SelectedElement(); ok {
		snap.selected = el.ID()
	}
	if el, ok := s.HighlightedElement(); ok {
		snap.highlighted = el.ID()
	}
	if c, ok := s.HighlightedElementContent(); ok {
		snap.highlightedContent = c.ID()
	}
	snap.selectionVisible = s.SelectionArea().Visible()
	snap.selectionNode, _ = s.SelectionArea().Element()
	snap.highlightVisible = s.HighlightArea().Visible()
	snap.highlightNode, _ = s.HighlightArea().Element()
	snap.box1Selected = f.Box1.Selected()
	snap.box1Highlighted = f.Box1.Highlighted()
	return snap
}
