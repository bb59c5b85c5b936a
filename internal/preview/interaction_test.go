package preview

import (
	"testing"

	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
)

func TestOnElementClick_SelectsAndNotifies(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)
	app := message.NewRecorder("app-1")
	sender := message.NewRecorder("")
	s.SetApp(app)
	s.SetSender(sender)

	node := &fakeNode{}
	ev := &SyntheticEvent{}
	s.OnElementClick(ev, Target{Element: f.Box1, Node: node})

	if !ev.DefaultPrevented || !ev.PropagationStopped {
		t.Errorf("event = %+v, want default prevented and propagation stopped", ev)
	}
	if el, ok := s.SelectedElement(); !ok || el != f.Box1 {
		t.Errorf("SelectedElement() = %v, %v; want box-1", el, ok)
	}
	if !s.SelectionArea().Visible() {
		t.Error("selection area should be visible")
	}
	if got, _ := s.SelectionArea().Element(); got != node {
		t.Errorf("selection area tracks %v, want clicked node", got)
	}

	msgs := sender.OfType(message.TypeSelectElement)
	if len(msgs) != 1 {
		t.Fatalf("got %d select messages, want 1", len(msgs))
	}
	m := msgs[0]
	if m.ID != "msg-1" {
		t.Errorf("ID = %q, want %q", m.ID, "msg-1")
	}
	if m.AppID != "app-1" {
		t.Errorf("AppID = %q, want %q", m.AppID, "app-1")
	}
	payload, ok := m.Payload.(message.SelectElementPayload)
	if !ok {
		t.Fatalf("Payload = %T, want SelectElementPayload", m.Payload)
	}
	if payload.Element.ID != "box-1" {
		t.Errorf("Element.ID = %q, want %q", payload.Element.ID, "box-1")
	}
	if payload.ProjectID != "p1" {
		t.Errorf("ProjectID = %q, want %q", payload.ProjectID, "p1")
	}
	if len(app.Messages()) != 0 {
		t.Error("outbound messages go through the sender, not the app")
	}
}

func TestOnElementClick_RootClearsSelection(t *testing.T) {
	for _, mode := range []model.DocumentMode{model.ModeLive, model.ModeDesign} {
		t.Run(string(mode), func(t *testing.T) {
			s, f := newTestStore(t, mode)
			f.Project.SetSelectedElement(f.Box1)

			s.OnElementClick(&SyntheticEvent{}, Target{Element: f.Root, Node: &fakeNode{}})

			if _, ok := s.SelectedElement(); ok {
				t.Error("clicking the root should clear the selection")
			}
			if f.Root.Selected() {
				t.Error("root must never be selected")
			}
			if s.SelectionArea().Visible() {
				t.Error("selection area should be hidden for the root")
			}
		})
	}
}

func TestOnElementClick_ModifierKeepsSelection(t *testing.T) {
	modes := []model.DocumentMode{model.ModeLive, model.ModeStatic, model.ModeDesign}
	for _, mode := range modes {
		t.Run(string(mode), func(t *testing.T) {
			s, f := newTestStore(t, mode)
			sender := message.NewRecorder("")
			s.SetSender(sender)
			f.Project.SetSelectedElement(f.Box2)
			before := takeSnapshot(s, f)

			ev := &SyntheticEvent{Modifier: true}
			s.OnElementClick(ev, Target{Element: f.Box1, Node: &fakeNode{}})

			if after := takeSnapshot(s, f); after != before {
				t.Errorf("state changed: before %+v, after %+v", before, after)
			}
			if ev.PropagationStopped {
				t.Error("propagation should not be stopped on modifier click")
			}
			if ev.DefaultPrevented != (mode != model.ModeStatic) {
				t.Errorf("DefaultPrevented = %v in mode %s", ev.DefaultPrevented, mode)
			}
			if len(sender.Messages()) != 0 {
				t.Errorf("got %d messages, want none", len(sender.Messages()))
			}
		})
	}
}

func TestOnElementClick_StaticIsNoOp(t *testing.T) {
	s, f := newTestStore(t, model.ModeStatic)
	sender := message.NewRecorder("")
	s.SetSender(sender)
	before := takeSnapshot(s, f)

	ev := &SyntheticEvent{}
	s.OnElementClick(ev, Target{Element: f.Box1, Node: &fakeNode{}})

	if after := takeSnapshot(s, f); after != before {
		t.Errorf("state changed: before %+v, after %+v", before, after)
	}
	if ev.DefaultPrevented || ev.PropagationStopped {
		t.Errorf("event = %+v, want untouched in static mode", ev)
	}
	if len(sender.Messages()) != 0 {
		t.Error("static click should not send")
	}
}

func TestOnElementMouseOver(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)
	sender := message.NewRecorder("")
	s.SetSender(sender)
	node := &fakeNode{}

	s.OnElementMouseOver(&SyntheticEvent{}, Target{Element: f.Box1, Node: node})

	if el, ok := s.HighlightedElement(); !ok || el != f.Box1 {
		t.Errorf("HighlightedElement() = %v, %v; want box-1", el, ok)
	}
	if !s.HighlightArea().Visible() {
		t.Error("highlight area should be visible")
	}
	m, ok := sender.Last()
	if !ok || m.Type != message.TypeHighlightElement {
		t.Fatalf("last message = %+v, want highlight-element", m)
	}
	if m.AppID != "" {
		t.Errorf("AppID = %q, want empty without a bound app", m.AppID)
	}
	if p := m.Payload.(message.HighlightElementPayload); p.Element.ID != "box-1" {
		t.Errorf("Element.ID = %q, want %q", p.Element.ID, "box-1")
	}

	s.OnElementMouseOver(&SyntheticEvent{}, Target{Element: f.Root, Node: &fakeNode{}})

	if _, ok := s.HighlightedElement(); ok {
		t.Error("hovering the root should clear the highlight")
	}
	if s.HighlightArea().Visible() {
		t.Error("highlight area should be hidden for the root")
	}
}

func TestNonLiveHandlersAreNoOps(t *testing.T) {
	for _, mode := range []model.DocumentMode{model.ModeStatic, model.ModeDesign} {
		t.Run(string(mode), func(t *testing.T) {
			s, f := newTestStore(t, mode)
			sender := message.NewRecorder("")
			s.SetSender(sender)
			f.Project.SetSelectedElement(f.Box2)
			f.Project.SetHighlightedElement(f.Box2)
			f.Project.SetHighlightedElementContent(f.BoxFooter)
			before := takeSnapshot(s, f)

			target := Target{Element: f.Box1, Node: &fakeNode{}}
			s.OnElementMouseOver(&SyntheticEvent{}, target)
			s.OnHighlightedElementRemove(target)
			s.OnOutsideClick(&SyntheticEvent{})
			s.UpdateSelectedElement(target)
			s.UpdateHighlightedElement(target)

			if after := takeSnapshot(s, f); after != before {
				t.Errorf("state changed: before %+v, after %+v", before, after)
			}
			if len(sender.Messages()) != 0 {
				t.Errorf("got %d messages, want none", len(sender.Messages()))
			}
		})
	}
}

func TestOnHighlightedElementRemove(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)
	f.Project.SetHighlightedElement(f.Box1)
	f.Project.SetHighlightedElementContent(f.BoxFooter)

	s.OnHighlightedElementRemove(Target{Element: f.Box1})

	if s.HasHighlightedItem() {
		t.Error("highlights should be cleared")
	}
}

func TestOnOutsideClick(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)
	f.Project.SetSelectedElement(f.Box1)
	f.Project.SetHighlightedElement(f.Box2)
	f.Project.SetHighlightedElementContent(f.BoxFooter)

	s.OnOutsideClick(&SyntheticEvent{})

	if s.HasSelectedItem() || s.HasHighlightedItem() {
		t.Error("outside click should clear selection and highlights")
	}
	if f.Box1.Selected() || f.Box2.Highlighted() {
		t.Error("element flags should be cleared")
	}
}

func TestSetHighlightedElement_RootIgnored(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)

	s.SetHighlightedElement(f.Root)

	if _, ok := s.HighlightedElement(); ok {
		t.Error("root must never be highlighted")
	}
}

func TestSetActivePage(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)

	s.SetActivePage(f.Second)

	active := 0
	for _, p := range f.Project.Pages() {
		if p.Active() {
			active++
		}
	}
	if active != 1 || !f.Second.Active() {
		t.Errorf("active pages = %d, second active = %v; want exactly page-2", active, f.Second.Active())
	}
}

func TestSendWithoutSender(t *testing.T) {
	s, f := newTestStore(t, model.ModeLive)

	s.OnElementClick(&SyntheticEvent{}, Target{Element: f.Box1})

	if el, ok := s.SelectedElement(); !ok || el != f.Box1 {
		t.Error("selection should change even without a sender")
	}
}

func TestSetters_Notify(t *testing.T) {
	s, _ := newTestStore(t, model.ModeLive)
	calls := 0
	s.Subscribe(func() { calls++ })

	s.SetMetaDown(true)
	s.SetScrollPosition(Point{X: 1, Y: 2})
	s.SetApp(message.NewRecorder("a"))
	s.SetSender(message.NewRecorder(""))
	s.SetComponents(Components{})

	if calls != 5 {
		t.Errorf("notifications = %d, want 5", calls)
	}
	if !s.MetaDown() {
		t.Error("MetaDown() = false, want true")
	}
	if got := s.ScrollPosition(); got != (Point{X: 1, Y: 2}) {
		t.Errorf("ScrollPosition() = %+v, want {1 2}", got)
	}
}
