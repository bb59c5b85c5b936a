package preview

import (
	"log/slog"

	"github.com/danieljhkim/previewsync/internal/action"
	"github.com/danieljhkim/previewsync/internal/geometry"
	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/observe"
)

// Point is a scroll position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Init carries the dependencies of a Store.
type Init struct {
	Mode       model.DocumentMode
	Project    *model.Project
	Components Components

	// SelectionArea and HighlightArea default to fresh trackers.
	SelectionArea *geometry.Tracker
	HighlightArea *geometry.Tracker

	// Actions defaults to action.DefaultRegistry.
	Actions *action.Registry
	// IDs generates outbound message ids. Defaults to idgen.Default.
	IDs    idgen.Generator
	Logger *slog.Logger
}

// Store is the preview's reactive state.
type Store struct {
	mode    model.DocumentMode
	project *model.Project

	metaDown   *observe.Value[bool]
	scroll     *observe.Value[Point]
	app        *observe.Value[message.App]
	sender     *observe.Value[message.Sender]
	components *observe.Value[Components]

	selectionArea *geometry.Tracker
	highlightArea *geometry.Tracker

	actions *action.Registry
	newID   idgen.Generator
	logger  *slog.Logger

	changes observe.Notifier
	detach  func()
}

// New creates a Store. An empty mode means Live.
func New(init Init) *Store {
	s := &Store{
		mode:          init.Mode,
		project:       init.Project,
		metaDown:      observe.NewValue(false),
		scroll:        observe.NewValue(Point{}),
		app:           observe.NewValue[message.App](nil),
		sender:        observe.NewValue[message.Sender](nil),
		components:    observe.NewValue(init.Components),
		selectionArea: init.SelectionArea,
		highlightArea: init.HighlightArea,
		actions:       init.Actions,
		newID:         init.IDs,
		logger:        init.Logger,
	}
	if s.mode == "" {
		s.mode = model.ModeLive
	}
	if s.selectionArea == nil {
		s.selectionArea = geometry.NewTracker()
	}
	if s.highlightArea == nil {
		s.highlightArea = geometry.NewTracker()
	}
	if s.newID == nil {
		s.newID = idgen.Default
	}
	if s.actions == nil {
		s.actions = action.DefaultRegistry(s.newID)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.metaDown.Subscribe(s.changes.Notify)
	s.scroll.Subscribe(s.changes.Notify)
	s.app.Subscribe(s.changes.Notify)
	s.sender.Subscribe(s.changes.Notify)
	s.components.Subscribe(s.changes.Notify)
	s.selectionArea.Subscribe(s.changes.Notify)
	s.highlightArea.Subscribe(s.changes.Notify)
	s.detach = func() {}
	if s.project != nil {
		s.detach = s.project.Subscribe(s.changes.Notify)
	}

	return s
}

// Close stops forwarding project changes to the store's observers. The
// project outlives the store when several previews show it.
func (s *Store) Close() {
	s.detach()
}

// Subscribe registers fn to run after any change to the store, its
// trackers or its project.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	return s.changes.Subscribe(fn)
}

func (s *Store) Mode() model.DocumentMode         { return s.mode }
func (s *Store) Project() *model.Project          { return s.project }
func (s *Store) SelectionArea() *geometry.Tracker { return s.selectionArea }
func (s *Store) HighlightArea() *geometry.Tracker { return s.highlightArea }
func (s *Store) MetaDown() bool                   { return s.metaDown.Get() }

// ScrollPosition returns the last reported scroll position, the origin if
// none was reported.
func (s *Store) ScrollPosition() Point {
	return s.scroll.Get()
}

// App returns the bound host app, or nil.
func (s *Store) App() message.App {
	return s.app.Get()
}

// Sender returns the outbound sender, or nil.
func (s *Store) Sender() message.Sender {
	return s.sender.Get()
}

// Components returns the component registry.
func (s *Store) Components() Components {
	return s.components.Get()
}

// SetMetaDown records whether a modifier key is held.
func (s *Store) SetMetaDown(down bool) {
	s.metaDown.Set(down)
}

// SetScrollPosition records the surface scroll position.
func (s *Store) SetScrollPosition(p Point) {
	s.scroll.Set(p)
}

// SetApp binds the host app.
func (s *Store) SetApp(app message.App) {
	s.app.Set(app)
}

// SetSender sets the outbound sender.
func (s *Store) SetSender(sender message.Sender) {
	s.sender.Set(sender)
}

// SetComponents replaces the component registry.
func (s *Store) SetComponents(c Components) {
	s.components.Set(c)
}

// ActivePage returns the project's active page.
func (s *Store) ActivePage() (*model.Page, bool) {
	return s.project.ActivePage()
}

// ElementByID looks an element up in the project.
func (s *Store) ElementByID(id string) (*model.Element, bool) {
	return s.project.ElementByID(id)
}

// SelectedElement returns the project's selected element.
func (s *Store) SelectedElement() (*model.Element, bool) {
	return s.project.SelectedElement()
}

// HighlightedElement returns the project's highlighted element.
func (s *Store) HighlightedElement() (*model.Element, bool) {
	return s.project.HighlightedElement()
}

// HighlightedElementContent returns the project's highlighted content.
func (s *Store) HighlightedElementContent() (*model.ElementContent, bool) {
	return s.project.HighlightedElementContent()
}

// HasSelectedItem reports whether an element is selected.
func (s *Store) HasSelectedItem() bool {
	_, ok := s.project.SelectedElement()
	return ok
}

// HasHighlightedItem reports whether an element or a content is highlighted.
func (s *Store) HasHighlightedItem() bool {
	_, hasElement := s.project.HighlightedElement()
	_, hasContent := s.project.HighlightedElementContent()
	return hasElement || hasContent
}

// actionSender is the sender actions run with: the bound app when present,
// the raw sender otherwise.
func (s *Store) actionSender() message.Sender {
	if app := s.App(); app != nil {
		return app
	}
	return s.Sender()
}

// send delivers m through the raw sender. Without one, nothing is sent.
func (s *Store) send(m message.Message) {
	sender := s.Sender()
	if sender == nil {
		return
	}
	if err := sender.Send(m); err != nil {
		s.logger.Warn("preview: send failed", "type", m.Type, "id", m.ID, "error", err)
	}
}
