package preview

import (
	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
)

// OnElementClick selects the clicked element.
//
// Outside Static mode the default action is always prevented. A held
// modifier key, or Static mode, leaves the selection alone so links and
// other native behavior pass through.
func (s *Store) OnElementClick(e Event, t Target) {
	if s.mode != model.ModeStatic {
		e.PreventDefault()
	}

	if e.ModifierKey() || s.mode == model.ModeStatic {
		return
	}

	e.StopPropagation()

	s.UpdateSelectedElement(t)

	if t.Element.IsRoot() {
		s.project.UnsetSelectedElement()
	} else {
		s.project.SetSelectedElement(t.Element)
	}

	s.send(message.NewSelectElement(s.newID(), message.AppID(s.App()), t.Element, s.project.ID()))
}

// OnElementMouseOver highlights the hovered element. Live mode only.
func (s *Store) OnElementMouseOver(e Event, t Target) {
	if s.mode != model.ModeLive {
		return
	}

	s.UpdateHighlightedElement(t)

	if t.Element.IsRoot() {
		s.project.UnsetHighlightedElement()
	} else {
		s.SetHighlightedElement(t.Element)
	}

	s.send(message.NewHighlightElement(s.newID(), message.AppID(s.App()), t.Element))
}

// UpdateSelectedElement moves the selection area to t's node, hidden for
// root elements. Live mode only.
func (s *Store) UpdateSelectedElement(t Target) {
	if s.mode != model.ModeLive {
		return
	}

	s.selectionArea.SetElement(t.Node)

	if t.Element.IsRoot() {
		s.selectionArea.Hide()
	} else {
		s.selectionArea.Show()
	}
}

// UpdateHighlightedElement moves the highlight area to t's node, hidden for
// root elements. Live mode only.
func (s *Store) UpdateHighlightedElement(t Target) {
	if s.mode != model.ModeLive {
		return
	}

	s.highlightArea.SetElement(t.Node)

	if t.Element.IsRoot() {
		s.highlightArea.Hide()
	} else {
		s.highlightArea.Show()
	}
}

// OnHighlightedElementRemove clears element and content highlights when the
// hovered node leaves the document. Live mode only.
func (s *Store) OnHighlightedElementRemove(t Target) {
	if s.mode != model.ModeLive {
		return
	}

	s.project.UnsetHighlightedElement()
	s.project.UnsetHighlightedElementContent()
}

// OnOutsideClick deselects and unhighlights everything. Live mode only.
func (s *Store) OnOutsideClick(e Event) {
	if s.mode != model.ModeLive {
		return
	}

	s.project.UnsetSelectedElement()
	s.project.UnsetHighlightedElement()
	s.project.UnsetHighlightedElementContent()
}

// SetActivePage makes page the only active page of the project.
func (s *Store) SetActivePage(page *model.Page) {
	s.project.SetActivePage(page)
}

// SetHighlightedElement highlights el. Root elements are never highlighted.
func (s *Store) SetHighlightedElement(el *model.Element) {
	if el.IsRoot() {
		return
	}
	s.project.SetHighlightedElement(el)
}
