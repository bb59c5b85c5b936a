package preview

import (
	"fmt"

	"github.com/danieljhkim/previewsync/internal/action"
	"github.com/danieljhkim/previewsync/internal/model"
)

// Handler is the render-ready value of an event handler property.
type Handler func(event any)

// Properties maps the element's properties to render-ready values keyed by
// property name. Properties without a resolvable schema are skipped. Event
// handler properties become Handlers; every other property keeps its stored
// value.
func (s *Store) Properties(el *model.Element) map[string]any {
	props := make(map[string]any, len(el.Properties()))

	for _, prop := range el.Properties() {
		pp, ok := prop.PatternProperty()
		if !ok {
			continue
		}
		if pp.IsEventHandler() {
			props[pp.PropertyName] = s.handler(pp, prop)
			continue
		}
		props[pp.PropertyName] = prop.Value()
	}

	return props
}

// handler builds the callback for an event handler property. Mode, modifier
// state and the referenced action ids are read when the callback runs, not
// when it is built.
func (s *Store) handler(pp *model.PatternProperty, prop *model.ElementProperty) Handler {
	return func(event any) {
		if pp.Event != nil && pp.Event.Type == model.EventMouse {
			if s.mode != model.ModeStatic && !s.MetaDown() {
				return
			}
		}

		ids := prop.ActionIDs()
		if len(ids) == 0 {
			return
		}

		ctx := action.Context{
			Sender:  s.actionSender(),
			Project: s.project,
			Event:   event,
		}
		for _, id := range ids {
			a, ok := s.project.ElementActionByID(id)
			if !ok {
				continue
			}
			if err := s.execute(ctx, a); err != nil {
				s.logger.Warn("preview: action failed",
					"action", a.ID, "kind", a.Kind, "property", pp.PropertyName, "error", err)
			}
		}
	}
}

// execute runs one action, turning a panic into an error so the next action
// still runs.
func (s *Store) execute(ctx action.Context, a *model.ElementAction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return s.actions.Execute(ctx, a)
}
