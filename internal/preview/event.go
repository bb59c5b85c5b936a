package preview

import (
	"github.com/danieljhkim/previewsync/internal/geometry"
	"github.com/danieljhkim/previewsync/internal/model"
)

// Event is the part of a native pointer event the store acts on.
type Event interface {
	PreventDefault()
	StopPropagation()
	// ModifierKey reports whether the platform modifier (meta) key was held.
	ModifierKey() bool
}

// Target is the element an event happened on and the rendered node showing
// it. Node may be nil.
type Target struct {
	Element *model.Element
	Node    geometry.Node
}

// SyntheticEvent is an Event for adapters that receive events out of
// process. It records what the store did with it.
type SyntheticEvent struct {
	Modifier           bool
	DefaultPrevented   bool
	PropagationStopped bool
}

func (e *SyntheticEvent) PreventDefault()   { e.DefaultPrevented = true }
func (e *SyntheticEvent) StopPropagation()  { e.PropagationStopped = true }
func (e *SyntheticEvent) ModifierKey() bool { return e.Modifier }
