// Package geometry tracks the on-screen area of a single rendered node.
//
// A Tracker is created once per role (selection, highlight) and lives as
// long as the preview store. It holds a relation to a node owned by the
// rendering layer; it never manages the node's lifetime.
package geometry

import "github.com/danieljhkim/previewsync/internal/observe"

// Rect is an axis-aligned bounding box in surface coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Node is an opaque handle to a rendered node.
type Node interface {
	// BoundingRect returns the node's current box.
	BoundingRect() Rect
}

// Tracker follows one node and its visibility.
type Tracker struct {
	node    *observe.Value[Node]
	visible *observe.Value[bool]
	changes observe.Notifier
}

// NewTracker creates an empty, hidden Tracker.
func NewTracker() *Tracker {
	t := &Tracker{
		node:    observe.NewValue[Node](nil),
		visible: observe.NewValue(false),
	}
	t.node.Subscribe(t.changes.Notify)
	t.visible.Subscribe(t.changes.Notify)
	return t
}

// SetElement binds node, or clears the binding when node is nil.
func (t *Tracker) SetElement(node Node) {
	t.node.Set(node)
}

// Element returns the tracked node, if any.
func (t *Tracker) Element() (Node, bool) {
	n := t.node.Get()
	return n, n != nil
}

// Show marks the tracked area visible. Binding is unaffected.
func (t *Tracker) Show() {
	t.visible.Set(true)
}

// Hide marks the tracked area hidden. Binding is unaffected.
func (t *Tracker) Hide() {
	t.visible.Set(false)
}

// Visible reports the visibility flag.
func (t *Tracker) Visible() bool {
	return t.visible.Get()
}

// BoundingBox derives the box of the tracked node on every call.
func (t *Tracker) BoundingBox() (Rect, bool) {
	n := t.node.Get()
	if n == nil {
		return Rect{}, false
	}
	return n.BoundingRect(), true
}

// Subscribe registers fn to run whenever the binding or visibility changes.
func (t *Tracker) Subscribe(fn func()) (cancel func()) {
	return t.changes.Subscribe(fn)
}
