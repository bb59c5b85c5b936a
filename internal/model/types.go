package model

// Role distinguishes structural elements from regular ones.
type Role string

const (
	RoleNone Role = ""
	// RoleRoot marks the root element of a page. It is never selectable or
	// highlightable.
	RoleRoot Role = "root"
)

// SlotType distinguishes the default children slot from named slots.
type SlotType string

const (
	SlotTypeChildren SlotType = "children"
	SlotTypeProperty SlotType = "property"
)

// PropertyType is the schema type of a PatternProperty.
type PropertyType string

const (
	PropertyString       PropertyType = "string"
	PropertyBoolean      PropertyType = "boolean"
	PropertyNumber       PropertyType = "number"
	PropertyEnum         PropertyType = "enum"
	PropertyAsset        PropertyType = "asset"
	PropertyHref         PropertyType = "href"
	PropertyEventHandler PropertyType = "event-handler"
)

// EventType is the kind of native event an event handler property reacts to.
type EventType string

const (
	EventMouse  EventType = "mouse"
	EventChange EventType = "change"
	EventFocus  EventType = "focus"
	EventInput  EventType = "input"
)

// DocumentMode is the rendering context of a preview document.
type DocumentMode string

const (
	// ModeLive is the interactive preview inside the editor.
	ModeLive DocumentMode = "live"
	// ModeStatic is a non-interactive export.
	ModeStatic DocumentMode = "static"
	// ModeDesign is the editor canvas.
	ModeDesign DocumentMode = "design"
)

// ParseDocumentMode maps a mode name to a DocumentMode.
func ParseDocumentMode(s string) (DocumentMode, bool) {
	switch m := DocumentMode(s); m {
	case ModeLive, ModeStatic, ModeDesign:
		return m, true
	}
	return "", false
}

// ActionKind selects what an ElementAction does when executed.
type ActionKind string

const (
	ActionNoop        ActionKind = "noop"
	ActionOpenURL     ActionKind = "open-url"
	ActionSwitchPage  ActionKind = "switch-page"
	ActionSetProperty ActionKind = "set-property"
)
