// Package message defines the messages exchanged between a design-time host,
// the save pipeline and a rendering surface.
//
// Messages are transport-agnostic envelopes with a typed payload. The JSON
// codec in this package is what the WebSocket transport speaks; other
// transports may choose a different encoding.
//
// Key concepts:
//   - Message: envelope (type, id, app id, transaction, payload)
//   - Sender: fire-and-forget delivery to the other side
//   - App: a Sender bound to a host application identity
package message

import "github.com/danieljhkim/previewsync/internal/model"

// Type discriminates message payloads.
type Type string

const (
	// Outbound from the preview.
	TypeSelectElement    Type = "select-element"
	TypeHighlightElement Type = "highlight-element"

	// Save request and its replies.
	TypeSave       Type = "save"
	TypeSaveResult Type = "save-result"
	TypeShowError  Type = "show-error"

	// Model-tree synchronization and action side effects.
	TypeUpdateProject   Type = "update-project"
	TypeOpenExternalURL Type = "open-external-url"

	// Inbound from a rendering surface.
	TypeElementClick             Type = "element-click"
	TypeElementMouseOver         Type = "element-mouse-over"
	TypeHighlightedElementRemove Type = "highlighted-element-remove"
	TypeOutsideClick             Type = "outside-click"
	TypeKeyboardChange           Type = "keyboard-change"
	TypeScrollChange             Type = "scroll-change"
	TypeActivatePage             Type = "activate-page"
)

// Message is the envelope every message travels in.
type Message struct {
	Type        Type   `json:"type"`
	ID          string `json:"id"`
	AppID       string `json:"appId,omitempty"`
	Transaction string `json:"transaction,omitempty"`
	Payload     any    `json:"payload,omitempty"`
}

// SelectElementPayload reports a selection made in the preview.
type SelectElementPayload struct {
	Element   model.ElementData `json:"element"`
	ProjectID string            `json:"projectId"`
}

// HighlightElementPayload reports a highlight made in the preview.
type HighlightElementPayload struct {
	Element model.ElementData `json:"element"`
}

// SavePayload requests a save of ProjectID. Publish asks the host for a new
// destination instead of reusing the stored path.
type SavePayload struct {
	ProjectID string `json:"projectId"`
	Publish   bool   `json:"publish"`
}

// SaveResultPayload acknowledges a completed save.
type SaveResultPayload struct {
	Previous string       `json:"previous"`
	Project  SavedProject `json:"project"`
}

// SavedProject summarizes a project after a save.
type SavedProject struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Draft bool   `json:"draft"`
	Name  string `json:"name"`
}

// ShowErrorPayload asks the host to surface a failure to the user.
type ShowErrorPayload struct {
	Message string    `json:"message"`
	Detail  string    `json:"detail"`
	Error   ErrorInfo `json:"error"`
}

// ErrorInfo carries the raw failure behind a ShowError.
type ErrorInfo struct {
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// UpdateProjectPayload pushes a full project to a rendering surface.
type UpdateProjectPayload struct {
	Project model.ProjectData `json:"project"`
}

// OpenExternalURLPayload asks the host to open a URL outside the preview.
type OpenExternalURLPayload struct {
	URL string `json:"url"`
}

// PointerPayload describes a pointer event on a rendered element.
type PointerPayload struct {
	ElementID string   `json:"elementId"`
	Node      NodeData `json:"node"`
	MetaKey   bool     `json:"metaKey"`
}

// NodeData identifies the rendered node an event happened on.
type NodeData struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// KeyboardChangePayload reports the modifier key state.
type KeyboardChangePayload struct {
	MetaDown bool `json:"metaDown"`
}

// ScrollChangePayload reports the surface scroll position.
type ScrollChangePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ActivatePagePayload asks the surface to show another page.
type ActivatePagePayload struct {
	PageID string `json:"pageId"`
}
