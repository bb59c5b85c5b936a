package model

// ElementAction is an executable unit an event handler property refers to.
// Payload keys depend on Kind:
//   - open-url: "url"
//   - switch-page: "page"
//   - set-property: "element", "property", "value"
type ElementAction struct {
	ID      string            `json:"id"`
	Kind    ActionKind        `json:"kind"`
	Payload map[string]string `json:"payload,omitempty"`
}
