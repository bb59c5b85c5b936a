package message

import "github.com/danieljhkim/previewsync/internal/model"

// NewSelectElement builds the message announcing a selection.
func NewSelectElement(id, appID string, el *model.Element, projectID string) Message {
	return Message{
		Type:    TypeSelectElement,
		ID:      id,
		AppID:   appID,
		Payload: SelectElementPayload{Element: el.ToData(), ProjectID: projectID},
	}
}

// NewHighlightElement builds the message announcing a highlight.
func NewHighlightElement(id, appID string, el *model.Element) Message {
	return Message{
		Type:    TypeHighlightElement,
		ID:      id,
		AppID:   appID,
		Payload: HighlightElementPayload{Element: el.ToData()},
	}
}

// NewShowError builds an error reply for the transaction of req. The reply
// echoes the request id.
func NewShowError(req Message, msg, detail string, info ErrorInfo) Message {
	return Message{
		Type:        TypeShowError,
		ID:          req.ID,
		Transaction: req.Transaction,
		Payload:     ShowErrorPayload{Message: msg, Detail: detail, Error: info},
	}
}

// AppID returns the id of app, or "" when app is nil.
func AppID(app App) string {
	if app == nil {
		return ""
	}
	return app.ID()
}
