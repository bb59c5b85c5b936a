package action

import (
	"fmt"

	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
)

// OpenURL returns the executor for open-url actions. It asks the host to
// open the payload's "url"; without a sender it does nothing.
func OpenURL(newID func() string) Executor {
	return ExecutorFunc(func(ctx Context, a *model.ElementAction) error {
		url := a.Payload["url"]
		if url == "" {
			return fmt.Errorf("open-url action %q has no url", a.ID)
		}
		if ctx.Sender == nil {
			return nil
		}
		m := message.Message{
			Type:    message.TypeOpenExternalURL,
			ID:      newID(),
			Payload: message.OpenExternalURLPayload{URL: url},
		}
		if app, ok := ctx.Sender.(message.App); ok {
			m.AppID = app.ID()
		}
		return ctx.Sender.Send(m)
	})
}

func switchPage(ctx Context, a *model.ElementAction) error {
	page, ok := ctx.Project.PageByID(a.Payload["page"])
	if !ok {
		return fmt.Errorf("switch-page action %q: page %q not found", a.ID, a.Payload["page"])
	}
	ctx.Project.SetActivePage(page)
	return nil
}

func setProperty(ctx Context, a *model.ElementAction) error {
	el, ok := ctx.Project.ElementByID(a.Payload["element"])
	if !ok {
		return fmt.Errorf("set-property action %q: element %q not found", a.ID, a.Payload["element"])
	}
	prop, ok := el.PropertyByName(a.Payload["property"])
	if !ok {
		return fmt.Errorf("set-property action %q: property %q not found", a.ID, a.Payload["property"])
	}
	prop.SetValue(a.Payload["value"])
	return nil
}
