// Package modeltree pushes whole projects to rendering surfaces.
//
// After a save changes a project's path, name or draft flag, any open
// preview of that project must see the new state. A Syncer sends the full
// project data form in an update-project message; the surface replaces its
// copy with it.
package modeltree

import (
	"fmt"

	"github.com/danieljhkim/previewsync/internal/idgen"
	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
)

// Syncer pushes a project through a sender.
type Syncer interface {
	Sync(p *model.Project, sender message.Sender) error
}

// Pusher is the Syncer used by previewsync.
type Pusher struct {
	ids idgen.Generator
}

// New creates a Pusher. A nil generator uses idgen.Default.
func New(ids idgen.Generator) *Pusher {
	if ids == nil {
		ids = idgen.Default
	}
	return &Pusher{ids: ids}
}

// Sync sends p as an update-project message. A nil sender does nothing.
func (s *Pusher) Sync(p *model.Project, sender message.Sender) error {
	if sender == nil {
		return nil
	}

	m := message.Message{
		Type:    message.TypeUpdateProject,
		ID:      s.ids(),
		Payload: message.UpdateProjectPayload{Project: p.ToData()},
	}
	if app, ok := sender.(message.App); ok {
		m.AppID = app.ID()
	}

	if err := sender.Send(m); err != nil {
		return fmt.Errorf("failed to push project %s: %w", p.ID(), err)
	}
	return nil
}
