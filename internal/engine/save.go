package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/persist"
)

// SaveConfig modifies a single save.
type SaveConfig struct {
	// Passive suppresses the save-result acknowledgement.
	Passive bool
}

// SaveState is how far a save got.
type SaveState string

const (
	// SaveDropped means the request was stale or malformed and got no reply.
	SaveDropped SaveState = "dropped"
	// SaveSerializeFailed means nothing changed and an error was reported.
	SaveSerializeFailed SaveState = "serialize-failed"
	// SaveWriteFailed means the project was updated in memory and in the
	// registry, but the file was not written.
	SaveWriteFailed SaveState = "write-failed"
	// SaveSaved means the file was written.
	SaveSaved SaveState = "saved"
)

// SaveOutcome reports what a save did. Failures have already been sent to
// the requesting app; the outcome exists for callers that also want to
// report locally.
type SaveOutcome struct {
	State SaveState
	// Path is the target path, once one was resolved.
	Path string
	// Project is the saved project, once one was resolved.
	Project *model.Project
	Err     error
}

// Save answers a save request.
//
// The request's app and project are resolved first; a request that names
// neither is dropped without a reply. The target is chosen by the user for
// publishing saves and is the project's stored path otherwise.
//
// A serialization failure is reported to the app and leaves the project
// untouched. Once serialization succeeds the project takes the new path,
// draft flag and name, and is upserted into the registry before the file is
// written, so a failed write leaves the in-memory project updated.
func (e *Engine) Save(ctx context.Context, m message.Message, cfg SaveConfig) *SaveOutcome {
	payload, ok := savePayload(m)
	if !ok {
		e.host.Log("save: received message without save payload", "id", m.ID, "type", m.Type)
		return &SaveOutcome{State: SaveDropped, Err: ErrMalformedRequest}
	}

	app, err := e.host.App(ctx, m.AppID)
	if err != nil || app == nil {
		e.host.Log("save: received message without resolvable app", "id", m.ID, "appId", m.AppID, "error", err)
		return &SaveOutcome{State: SaveDropped, Err: fmt.Errorf("%w: %q", ErrAppNotFound, m.AppID)}
	}

	project, err := e.registry.Project(ctx, payload.ProjectID)
	if err != nil || project == nil {
		e.host.Log("save: received message without resolvable project", "id", m.ID, "projectId", payload.ProjectID, "error", err)
		return &SaveOutcome{State: SaveDropped, Err: fmt.Errorf("%w: %q", ErrProjectNotFound, payload.ProjectID)}
	}

	target, err := e.targetPath(ctx, project, payload.Publish)
	if err != nil || target == "" {
		e.host.Log("save: no target path", "id", m.ID, "projectId", project.ID(), "error", err)
		return &SaveOutcome{State: SaveDropped, Project: project, Err: ErrNoTargetPath}
	}

	contents, err := e.serializer.Serialize(project)
	if err != nil {
		e.host.Log(err.Error())
		e.reply(app, e.showError(m, target, err))
		return &SaveOutcome{State: SaveSerializeFailed, Path: target, Project: project, Err: err}
	}

	project.SetPath(target)
	project.SetDraft(nextDraft(project.Draft(), payload.Publish))
	if !project.Draft() {
		project.SetName(baseName(target))
	}

	if err := e.registry.AddProject(ctx, project); err != nil {
		e.host.Log("save: failed to update project registry", "projectId", project.ID(), "error", err)
	}

	if e.liveRenderSurface {
		e.syncSurface(ctx, project)
	}

	if err := e.write(ctx, target, contents); err != nil {
		e.host.Log(err.Error())
		e.reply(app, e.showError(m, target, err))
		return &SaveOutcome{State: SaveWriteFailed, Path: target, Project: project, Err: err}
	}

	e.logger.Debug("save: wrote project", "project", project.ID(), "path", target, "bytes", len(contents))

	if !cfg.Passive {
		e.reply(app, message.Message{
			Type:        message.TypeSaveResult,
			ID:          e.ids(),
			Transaction: m.Transaction,
			Payload: message.SaveResultPayload{
				Previous: payload.ProjectID,
				Project: message.SavedProject{
					ID:    project.ID(),
					Path:  project.Path(),
					Draft: project.Draft(),
					Name:  project.Name(),
				},
			},
		})
	}

	return &SaveOutcome{State: SaveSaved, Path: target, Project: project}
}

func savePayload(m message.Message) (message.SavePayload, bool) {
	switch p := m.Payload.(type) {
	case message.SavePayload:
		return p, true
	case *message.SavePayload:
		if p != nil {
			return *p, true
		}
	}
	return message.SavePayload{}, false
}

// displayName is the project's name, or the fallback name while the name
// still equals the id.
func (e *Engine) displayName(p *model.Project) string {
	if p.Name() != p.ID() {
		return p.Name()
	}
	return e.names.FallbackName
}

func (e *Engine) targetPath(ctx context.Context, p *model.Project, publish bool) (string, error) {
	if !publish {
		return p.Path(), nil
	}
	return e.host.SelectSaveFile(ctx, SaveFileOptions{
		Title:       e.names.DialogTitle,
		DefaultPath: e.displayName(p) + "." + e.names.Extension,
		Filters: []FileFilter{
			{Name: e.names.FilterName, Extensions: []string{e.names.Extension}},
		},
	})
}

// nextDraft keeps a draft a draft unless the save publishes it, and never
// turns a saved project back into a draft.
func nextDraft(draft, publish bool) bool {
	if draft {
		return !publish
	}
	return false
}

// baseName is the file name of path without its extension.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (e *Engine) syncSurface(ctx context.Context, p *model.Project) {
	sender, err := e.host.Sender(ctx)
	if err != nil {
		e.host.Log("save: failed to resolve sender", "error", err)
		return
	}
	if err := e.syncer.Sync(p, sender); err != nil {
		e.host.Log("save: failed to sync project", "projectId", p.ID(), "error", err)
	}
}

func (e *Engine) write(ctx context.Context, target string, contents []byte) error {
	if err := e.host.Mkdir(ctx, filepath.Dir(target)); err != nil {
		return err
	}
	return e.host.WriteFile(ctx, target, contents)
}

func (e *Engine) showError(req message.Message, target string, err error) message.Message {
	return message.NewShowError(
		req,
		fmt.Sprintf("Sorry, we had trouble writing this project to %s", target),
		fmt.Sprintf("It failed with: %s", err.Error()),
		errorInfo(err),
	)
}

// errorInfo captures err's message and stack. Errors from collaborators
// that carry no stack get one rooted here.
func errorInfo(err error) message.ErrorInfo {
	stack := persist.Stack(err)
	if stack == "" {
		stack = persist.Stack(errors.WithStack(err))
	}
	return message.ErrorInfo{Message: err.Error(), Stack: stack}
}

func (e *Engine) reply(app message.App, m message.Message) {
	if err := app.Send(m); err != nil {
		e.host.Log("save: failed to reply", "type", m.Type, "transaction", m.Transaction, "error", err)
	}
}
