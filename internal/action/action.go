// Package action executes ElementActions bound to event handler properties.
package action

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/previewsync/internal/message"
	"github.com/danieljhkim/previewsync/internal/model"
)

// ErrNoExecutor indicates an action kind without a registered executor.
var ErrNoExecutor = errors.New("no executor for action kind")

// Context is what an action runs against.
type Context struct {
	// Sender is the bound app if any, otherwise the raw sender. May be nil.
	Sender  message.Sender
	Project *model.Project
	// Event is the native event that triggered the handler.
	Event any
}

// Executor runs one kind of action.
type Executor interface {
	Execute(ctx Context, a *model.ElementAction) error
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx Context, a *model.ElementAction) error

// Execute calls f(ctx, a).
func (f ExecutorFunc) Execute(ctx Context, a *model.ElementAction) error {
	return f(ctx, a)
}

// Registry maps action kinds to executors.
type Registry struct {
	executors map[model.ActionKind]Executor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[model.ActionKind]Executor)}
}

// DefaultRegistry returns a Registry with the built-in executors.
func DefaultRegistry(newID func() string) *Registry {
	r := NewRegistry()
	r.Register(model.ActionNoop, ExecutorFunc(func(Context, *model.ElementAction) error { return nil }))
	r.Register(model.ActionOpenURL, OpenURL(newID))
	r.Register(model.ActionSwitchPage, ExecutorFunc(switchPage))
	r.Register(model.ActionSetProperty, ExecutorFunc(setProperty))
	return r
}

// Register installs exec for kind, replacing any previous executor.
func (r *Registry) Register(kind model.ActionKind, exec Executor) {
	r.executors[kind] = exec
}

// Execute runs a with the executor registered for its kind.
func (r *Registry) Execute(ctx Context, a *model.ElementAction) error {
	exec, ok := r.executors[a.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoExecutor, a.Kind)
	}
	return exec.Execute(ctx, a)
}
