package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/state"
)

// ImportResult describes a project read from a file into the registry.
type ImportResult struct {
	ProjectID string
	Name      string
	Path      string

	// Replaced is true when the registry already held a project with the
	// same id.
	Replaced bool
}

// Import reads a project file and adds it to the registry. The project's
// path becomes the absolute path of the file it was read from.
func (e *Engine) Import(ctx context.Context, path string) (*ImportResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	data, err := e.fs.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	p, err := e.serializer.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w", abs, err)
	}
	p.SetPath(abs)

	_, lookupErr := e.registry.Project(ctx, p.ID())
	replaced := lookupErr == nil

	if err := e.registry.AddProject(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}

	return &ImportResult{ProjectID: p.ID(), Name: p.Name(), Path: abs, Replaced: replaced}, nil
}

// List returns every project in the registry.
func (e *Engine) List(ctx context.Context) ([]state.Entry, error) {
	entries, err := e.registry.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return entries, nil
}

// ProjectInfo summarizes a project.
type ProjectInfo struct {
	ID    string
	Name  string
	Path  string
	Draft bool

	Pages    []PageInfo
	Patterns int
	Elements int
	Actions  int

	// Selected and Highlighted are element ids, empty when unset.
	Selected    string
	Highlighted string
}

// PageInfo summarizes a page.
type PageInfo struct {
	ID       string
	Name     string
	Active   bool
	Elements int
}

// Describe summarizes the project with id.
func (e *Engine) Describe(ctx context.Context, id string) (*ProjectInfo, error) {
	p, err := e.project(ctx, id)
	if err != nil {
		return nil, err
	}

	info := &ProjectInfo{
		ID:       p.ID(),
		Name:     p.Name(),
		Path:     p.Path(),
		Draft:    p.Draft(),
		Patterns: len(p.Patterns()),
		Elements: len(p.Elements()),
		Actions:  len(p.ElementActions()),
	}
	for _, page := range p.Pages() {
		pi := PageInfo{ID: page.ID(), Name: page.Name(), Active: page.Active()}
		if root := page.Root(); root != nil {
			pi.Elements = 1 + len(root.Descendants())
		}
		info.Pages = append(info.Pages, pi)
	}
	if el, ok := p.SelectedElement(); ok {
		info.Selected = el.ID()
	}
	if el, ok := p.HighlightedElement(); ok {
		info.Highlighted = el.ID()
	}

	return info, nil
}

func (e *Engine) project(ctx context.Context, id string) (*model.Project, error) {
	p, err := e.registry.Project(ctx, id)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

// fileExists reports whether the project file at path is on disk.
func (e *Engine) fileExists(path string) (bool, error) {
	ok, err := e.fs.Exists(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return ok, nil
}
