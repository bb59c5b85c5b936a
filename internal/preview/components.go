package preview

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/previewsync/internal/model"
)

var (
	// ErrComponentNotFound indicates no module is registered for a pattern.
	ErrComponentNotFound = errors.New("component not found")

	// ErrExportNotFound indicates a module lacks a pattern's export.
	ErrExportNotFound = errors.New("export not found")
)

// ChildrenProp is the property name children are passed under.
const ChildrenProp = "children"

// Props are the resolved properties handed to a component.
type Props map[string]any

// Component renders resolved properties into the surface's node type.
type Component interface {
	Render(props Props) any
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(props Props) any

// Render calls f(props).
func (f ComponentFunc) Render(props Props) any {
	return f(props)
}

// Module is the set of components a pattern library exports, keyed by
// export name.
type Module map[string]Component

// Components maps pattern ids to modules.
type Components map[string]Module

// Component looks up the implementation of el's pattern. An element without
// a pattern has no component and no error. A missing module or export is a
// build or configuration defect and reported as an error.
func (s *Store) Component(el *model.Element) (Component, error) {
	pattern := el.Pattern()
	if pattern == nil {
		return nil, nil
	}

	module, ok := s.Components()[pattern.ID]
	if !ok || module == nil {
		return nil, fmt.Errorf("%w: could not find component with id %q for pattern \"%s:%s\"",
			ErrComponentNotFound, pattern.ID, pattern.Name, pattern.ExportName)
	}

	component, ok := module[pattern.ExportName]
	if !ok || component == nil {
		return nil, fmt.Errorf("%w: could not find export %q on pattern \"%s:%s\"",
			ErrExportNotFound, pattern.ExportName, pattern.Name, pattern.ExportName)
	}

	return component, nil
}

// Render renders el and its subtree. Lookup gaps anywhere in the subtree
// abort the render with the first error.
func (s *Store) Render(el *model.Element) (any, error) {
	component, err := s.Component(el)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}

	var renderErr error
	render := func(child *model.Element) any {
		if renderErr != nil {
			return nil
		}
		node, err := s.Render(child)
		if err != nil {
			renderErr = err
		}
		return node
	}

	props := Props(s.Properties(el))
	if children, ok := ResolveChildren(el, render); ok {
		props[ChildrenProp] = children
	}
	for name, v := range ResolveSlots(el, render) {
		if v.Present {
			props[name] = v.Elements
		} else {
			props[name] = nil
		}
	}
	if renderErr != nil {
		return nil, renderErr
	}

	return component.Render(props), nil
}
