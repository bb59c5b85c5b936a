package model

// ElementInit carries the fields needed to create an Element.
type ElementInit struct {
	ID         string
	Name       string
	Role       Role
	Pattern    *Pattern
	Properties []*ElementProperty
	Contents   []*ElementContent
}

// Element is a node in the render tree.
type Element struct {
	id         string
	name       string
	role       Role
	pattern    *Pattern
	properties []*ElementProperty
	contents   []*ElementContent

	selected    bool
	highlighted bool

	parent  *ElementContent
	project *Project
}

// NewElement creates a detached element. It joins a project once it is
// appended to a content of an attached element or becomes a page root.
func NewElement(init ElementInit) *Element {
	e := &Element{
		id:      init.ID,
		name:    init.Name,
		role:    init.Role,
		pattern: init.Pattern,
	}
	for _, prop := range init.Properties {
		e.AddProperty(prop)
	}
	for _, content := range init.Contents {
		e.AddContent(content)
	}
	return e
}

func (e *Element) ID() string        { return e.id }
func (e *Element) Name() string      { return e.name }
func (e *Element) Role() Role        { return e.role }
func (e *Element) Pattern() *Pattern { return e.pattern }
func (e *Element) Selected() bool    { return e.selected }
func (e *Element) Highlighted() bool { return e.highlighted }

// IsRoot reports whether the element has the Root role.
func (e *Element) IsRoot() bool {
	return e.role == RoleRoot
}

// Project returns the project the element is attached to, or nil.
func (e *Element) Project() *Project {
	return e.project
}

// Parent returns the content holding the element, or nil for roots and
// detached elements.
func (e *Element) Parent() *ElementContent {
	return e.parent
}

// Properties returns the element's properties in declaration order.
func (e *Element) Properties() []*ElementProperty {
	return e.properties
}

// PropertyByName returns the property whose schema has the given name.
func (e *Element) PropertyByName(name string) (*ElementProperty, bool) {
	for _, prop := range e.properties {
		if pp, ok := prop.PatternProperty(); ok && pp.PropertyName == name {
			return prop, true
		}
	}
	return nil, false
}

// AddProperty appends prop to the element.
func (e *Element) AddProperty(prop *ElementProperty) {
	prop.element = e
	e.properties = append(e.properties, prop)
	e.notify()
}

// Contents returns the element's slots in declaration order.
func (e *Element) Contents() []*ElementContent {
	return e.contents
}

// ContentBySlotType returns the first content of the given slot type.
func (e *Element) ContentBySlotType(t SlotType) (*ElementContent, bool) {
	for _, c := range e.contents {
		if c.SlotType() == t {
			return c, true
		}
	}
	return nil, false
}

// AddContent attaches content to the element.
func (e *Element) AddContent(content *ElementContent) {
	content.parent = e
	e.contents = append(e.contents, content)
	if e.project != nil {
		e.project.registerContent(content)
	}
	e.notify()
}

// Descendants returns every element below e in depth-first order.
func (e *Element) Descendants() []*Element {
	var out []*Element
	for _, c := range e.contents {
		for _, child := range c.elements {
			out = append(out, child)
			out = append(out, child.Descendants()...)
		}
	}
	return out
}

func (e *Element) notify() {
	if e.project != nil {
		e.project.changes.Notify()
	}
}
