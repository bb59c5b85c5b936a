package model

import "github.com/danieljhkim/previewsync/internal/observe"

// ProjectInit carries the fields needed to create a Project.
type ProjectInit struct {
	ID    string
	Name  string
	Path  string
	Draft bool
}

// Project is the design document.
//
// Project is not safe for concurrent use. All mutation happens on the host's
// event loop; callers introducing parallelism must serialize access.
type Project struct {
	id    string
	name  string
	path  string
	draft bool

	pages    []*Page
	patterns []*Pattern
	actions  []*ElementAction

	elements     map[string]*Element
	elementOrder []string
	contents     map[string]*ElementContent

	selected           *Element
	highlighted        *Element
	highlightedContent *ElementContent

	changes observe.Notifier
}

// NewProject creates an empty project.
func NewProject(init ProjectInit) *Project {
	return &Project{
		id:       init.ID,
		name:     init.Name,
		path:     init.Path,
		draft:    init.Draft,
		elements: make(map[string]*Element),
		contents: make(map[string]*ElementContent),
	}
}

func (p *Project) ID() string   { return p.id }
func (p *Project) Name() string { return p.name }
func (p *Project) Path() string { return p.path }
func (p *Project) Draft() bool  { return p.draft }

// SetName renames the project.
func (p *Project) SetName(name string) {
	p.name = name
	p.changes.Notify()
}

// SetPath sets the location the project was last saved to.
func (p *Project) SetPath(path string) {
	p.path = path
	p.changes.Notify()
}

// SetDraft sets the draft flag.
func (p *Project) SetDraft(draft bool) {
	p.draft = draft
	p.changes.Notify()
}

// Subscribe registers fn to run after every mutation of the project or any
// attached page, element, content or property.
func (p *Project) Subscribe(fn func()) (cancel func()) {
	return p.changes.Subscribe(fn)
}

// AddPattern registers a pattern definition.
func (p *Project) AddPattern(pattern *Pattern) {
	p.patterns = append(p.patterns, pattern)
	p.changes.Notify()
}

// Patterns returns all registered patterns.
func (p *Project) Patterns() []*Pattern {
	return p.patterns
}

// PatternByID returns the pattern with the given id.
func (p *Project) PatternByID(id string) (*Pattern, bool) {
	for _, pattern := range p.patterns {
		if pattern.ID == id {
			return pattern, true
		}
	}
	return nil, false
}

// AddElementAction registers an action. An existing action with the same id
// is replaced.
func (p *Project) AddElementAction(action *ElementAction) {
	for i, a := range p.actions {
		if a.ID == action.ID {
			p.actions[i] = action
			p.changes.Notify()
			return
		}
	}
	p.actions = append(p.actions, action)
	p.changes.Notify()
}

// RemoveElementAction deletes an action. Properties referring to it keep
// the stale id.
func (p *Project) RemoveElementAction(id string) {
	for i, a := range p.actions {
		if a.ID == id {
			p.actions = append(p.actions[:i:i], p.actions[i+1:]...)
			p.changes.Notify()
			return
		}
	}
}

// ElementActions returns all registered actions.
func (p *Project) ElementActions() []*ElementAction {
	return p.actions
}

// ElementActionByID returns the action with the given id.
func (p *Project) ElementActionByID(id string) (*ElementAction, bool) {
	for _, a := range p.actions {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// AddPage appends page and attaches its element tree.
func (p *Project) AddPage(page *Page) {
	page.project = p
	p.pages = append(p.pages, page)
	if page.root != nil {
		p.registerElement(page.root)
	}
	p.changes.Notify()
}

// Pages returns the pages in order.
func (p *Project) Pages() []*Page {
	return p.pages
}

// PageByID returns the page with the given id.
func (p *Project) PageByID(id string) (*Page, bool) {
	for _, page := range p.pages {
		if page.id == id {
			return page, true
		}
	}
	return nil, false
}

// ActivePage returns the active page, if any.
func (p *Project) ActivePage() (*Page, bool) {
	for _, page := range p.pages {
		if page.active {
			return page, true
		}
	}
	return nil, false
}

// SetActivePage makes page the only active page. A nil page or one that
// belongs to another project is ignored.
func (p *Project) SetActivePage(page *Page) {
	if page == nil || page.project != p {
		return
	}
	for _, other := range p.pages {
		other.active = false
	}
	page.active = true
	p.changes.Notify()
}

// Elements returns all attached elements in attachment order.
func (p *Project) Elements() []*Element {
	out := make([]*Element, 0, len(p.elementOrder))
	for _, id := range p.elementOrder {
		out = append(out, p.elements[id])
	}
	return out
}

// ElementByID returns the attached element with the given id.
func (p *Project) ElementByID(id string) (*Element, bool) {
	el, ok := p.elements[id]
	return el, ok
}

// ContentByID returns the attached content with the given id.
func (p *Project) ContentByID(id string) (*ElementContent, bool) {
	c, ok := p.contents[id]
	return c, ok
}

// SelectedElement returns the selected element, if any.
func (p *Project) SelectedElement() (*Element, bool) {
	return p.selected, p.selected != nil
}

// SetSelectedElement selects el. Root elements and elements outside the
// project tree are ignored.
func (p *Project) SetSelectedElement(el *Element) {
	if !p.selectable(el) || p.selected == el {
		return
	}
	if p.selected != nil {
		p.selected.selected = false
	}
	el.selected = true
	p.selected = el
	p.changes.Notify()
}

// UnsetSelectedElement clears the selection.
func (p *Project) UnsetSelectedElement() {
	if p.selected == nil {
		return
	}
	p.selected.selected = false
	p.selected = nil
	p.changes.Notify()
}

// HighlightedElement returns the highlighted element, if any.
func (p *Project) HighlightedElement() (*Element, bool) {
	return p.highlighted, p.highlighted != nil
}

// SetHighlightedElement highlights el. Root elements and elements outside
// the project tree are ignored.
func (p *Project) SetHighlightedElement(el *Element) {
	if !p.selectable(el) || p.highlighted == el {
		return
	}
	if p.highlighted != nil {
		p.highlighted.highlighted = false
	}
	el.highlighted = true
	p.highlighted = el
	p.changes.Notify()
}

// UnsetHighlightedElement clears the element highlight.
func (p *Project) UnsetHighlightedElement() {
	if p.highlighted == nil {
		return
	}
	p.highlighted.highlighted = false
	p.highlighted = nil
	p.changes.Notify()
}

// HighlightedElementContent returns the highlighted content, if any.
func (p *Project) HighlightedElementContent() (*ElementContent, bool) {
	return p.highlightedContent, p.highlightedContent != nil
}

// SetHighlightedElementContent highlights c. Contents outside the project
// tree are ignored.
func (p *Project) SetHighlightedElementContent(c *ElementContent) {
	if c == nil || p.contents[c.id] != c || p.highlightedContent == c {
		return
	}
	if p.highlightedContent != nil {
		p.highlightedContent.highlighted = false
	}
	c.highlighted = true
	p.highlightedContent = c
	p.changes.Notify()
}

// UnsetHighlightedElementContent clears the content highlight.
func (p *Project) UnsetHighlightedElementContent() {
	if p.highlightedContent == nil {
		return
	}
	p.highlightedContent.highlighted = false
	p.highlightedContent = nil
	p.changes.Notify()
}

func (p *Project) selectable(el *Element) bool {
	return el != nil && !el.IsRoot() && p.elements[el.id] == el
}

func (p *Project) registerElement(el *Element) {
	if _, ok := p.elements[el.id]; !ok {
		p.elementOrder = append(p.elementOrder, el.id)
	}
	p.elements[el.id] = el
	el.project = p
	for _, c := range el.contents {
		p.registerContent(c)
	}
}

func (p *Project) registerContent(c *ElementContent) {
	p.contents[c.id] = c
	for _, child := range c.elements {
		p.registerElement(child)
	}
}

func (p *Project) unregisterElement(el *Element) {
	if p.selected == el {
		p.selected = nil
		el.selected = false
	}
	if p.highlighted == el {
		p.highlighted = nil
		el.highlighted = false
	}
	for _, c := range el.contents {
		if p.highlightedContent == c {
			p.highlightedContent = nil
			c.highlighted = false
		}
		delete(p.contents, c.id)
		for _, child := range c.elements {
			p.unregisterElement(child)
		}
	}
	delete(p.elements, el.id)
	for i, id := range p.elementOrder {
		if id == el.id {
			p.elementOrder = append(p.elementOrder[:i:i], p.elementOrder[i+1:]...)
			break
		}
	}
	el.project = nil
}
