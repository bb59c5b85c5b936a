package model

// Page is a top-level screen of a project.
type Page struct {
	id     string
	name   string
	root   *Element
	active bool

	project *Project
}

// NewPage creates a page rendering root.
func NewPage(id, name string, root *Element) *Page {
	return &Page{id: id, name: name, root: root}
}

func (p *Page) ID() string     { return p.id }
func (p *Page) Name() string   { return p.name }
func (p *Page) Root() *Element { return p.root }
func (p *Page) Active() bool   { return p.active }

// SetActive sets the page's active flag. Project.SetActivePage keeps the
// one-active-page invariant; prefer it.
func (p *Page) SetActive(active bool) {
	if p.active == active {
		return
	}
	p.active = active
	if p.project != nil {
		p.project.changes.Notify()
	}
}
