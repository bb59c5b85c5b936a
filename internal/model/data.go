package model

import (
	"errors"
	"fmt"
)

// ErrInvalidData indicates a serialized project references ids it does not
// define.
var ErrInvalidData = errors.New("invalid project data")

// ProjectData is the serializable form of a Project.
type ProjectData struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Path     string               `json:"path,omitempty"`
	Draft    bool                 `json:"draft"`
	Pages    []PageData           `json:"pages"`
	Patterns []*Pattern           `json:"patterns"`
	Elements []ElementData        `json:"elements"`
	Contents []ElementContentData `json:"contents"`
	Actions  []*ElementAction     `json:"actions"`
}

// PageData is the serializable form of a Page.
type PageData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RootID string `json:"rootId"`
	Active bool   `json:"active"`
}

// ElementData is the serializable form of an Element. It is also the element
// representation carried by selection and highlight messages.
type ElementData struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Role        Role                  `json:"role,omitempty"`
	PatternID   string                `json:"patternId,omitempty"`
	Properties  []ElementPropertyData `json:"properties"`
	ContentIDs  []string              `json:"contentIds"`
	ContainerID string                `json:"containerId,omitempty"`
	Selected    bool                  `json:"selected"`
	Highlighted bool                  `json:"highlighted"`
}

// ElementPropertyData is the serializable form of an ElementProperty.
type ElementPropertyData struct {
	PatternPropertyID string `json:"patternPropertyId"`
	Value             any    `json:"value,omitempty"`
}

// ElementContentData is the serializable form of an ElementContent.
type ElementContentData struct {
	ID          string   `json:"id"`
	SlotID      string   `json:"slotId,omitempty"`
	SlotType    SlotType `json:"slotType"`
	ElementIDs  []string `json:"elementIds"`
	ParentID    string   `json:"parentId,omitempty"`
	Highlighted bool     `json:"highlighted"`
}

// ToData returns the serializable form of the element.
func (e *Element) ToData() ElementData {
	d := ElementData{
		ID:          e.id,
		Name:        e.name,
		Role:        e.role,
		Properties:  make([]ElementPropertyData, 0, len(e.properties)),
		ContentIDs:  make([]string, 0, len(e.contents)),
		Selected:    e.selected,
		Highlighted: e.highlighted,
	}
	if e.pattern != nil {
		d.PatternID = e.pattern.ID
	}
	if e.parent != nil {
		d.ContainerID = e.parent.id
	}
	for _, prop := range e.properties {
		d.Properties = append(d.Properties, ElementPropertyData{
			PatternPropertyID: prop.patternPropertyID,
			Value:             prop.value,
		})
	}
	for _, c := range e.contents {
		d.ContentIDs = append(d.ContentIDs, c.id)
	}
	return d
}

// ToData returns the serializable form of the content.
func (c *ElementContent) ToData() ElementContentData {
	d := ElementContentData{
		ID:          c.id,
		SlotType:    c.slotType,
		ElementIDs:  make([]string, 0, len(c.elements)),
		Highlighted: c.highlighted,
	}
	if c.slot != nil {
		d.SlotID = c.slot.ID
	}
	if c.parent != nil {
		d.ParentID = c.parent.id
	}
	for _, el := range c.elements {
		d.ElementIDs = append(d.ElementIDs, el.id)
	}
	return d
}

// ToData returns the serializable form of the project.
func (p *Project) ToData() ProjectData {
	d := ProjectData{
		ID:       p.id,
		Name:     p.name,
		Path:     p.path,
		Draft:    p.draft,
		Pages:    make([]PageData, 0, len(p.pages)),
		Patterns: p.patterns,
		Elements: make([]ElementData, 0, len(p.elementOrder)),
		Contents: make([]ElementContentData, 0, len(p.contents)),
		Actions:  p.actions,
	}
	if d.Patterns == nil {
		d.Patterns = []*Pattern{}
	}
	if d.Actions == nil {
		d.Actions = []*ElementAction{}
	}
	for _, page := range p.pages {
		pd := PageData{ID: page.id, Name: page.name, Active: page.active}
		if page.root != nil {
			pd.RootID = page.root.id
		}
		d.Pages = append(d.Pages, pd)
	}
	for _, el := range p.Elements() {
		d.Elements = append(d.Elements, el.ToData())
		for _, c := range el.contents {
			d.Contents = append(d.Contents, c.ToData())
		}
	}
	return d
}

// FromData rebuilds a Project from its serialized form. Property schemas that
// cannot be resolved are kept unresolved; every other dangling reference is
// an ErrInvalidData.
func FromData(d ProjectData) (*Project, error) {
	p := NewProject(ProjectInit{ID: d.ID, Name: d.Name, Path: d.Path, Draft: d.Draft})

	patternProps := make(map[string]*PatternProperty)
	slots := make(map[string]*Slot)
	for _, pattern := range d.Patterns {
		p.patterns = append(p.patterns, pattern)
		for _, pp := range pattern.Properties {
			patternProps[pp.ID] = pp
		}
		for _, s := range pattern.Slots {
			slots[s.ID] = s
		}
	}
	p.actions = append(p.actions, d.Actions...)

	elements := make(map[string]*Element, len(d.Elements))
	for _, ed := range d.Elements {
		var pattern *Pattern
		if ed.PatternID != "" {
			var ok bool
			if pattern, ok = p.PatternByID(ed.PatternID); !ok {
				return nil, fmt.Errorf("%w: element %q references unknown pattern %q", ErrInvalidData, ed.ID, ed.PatternID)
			}
		}
		el := NewElement(ElementInit{ID: ed.ID, Name: ed.Name, Role: ed.Role, Pattern: pattern})
		for _, pd := range ed.Properties {
			if pp, ok := patternProps[pd.PatternPropertyID]; ok {
				el.AddProperty(NewElementProperty(pp, pd.Value))
			} else {
				el.AddProperty(NewUnresolvedProperty(pd.PatternPropertyID, pd.Value))
			}
		}
		elements[ed.ID] = el
	}

	contents := make(map[string]*ElementContent, len(d.Contents))
	for _, cd := range d.Contents {
		var slot *Slot
		if cd.SlotID != "" {
			slot = slots[cd.SlotID]
		}
		contents[cd.ID] = NewElementContent(cd.ID, slot, cd.SlotType)
	}
	for _, cd := range d.Contents {
		c := contents[cd.ID]
		for _, id := range cd.ElementIDs {
			el, ok := elements[id]
			if !ok {
				return nil, fmt.Errorf("%w: content %q references unknown element %q", ErrInvalidData, cd.ID, id)
			}
			c.Append(el)
		}
	}
	for _, ed := range d.Elements {
		el := elements[ed.ID]
		for _, id := range ed.ContentIDs {
			c, ok := contents[id]
			if !ok {
				return nil, fmt.Errorf("%w: element %q references unknown content %q", ErrInvalidData, ed.ID, id)
			}
			el.AddContent(c)
		}
	}

	for _, pd := range d.Pages {
		var root *Element
		if pd.RootID != "" {
			var ok bool
			if root, ok = elements[pd.RootID]; !ok {
				return nil, fmt.Errorf("%w: page %q references unknown root %q", ErrInvalidData, pd.ID, pd.RootID)
			}
		}
		page := NewPage(pd.ID, pd.Name, root)
		page.active = pd.Active
		p.AddPage(page)
	}

	for _, ed := range d.Elements {
		el := elements[ed.ID]
		if ed.Selected {
			p.SetSelectedElement(el)
		}
		if ed.Highlighted {
			p.SetHighlightedElement(el)
		}
	}
	for _, cd := range d.Contents {
		if cd.Highlighted {
			p.SetHighlightedElementContent(contents[cd.ID])
		}
	}

	return p, nil
}
