package model

// ElementContent is a slot of an element holding an ordered list of child
// elements.
type ElementContent struct {
	id          string
	slot        *Slot
	slotType    SlotType
	elements    []*Element
	highlighted bool

	parent *Element
}

// NewElementContent creates a content for slot. The slot may be nil for
// contents whose definition cannot be resolved; slotType then decides
// whether the content is the default children slot.
func NewElementContent(id string, slot *Slot, slotType SlotType) *ElementContent {
	if slotType == "" && slot != nil {
		slotType = slot.Type
	}
	if slotType == "" {
		slotType = SlotTypeProperty
	}
	return &ElementContent{id: id, slot: slot, slotType: slotType}
}

func (c *ElementContent) ID() string           { return c.id }
func (c *ElementContent) SlotType() SlotType   { return c.slotType }
func (c *ElementContent) Highlighted() bool    { return c.highlighted }
func (c *ElementContent) Parent() *Element     { return c.parent }
func (c *ElementContent) Elements() []*Element { return c.elements }

// Slot returns the slot definition, if it could be resolved.
func (c *ElementContent) Slot() (*Slot, bool) {
	return c.slot, c.slot != nil
}

// Append adds el as the last child of the content.
func (c *ElementContent) Append(el *Element) {
	el.parent = c
	c.elements = append(c.elements, el)
	if c.parent != nil && c.parent.project != nil {
		c.parent.project.registerElement(el)
		c.parent.project.changes.Notify()
	}
}

// Remove detaches el from the content. Selection and highlight references
// to el or its descendants are cleared.
func (c *ElementContent) Remove(el *Element) bool {
	for i, child := range c.elements {
		if child != el {
			continue
		}
		c.elements = append(c.elements[:i:i], c.elements[i+1:]...)
		el.parent = nil
		if c.parent != nil && c.parent.project != nil {
			c.parent.project.unregisterElement(el)
			c.parent.project.changes.Notify()
		}
		return true
	}
	return false
}
