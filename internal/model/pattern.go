package model

// Pattern is a component definition elements instantiate.
type Pattern struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	ExportName string             `json:"exportName"`
	Properties []*PatternProperty `json:"properties,omitempty"`
	Slots      []*Slot            `json:"slots,omitempty"`
}

// PatternProperty is the static schema of one property.
type PatternProperty struct {
	ID           string       `json:"id"`
	PropertyName string       `json:"propertyName"`
	Type         PropertyType `json:"type"`

	// Event is set for PropertyEventHandler properties.
	Event *Event `json:"event,omitempty"`
}

// Event describes the native event an event handler property listens to.
type Event struct {
	Type EventType `json:"type"`
}

// Slot is a named insertion point accepting child elements.
type Slot struct {
	ID           string   `json:"id"`
	PropertyName string   `json:"propertyName"`
	Required     bool     `json:"required"`
	Type         SlotType `json:"type"`
}

// PropertyByID returns the pattern property with the given id.
func (p *Pattern) PropertyByID(id string) (*PatternProperty, bool) {
	for _, prop := range p.Properties {
		if prop.ID == id {
			return prop, true
		}
	}
	return nil, false
}

// SlotByID returns the slot with the given id.
func (p *Pattern) SlotByID(id string) (*Slot, bool) {
	for _, slot := range p.Slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return nil, false
}

// IsEventHandler reports whether the property resolves to a callback.
func (pp *PatternProperty) IsEventHandler() bool {
	return pp.Type == PropertyEventHandler
}
