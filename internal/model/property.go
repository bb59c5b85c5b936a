package model

// ElementProperty binds a value to a PatternProperty on an element.
//
// Literal properties hold their value as stored. Event handler properties
// hold an ElementAction id, a list of ids, or nothing.
type ElementProperty struct {
	patternPropertyID string
	patternProperty   *PatternProperty
	value             any

	element *Element
}

// NewElementProperty creates a property bound to pp.
func NewElementProperty(pp *PatternProperty, value any) *ElementProperty {
	prop := &ElementProperty{patternProperty: pp, value: value}
	if pp != nil {
		prop.patternPropertyID = pp.ID
	}
	return prop
}

// NewUnresolvedProperty creates a property whose schema is unknown. It is
// kept for round-tripping and skipped when resolving render properties.
func NewUnresolvedProperty(patternPropertyID string, value any) *ElementProperty {
	return &ElementProperty{patternPropertyID: patternPropertyID, value: value}
}

// PatternPropertyID returns the id of the referenced schema.
func (p *ElementProperty) PatternPropertyID() string {
	return p.patternPropertyID
}

// PatternProperty returns the resolved schema, if any.
func (p *ElementProperty) PatternProperty() (*PatternProperty, bool) {
	return p.patternProperty, p.patternProperty != nil
}

// Value returns the stored value.
func (p *ElementProperty) Value() any {
	return p.value
}

// SetValue replaces the stored value.
func (p *ElementProperty) SetValue(v any) {
	p.value = v
	if p.element != nil {
		p.element.notify()
	}
}

// ActionIDs interprets the value as event handler action references.
// Values that are neither a string nor a list of strings yield nil.
func (p *ElementProperty) ActionIDs() []string {
	switch v := p.value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			if id, ok := item.(string); ok {
				ids = append(ids, id)
			}
		}
		return ids
	}
	return nil
}
