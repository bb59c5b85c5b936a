package preview

import "github.com/danieljhkim/previewsync/internal/model"

// SlotValue is the resolved content of one named slot. Present is false when
// the slot is empty and optional, meaning the container should be omitted;
// a required empty slot is present with no elements so a placeholder can be
// rendered.
type SlotValue[T any] struct {
	Elements []T
	Present  bool
}

// ResolveChildren renders the default children slot of el. It reports false
// when el has no children slot, the slot has no definition, or the slot is
// empty and not required. A required empty slot yields an empty, non-nil
// slice.
func ResolveChildren[T any](el *model.Element, render func(*model.Element) T) ([]T, bool) {
	content, ok := el.ContentBySlotType(model.SlotTypeChildren)
	if !ok {
		return nil, false
	}
	slot, ok := content.Slot()
	if !ok {
		return nil, false
	}
	v := resolveContent(content, slot, render)
	return v.Elements, v.Present
}

// ResolveSlots renders every named slot of el, keyed by the slot's property
// name. Contents without a slot definition are skipped.
func ResolveSlots[T any](el *model.Element, render func(*model.Element) T) map[string]SlotValue[T] {
	out := make(map[string]SlotValue[T])
	for _, content := range el.Contents() {
		if content.SlotType() == model.SlotTypeChildren {
			continue
		}
		slot, ok := content.Slot()
		if !ok {
			continue
		}
		out[slot.PropertyName] = resolveContent(content, slot, render)
	}
	return out
}

func resolveContent[T any](content *model.ElementContent, slot *model.Slot, render func(*model.Element) T) SlotValue[T] {
	elements := content.Elements()
	if len(elements) == 0 && !slot.Required {
		return SlotValue[T]{}
	}
	items := make([]T, 0, len(elements))
	for _, el := range elements {
		items = append(items, render(el))
	}
	return SlotValue[T]{Elements: items, Present: true}
}
