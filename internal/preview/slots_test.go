package preview

import (
	"testing"

	"github.com/danieljhkim/previewsync/internal/model"
)

func elementID(el *model.Element) string { return el.ID() }

func TestResolveChildren(t *testing.T) {
	tests := []struct {
		name     string
		required bool
		children int
		wantOK   bool
		wantLen  int
	}{
		{"empty optional", false, 0, false, 0},
		{"empty required", true, 0, true, 0},
		{"filled", false, 2, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &model.Slot{ID: "s", PropertyName: "children", Required: tt.required, Type: model.SlotTypeChildren}
			content := model.NewElementContent("c", slot, "")
			for i := 0; i < tt.children; i++ {
				content.Append(model.NewElement(model.ElementInit{ID: string(rune('a' + i))}))
			}
			el := model.NewElement(model.ElementInit{ID: "parent", Contents: []*model.ElementContent{content}})

			got, ok := ResolveChildren(el, elementID)

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && got == nil {
				t.Error("present slot should yield a non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestResolveChildren_NoSlotDefinition(t *testing.T) {
	content := model.NewElementContent("c", nil, model.SlotTypeChildren)
	content.Append(model.NewElement(model.ElementInit{ID: "a"}))
	el := model.NewElement(model.ElementInit{ID: "parent", Contents: []*model.ElementContent{content}})

	if _, ok := ResolveChildren(el, elementID); ok {
		t.Error("content without a slot definition should be absent")
	}
}

func TestResolveSlots(t *testing.T) {
	_, f := newTestStore(t, model.ModeLive)

	slots := ResolveSlots(f.Box1, elementID)

	if _, ok := slots["children"]; ok {
		t.Error("children slot should not be in ResolveSlots")
	}

	header, ok := slots["header"]
	if !ok {
		t.Fatal("header slot missing")
	}
	if !header.Present || header.Elements == nil || len(header.Elements) != 0 {
		t.Errorf("header = %+v, want present and empty", header)
	}

	footer := slots["footer"]
	if !footer.Present || len(footer.Elements) != 1 || footer.Elements[0] != "text-1" {
		t.Errorf("footer = %+v, want [text-1]", footer)
	}
}

func TestResolveSlots_OptionalEmptyAbsent(t *testing.T) {
	slot := &model.Slot{ID: "s", PropertyName: "aside", Type: model.SlotTypeProperty}
	el := model.NewElement(model.ElementInit{
		ID:       "parent",
		Contents: []*model.ElementContent{model.NewElementContent("c", slot, "")},
	})

	v, ok := ResolveSlots(el, elementID)["aside"]
	if !ok {
		t.Fatal("aside slot missing from result")
	}
	if v.Present || v.Elements != nil {
		t.Errorf("aside = %+v, want absent", v)
	}
}
