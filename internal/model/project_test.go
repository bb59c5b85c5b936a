package model_test

import (
	"testing"

	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/model/modeltest"
)

func TestProject_ElementsAttachedThroughPages(t *testing.T) {
	f := modeltest.New("p1")

	for _, id := range []string{"root", "box-1", "box-2", "text-1", "root-2"} {
		el, ok := f.Project.ElementByID(id)
		if !ok {
			t.Errorf("ElementByID(%q) not found", id)
			continue
		}
		if el.Project() != f.Project {
			t.Errorf("element %q not attached to project", id)
		}
	}

	if _, ok := f.Project.ContentByID("box-1-footer"); !ok {
		t.Error("ContentByID(box-1-footer) not found")
	}
}

func TestProject_SetSelectedElement(t *testing.T) {
	f := modeltest.New("p1")
	p := f.Project

	p.SetSelectedElement(f.Box1)
	if got, ok := p.SelectedElement(); !ok || got != f.Box1 {
		t.Fatalf("SelectedElement() = %v, want box-1", got)
	}
	if !f.Box1.Selected() {
		t.Error("box-1 should carry the selected flag")
	}

	p.SetSelectedElement(f.Box2)
	if f.Box1.Selected() {
		t.Error("previous selection should be cleared")
	}
	if got, _ := p.SelectedElement(); got != f.Box2 {
		t.Errorf("SelectedElement() = %v, want box-2", got.ID())
	}
}

func TestProject_RootNeverSelectedOrHighlighted(t *testing.T) {
	f := modeltest.New("p1")
	p := f.Project

	p.SetSelectedElement(f.Root)
	p.SetHighlightedElement(f.Root)

	if _, ok := p.SelectedElement(); ok {
		t.Error("root element must not be selectable")
	}
	if _, ok := p.HighlightedElement(); ok {
		t.Error("root element must not be highlightable")
	}
	if f.Root.Selected() || f.Root.Highlighted() {
		t.Error("root flags must stay false")
	}
}

func TestProject_ForeignElementsIgnored(t *testing.T) {
	f := modeltest.New("p1")
	other := modeltest.New("p2")

	f.Project.SetSelectedElement(other.Box1)
	f.Project.SetHighlightedElement(model.NewElement(model.ElementInit{ID: "detached"}))
	f.Project.SetHighlightedElementContent(other.BoxFooter)

	if _, ok := f.Project.SelectedElement(); ok {
		t.Error("selection must only point into the project tree")
	}
	if _, ok := f.Project.HighlightedElement(); ok {
		t.Error("highlight must only point into the project tree")
	}
	if _, ok := f.Project.HighlightedElementContent(); ok {
		t.Error("content highlight must only point into the project tree")
	}
}

func TestProject_UnsetIsIdempotent(t *testing.T) {
	f := modeltest.New("p1")
	p := f.Project
	p.SetHighlightedElementContent(f.BoxHeader)

	notifications := 0
	p.Subscribe(func() { notifications++ })

	p.UnsetHighlightedElementContent()
	p.UnsetHighlightedElementContent()
	p.UnsetSelectedElement()
	p.UnsetHighlightedElement()

	if notifications != 1 {
		t.Errorf("notifications = %d, want 1", notifications)
	}
	if f.BoxHeader.Highlighted() {
		t.Error("content flag should be cleared")
	}
}

func TestProject_SetActivePage(t *testing.T) {
	f := modeltest.New("p1")
	p := f.Project

	p.SetActivePage(f.Second)

	active := 0
	for _, page := range p.Pages() {
		if page.Active() {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("active pages = %d, want 1", active)
	}
	if got, _ := p.ActivePage(); got != f.Second {
		t.Errorf("ActivePage() = %q, want page-2", got.ID())
	}

}

func TestProject_SetActivePageIgnoresForeignPages(t *testing.T) {
	tests := []struct {
		name string
		page func() *model.Page
	}{
		{name: "nil", page: func() *model.Page { return nil }},
		{name: "unattached", page: func() *model.Page { return model.NewPage("stray", "Stray", nil) }},
		{name: "other project", page: func() *model.Page { return modeltest.New("p2").Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := modeltest.New("p1")
			p := f.Project
			p.SetActivePage(f.Second)

			notified := 0
			cancel := p.Subscribe(func() { notified++ })
			defer cancel()

			p.SetActivePage(tt.page())

			if got, ok := p.ActivePage(); !ok || got != f.Second {
				t.Errorf("ActivePage() = %v, %v; want page-2 to stay active", got, ok)
			}
			if !f.Second.Active() || f.Page.Active() {
				t.Errorf("active flags = page-1 %v, page-2 %v; want only page-2", f.Page.Active(), f.Second.Active())
			}
			if notified != 0 {
				t.Errorf("subscribers notified %d times, want 0", notified)
			}
		})
	}
}

func TestContent_RemoveClearsReferences(t *testing.T) {
	f := modeltest.New("p1")
	p := f.Project
	p.SetSelectedElement(f.Text)
	p.SetHighlightedElement(f.Box1)
	p.SetHighlightedElementContent(f.BoxFooter)

	if !f.RootChildren.Remove(f.Box1) {
		t.Fatal("Remove(box-1) = false")
	}

	if _, ok := p.SelectedElement(); ok {
		t.Error("selection of a removed descendant should be cleared")
	}
	if _, ok := p.HighlightedElement(); ok {
		t.Error("highlight of a removed element should be cleared")
	}
	if _, ok := p.HighlightedElementContent(); ok {
		t.Error("highlight of a removed content should be cleared")
	}
	if _, ok := p.ElementByID("text-1"); ok {
		t.Error("descendants of a removed element should be detached")
	}
	if f.RootChildren.Remove(f.Box1) {
		t.Error("second Remove should report false")
	}
}

func TestProject_SubscribeSeesMutations(t *testing.T) {
	f := modeltest.New("p1")
	var names []string
	f.Project.Subscribe(func() { names = append(names, f.Project.Name()) })

	f.Project.SetName("Renamed")
	prop, _ := f.Box1.PropertyByName("label")
	prop.SetValue("Bye")

	if len(names) != 2 || names[0] != "Renamed" {
		t.Errorf("observer saw %v", names)
	}
}

func TestElementProperty_ActionIDs(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"absent", nil, nil},
		{"empty string", "", nil},
		{"single", "a1", []string{"a1"}},
		{"list", []string{"a1", "a2"}, []string{"a1", "a2"}},
		{"decoded list", []any{"a1", 3, "a2"}, []string{"a1", "a2"}},
		{"other", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.NewUnresolvedProperty("x", tt.value).ActionIDs()
			if len(got) != len(tt.want) {
				t.Fatalf("ActionIDs() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ActionIDs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
