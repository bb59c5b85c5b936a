// Package modeltest builds small projects for tests.
package modeltest

import "github.com/danieljhkim/previewsync/internal/model"

// Fixture is a one-page project:
//
//	page (root, pattern "page")
//	└── children
//	    ├── box-1 (label "Hello", onClick -> [open, missing, switch])
//	    │   ├── children: (empty, optional)
//	    │   ├── header:   (empty, required)
//	    │   └── footer:   [text-1]
//	    └── box-2 (onChange -> "open")
type Fixture struct {
	Project *model.Project
	Page    *model.Page
	Second  *model.Page

	Root *model.Element
	Box1 *model.Element
	Box2 *model.Element
	Text *model.Element

	RootChildren *model.ElementContent
	BoxChildren  *model.ElementContent
	BoxHeader    *model.ElementContent
	BoxFooter    *model.ElementContent

	PagePattern *model.Pattern
	BoxPattern  *model.Pattern
	TextPattern *model.Pattern

	OpenAction   *model.ElementAction
	SwitchAction *model.ElementAction
}

// New builds the fixture project with the given id. Name equals the id and
// the project is a draft without a path.
func New(projectID string) *Fixture {
	f := &Fixture{}

	pageChildren := &model.Slot{ID: "page-children", PropertyName: "children", Type: model.SlotTypeChildren}
	f.PagePattern = &model.Pattern{
		ID: "page", Name: "Page", ExportName: "Page",
		Slots: []*model.Slot{pageChildren},
	}

	label := &model.PatternProperty{ID: "box-label", PropertyName: "label", Type: model.PropertyString}
	onClick := &model.PatternProperty{
		ID: "box-onclick", PropertyName: "onClick", Type: model.PropertyEventHandler,
		Event: &model.Event{Type: model.EventMouse},
	}
	onChange := &model.PatternProperty{
		ID: "box-onchange", PropertyName: "onChange", Type: model.PropertyEventHandler,
		Event: &model.Event{Type: model.EventChange},
	}
	boxChildren := &model.Slot{ID: "box-children", PropertyName: "children", Type: model.SlotTypeChildren}
	header := &model.Slot{ID: "box-header", PropertyName: "header", Required: true, Type: model.SlotTypeProperty}
	footer := &model.Slot{ID: "box-footer", PropertyName: "footer", Type: model.SlotTypeProperty}
	f.BoxPattern = &model.Pattern{
		ID: "box", Name: "Box", ExportName: "Box",
		Properties: []*model.PatternProperty{label, onClick, onChange},
		Slots:      []*model.Slot{boxChildren, header, footer},
	}

	text := &model.PatternProperty{ID: "text-text", PropertyName: "text", Type: model.PropertyString}
	f.TextPattern = &model.Pattern{
		ID: "text", Name: "Text", ExportName: "Text",
		Properties: []*model.PatternProperty{text},
	}

	f.OpenAction = &model.ElementAction{
		ID: "open", Kind: model.ActionOpenURL,
		Payload: map[string]string{"url": "https://example.com"},
	}
	f.SwitchAction = &model.ElementAction{
		ID: "switch", Kind: model.ActionSwitchPage,
		Payload: map[string]string{"page": "page-2"},
	}

	f.Text = model.NewElement(model.ElementInit{
		ID: "text-1", Name: "Text", Pattern: f.TextPattern,
		Properties: []*model.ElementProperty{model.NewElementProperty(text, "Footer")},
	})

	f.BoxChildren = model.NewElementContent("box-1-children", boxChildren, "")
	f.BoxHeader = model.NewElementContent("box-1-header", header, "")
	f.BoxFooter = model.NewElementContent("box-1-footer", footer, "")
	f.BoxFooter.Append(f.Text)

	f.Box1 = model.NewElement(model.ElementInit{
		ID: "box-1", Name: "Box 1", Pattern: f.BoxPattern,
		Properties: []*model.ElementProperty{
			model.NewElementProperty(label, "Hello"),
			model.NewElementProperty(onClick, []string{"open", "missing", "switch"}),
			model.NewUnresolvedProperty("gone", "stale"),
		},
		Contents: []*model.ElementContent{f.BoxChildren, f.BoxHeader, f.BoxFooter},
	})
	f.Box2 = model.NewElement(model.ElementInit{
		ID: "box-2", Name: "Box 2", Pattern: f.BoxPattern,
		Properties: []*model.ElementProperty{
			model.NewElementProperty(onChange, "open"),
		},
	})

	f.RootChildren = model.NewElementContent("root-children", pageChildren, "")
	f.RootChildren.Append(f.Box1)
	f.RootChildren.Append(f.Box2)

	f.Root = model.NewElement(model.ElementInit{
		ID: "root", Name: "Page", Role: model.RoleRoot, Pattern: f.PagePattern,
		Contents: []*model.ElementContent{f.RootChildren},
	})

	f.Project = model.NewProject(model.ProjectInit{ID: projectID, Name: projectID, Draft: true})
	f.Project.AddPattern(f.PagePattern)
	f.Project.AddPattern(f.BoxPattern)
	f.Project.AddPattern(f.TextPattern)
	f.Project.AddElementAction(f.OpenAction)
	f.Project.AddElementAction(f.SwitchAction)

	f.Page = model.NewPage("page-1", "Page 1", f.Root)
	f.Project.AddPage(f.Page)

	secondRoot := model.NewElement(model.ElementInit{
		ID: "root-2", Name: "Page", Role: model.RoleRoot, Pattern: f.PagePattern,
	})
	f.Second = model.NewPage("page-2", "Page 2", secondRoot)
	f.Project.AddPage(f.Second)
	f.Project.SetActivePage(f.Page)

	return f
}
