package engine

import "github.com/crimson-sun/menubot/internal/model"

// Rendered is a field tagged with the group it belongs to.
type Rendered struct {
	Field model.Field
	Group model.Group
}

// SectionLayout describes one output section.
type SectionLayout struct {
	Group   model.Group
	Heading string
	Color   string
}

// Layout is the fixed section order of every message.
var Layout = []SectionLayout{
	{Group: model.GroupMeat, Heading: "Meat entrées", Color: "danger"},
	{Group: model.GroupVegetarian, Heading: "Vegetarian entrées", Color: "good"},
	{Group: model.GroupSide, Heading: "Sides"},
}

// Assemble distributes rendered fields into the Layout sections, keeping
// their relative order. Empty sections are still present.
func Assemble(title string, rendered []Rendered) model.Message {
	sections := make([]model.Section, len(Layout))
	for i, l := range Layout {
		sections[i] = model.Section{Heading: l.Heading, Color: l.Color, Fields: []model.Field{}}
	}
	for _, r := range rendered {
		for i, l := range Layout {
			if l.Group == r.Group {
				sections[i].Fields = append(sections[i].Fields, r.Field)
				break
			}
		}
	}
	return model.Message{Title: title, Sections: sections}
}
