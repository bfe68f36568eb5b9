package model

import "time"

// Field is one rendered dish line.
type Field struct {
	Label      string // dish name
	Value      string // icon, diet phrase and allergen clause
	Emphasized bool
}

// Section is a titled, optionally colored list of fields.
type Section struct {
	Heading string
	Color   string // empty means no color
	Fields  []Field
}

// Message is the assembled menu handed to outputs.
// Sections are always Meat, Vegetarian, Side in that order.
type Message struct {
	Title    string
	Sections []Section

	// Run metadata, set by the pipeline. Not part of the rendered payload.
	RunID       string
	Source      string
	GeneratedAt time.Time
}

// FieldCount returns the number of fields across all sections.
func (m Message) FieldCount() int {
	n := 0
	for _, s := range m.Sections {
		n += len(s.Fields)
	}
	return n
}
