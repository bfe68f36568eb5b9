package menubot

import (
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

// Message is a rendered menu.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Message struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one group of dishes. Sections always appear in the order
// meat entrées, vegetarian entrées, sides, even when empty.
type Section struct {
	Heading string  `json:"heading"`
	Color   string  `json:"color,omitempty"` // Slack attachment color: "danger", "good" or empty
	Fields  []Field `json:"fields"`
}

// Field is one dish.
type Field struct {
	Label      string `json:"label"`      // Dish name
	Value      string `json:"value"`      // Icon, diets and allergens, e.g. ":fish: contains fish and milk"
	Emphasized bool   `json:"emphasized"` // Rendered as a short side-by-side field
}

// SlackJSON encodes the message as a Slack incoming-webhook payload.
func (m Message) SlackJSON() ([]byte, error) {
	data, err := json.Marshal(output.FormatMessage(m.internal()))
	if err != nil {
		return nil, fmt.Errorf("menubot: %w", err)
	}
	return data, nil
}

func messageFromModel(m model.Message) Message {
	out := Message{Title: m.Title, Sections: make([]Section, len(m.Sections))}
	for i, s := range m.Sections {
		fields := make([]Field, len(s.Fields))
		for j, f := range s.Fields {
			fields[j] = Field{Label: f.Label, Value: f.Value, Emphasized: f.Emphasized}
		}
		out.Sections[i] = Section{Heading: s.Heading, Color: s.Color, Fields: fields}
	}
	return out
}

func (m Message) internal() model.Message {
	out := model.Message{Title: m.Title, Sections: make([]model.Section, len(m.Sections))}
	for i, s := range m.Sections {
		fields := make([]model.Field, len(s.Fields))
		for j, f := range s.Fields {
			fields[j] = model.Field{Label: f.Label, Value: f.Value, Emphasized: f.Emphasized}
		}
		out.Sections[i] = model.Section{Heading: s.Heading, Color: s.Color, Fields: fields}
	}
	return out
}
