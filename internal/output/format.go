package output

import "github.com/crimson-sun/menubot/internal/model"

// Payload is the Slack incoming-webhook message body.
type Payload struct {
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is one colored block of a Slack message.
type Attachment struct {
	Fallback string  `json:"fallback"`
	Title    string  `json:"title"`
	Text     string  `json:"text"`
	Color    string  `json:"color,omitempty"`
	Fields   []Field `json:"fields"`
}

// Field is a title/value pair inside an attachment. Short fields are laid
// out side by side.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// FormatMessage maps a message to the webhook payload: one attachment per
// section, in section order, one field per dish.
func FormatMessage(m model.Message) Payload {
	p := Payload{
		Text:        m.Title,
		Attachments: make([]Attachment, 0, len(m.Sections)),
	}
	for _, s := range m.Sections {
		a := Attachment{
			Fallback: s.Heading,
			Title:    s.Heading,
			Color:    s.Color,
			Fields:   make([]Field, 0, len(s.Fields)),
		}
		for _, f := range s.Fields {
			a.Fields = append(a.Fields, Field{Title: f.Label, Value: f.Value, Short: f.Emphasized})
		}
		p.Attachments = append(p.Attachments, a)
	}
	return p
}
