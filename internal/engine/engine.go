package engine

import (
	"fmt"
	"log/slog"

	"github.com/crimson-sun/menubot/internal/engine/dedup"
	"github.com/crimson-sun/menubot/internal/engine/extract"
	"github.com/crimson-sun/menubot/internal/engine/render"
	"github.com/crimson-sun/menubot/internal/model"
)

// DefaultTitle is the message title when none is configured.
const DefaultTitle = "Today's menu"

// Engine extracts dishes from a page, merges duplicates, renders each one
// and assembles the message.
// It holds no state between calls.
type Engine struct {
	title string
}

// Option configures an Engine.
type Option func(*Engine)

// WithTitle sets the message title. Empty keeps the default.
func WithTitle(title string) Option {
	return func(e *Engine) {
		if title != "" {
			e.title = title
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{title: DefaultTitle}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process turns one menu document into a message. Any malformed node or
// unknown tag aborts the whole run; there is no partial message.
func (e *Engine) Process(doc model.RawDocument) (model.Message, error) {
	raws, err := extract.Dishes(doc)
	if err != nil {
		return model.Message{}, err
	}
	dishes := dedup.Resolve(raws)

	rendered := make([]Rendered, 0, len(dishes))
	for _, d := range dishes {
		f, g, err := render.Field(d.Name, d.Dish)
		if err != nil {
			return model.Message{}, fmt.Errorf("dish %q: %w", d.Name, err)
		}
		rendered = append(rendered, Rendered{Field: f, Group: g})
	}

	msg := Assemble(e.title, rendered)
	slog.Debug("menu processed",
		"source", doc.Source,
		"items", len(raws),
		"dishes", len(dishes),
		"fields", msg.FieldCount())
	return msg, nil
}
