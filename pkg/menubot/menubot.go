package menubot

import (
	"fmt"
	"time"

	"github.com/crimson-sun/menubot/internal/engine"
	"github.com/crimson-sun/menubot/internal/model"
)

// Errors returned by Render, for use with errors.Is.
var (
	// ErrMalformedDocument means a station has no name or a dish has no
	// name node.
	ErrMalformedDocument = model.ErrMalformedDocument
	// ErrUnknownVocabulary means a diet or allergen tag has no display word.
	ErrUnknownVocabulary = model.ErrUnknownVocabulary
)

// Render turns a menu page into a message. Any malformed station or dish
// fails the whole render; there is no partial message.
func Render(document string, opts ...Option) (Message, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	eng := engine.New(engine.WithTitle(o.title))
	m, err := eng.Process(model.RawDocument{
		FetchedAt: time.Now(),
		Source:    "menubot",
		HTML:      document,
	})
	if err != nil {
		return Message{}, fmt.Errorf("menubot: %w", err)
	}
	return messageFromModel(m), nil
}
