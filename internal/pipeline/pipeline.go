package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/menubot/internal/connector"
	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

// Processor turns a fetched document into a menu message.
type Processor interface {
	Process(doc model.RawDocument) (model.Message, error)
}

// Pipeline connects a connector, engine, and output into one menu run.
type Pipeline struct {
	connector connector.Connector
	engine    Processor
	output    output.Output
	runID     string
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRunID fixes the identifier stamped on the message. By default each
// Pipeline gets a random UUID.
func WithRunID(id string) Option {
	return func(p *Pipeline) {
		if id != "" {
			p.runID = id
		}
	}
}

// WithClock overrides the time source for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a Pipeline from the given components.
func New(conn connector.Connector, eng Processor, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		connector: conn,
		engine:    eng,
		output:    out,
		runID:     uuid.NewString(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunID returns the identifier stamped on messages produced by p.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Run fetches one document, renders it and delivers the message to the
// output. Any failure aborts the run before delivery; nothing partial is
// written.
func (p *Pipeline) Run(ctx context.Context, cfg connector.ConnectorConfig) (model.Message, error) {
	doc, err := p.connector.Fetch(ctx, cfg)
	if err != nil {
		return model.Message{}, fmt.Errorf("pipeline fetch: %w", err)
	}
	slog.Info("menu fetched", "source", doc.Source, "uri", doc.URI, "bytes", len(doc.HTML))

	msg, err := p.engine.Process(doc)
	if err != nil {
		return model.Message{}, fmt.Errorf("pipeline process: %w", err)
	}
	msg.RunID = p.runID
	msg.Source = doc.Source
	msg.GeneratedAt = p.now()

	if err := ctx.Err(); err != nil {
		return model.Message{}, err
	}
	if err := p.output.Write(ctx, msg); err != nil {
		return model.Message{}, fmt.Errorf("pipeline output: %w", err)
	}
	slog.Info("run complete", "dishes", msg.FieldCount())
	return msg, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
