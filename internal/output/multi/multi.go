package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

// Multi fans out a menu message to several outputs, for example a Slack
// webhook plus the local archive. Outputs are written in order and a failing
// output does not stop the rest.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers msg to every wrapped output and joins their errors.
func (m *Multi) Write(ctx context.Context, msg model.Message) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
