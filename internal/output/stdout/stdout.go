package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

// Output writes the JSON webhook payload of each message to a writer,
// stdout by default.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output with optional pretty-printed JSON.
func New(pretty bool) *Output {
	return NewWriter(os.Stdout, pretty)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, pretty bool) *Output {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, msg model.Message) error {
	if err := o.enc.Encode(output.FormatMessage(msg)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
