package output

import (
	"context"

	"github.com/crimson-sun/menubot/internal/model"
)

// Output defines the interface for menu message destinations.
type Output interface {
	Write(ctx context.Context, msg model.Message) error
	Close() error
}
