package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/crimson-sun/menubot/internal/connector"
	"github.com/crimson-sun/menubot/internal/model"
)

var errNoPath = errors.New("file connector: no path configured")

func init() {
	connector.Register("file", func() connector.Connector {
		return &Connector{}
	})
}

// Connector reads a menu page from a local file. The path comes from
// Extra["path"], falling back to Endpoint.
type Connector struct{}

// Fetch reads the whole file.
func (c *Connector) Fetch(_ context.Context, cfg connector.ConnectorConfig) (model.RawDocument, error) {
	path := cfg.ExtraOr("path", cfg.Endpoint)
	if path == "" {
		return model.RawDocument{}, errNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("file connector: %w", err)
	}

	fetched := time.Now()
	if info, err := os.Stat(path); err == nil {
		fetched = info.ModTime()
	}
	return model.RawDocument{
		FetchedAt: fetched,
		Source:    "file",
		URI:       path,
		HTML:      string(data),
	}, nil
}
