package connector

import (
	"context"

	"github.com/crimson-sun/menubot/internal/model"
)

// Connector defines the interface all menu document sources must implement.
type Connector interface {
	// Fetch returns one complete menu document.
	Fetch(ctx context.Context, cfg ConnectorConfig) (model.RawDocument, error)
}

// ConnectorConfig holds provider-specific connection settings.
type ConnectorConfig struct {
	Provider  string
	Endpoint  string
	UserAgent string
	Extra     map[string]string
}

// ExtraOr returns cfg.Extra[key], or fallback when it is unset or empty.
func (cfg ConnectorConfig) ExtraOr(key, fallback string) string {
	if v := cfg.Extra[key]; v != "" {
		return v
	}
	return fallback
}
