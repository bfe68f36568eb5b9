package campusdish

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/crimson-sun/menubot/internal/connector"
	"github.com/crimson-sun/menubot/internal/connector/httpclient"
	"github.com/crimson-sun/menubot/internal/model"
)

const (
	defaultEndpoint   = "https://mit.campusdish.com"
	defaultLocationID = "9333"
	defaultPeriodID   = "1440"
	menuPath          = "/Commerce/Catalog/Menus.aspx"
)

func init() {
	connector.Register("campusdish", func() connector.Connector {
		return &Connector{}
	})
}

// Connector fetches a location's menu page from a CampusDish site.
//
// Extra keys: "location_id", "period_id", "timeout" (Go duration).
type Connector struct {
	// now is overridable in tests.
	now func() time.Time
}

// Fetch downloads the menu page for the configured location and period.
func (c *Connector) Fetch(ctx context.Context, cfg connector.ConnectorConfig) (model.RawDocument, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	var opts []httpclient.Option
	if cfg.UserAgent != "" {
		opts = append(opts, httpclient.WithUserAgent(cfg.UserAgent))
	}
	if s := cfg.Extra["timeout"]; s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return model.RawDocument{}, fmt.Errorf("campusdish: invalid timeout %q: %w", s, err)
		}
		opts = append(opts, httpclient.WithTimeout(d))
	}
	client := httpclient.New(endpoint, opts...)

	q := url.Values{}
	q.Set("LocationId", cfg.ExtraOr("location_id", defaultLocationID))
	q.Set("PeriodId", cfg.ExtraOr("period_id", defaultPeriodID))

	slog.Info("fetching menu", "endpoint", endpoint, "location_id", q.Get("LocationId"), "period_id", q.Get("PeriodId"))
	body, err := client.GetText(ctx, menuPath, q)
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("campusdish: %w", err)
	}

	return model.RawDocument{
		FetchedAt: c.clock(),
		Source:    "campusdish",
		URI:       endpoint + menuPath + "?" + q.Encode(),
		HTML:      body,
	}, nil
}

func (c *Connector) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
