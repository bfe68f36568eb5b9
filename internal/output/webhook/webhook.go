package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultBaseDelay = time.Second
	maxRetries       = 3
)

var errClosed = errors.New("webhook: write after close")

// Option configures a webhook Output.
type Option func(*Output)

// WithHeaders sets extra HTTP headers sent with every POST, e.g. credentials
// for a proxy in front of the webhook.
func WithHeaders(h map[string]string) Option {
	return func(o *Output) { o.headers = h }
}

// WithTimeout sets the HTTP client timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return func(o *Output) { o.client.Timeout = d }
}

// WithBaseDelay sets the first retry delay, doubled per attempt. Default: 1s.
func WithBaseDelay(d time.Duration) Option {
	return func(o *Output) { o.baseDelay = d }
}

// Output POSTs each message to a Slack incoming webhook as a JSON payload.
// Retries on 5xx with exponential backoff; 4xx fails immediately.
type Output struct {
	client    *http.Client
	url       string
	headers   map[string]string
	baseDelay time.Duration
	closed    bool
}

// New creates a webhook output targeting the given URL.
func New(url string, opts ...Option) *Output {
	o := &Output{
		client:    &http.Client{Timeout: defaultTimeout},
		url:       url,
		baseDelay: defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write delivers the message. It blocks until Slack accepts it, retries are
// exhausted, or ctx is done.
func (o *Output) Write(ctx context.Context, msg model.Message) error {
	if o.closed {
		return errClosed
	}
	body, err := json.Marshal(output.FormatMessage(msg))
	if err != nil {
		return fmt.Errorf("webhook: marshal: %w", err)
	}
	if err := o.postWithRetry(ctx, body); err != nil {
		return err
	}
	slog.Info("menu delivered", "fields", msg.FieldCount())
	return nil
}

// Close marks the output closed. There is nothing buffered to flush.
func (o *Output) Close() error {
	o.closed = true
	return nil
}

// postWithRetry sends the body via HTTP POST with retry on 5xx.
func (o *Output) postWithRetry(ctx context.Context, body []byte) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			t := time.NewTimer(o.baseDelay * time.Duration(1<<(attempt-1)))
			select {
			case <-ctx.Done():
				t.Stop()
				return fmt.Errorf("webhook: %w", ctx.Err())
			case <-t.C:
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("webhook: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range o.headers {
			req.Header.Set(k, v)
		}

		resp, err := o.client.Do(req)
		if err != nil {
			return fmt.Errorf("webhook: %w", err)
		}
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		lastErr = fmt.Errorf("webhook: HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))

		// Only retry on 5xx server errors.
		if resp.StatusCode < 500 {
			return lastErr
		}
		slog.Warn("webhook delivery failed, retrying", "status", resp.StatusCode, "attempt", attempt+1)
	}
	return lastErr
}
