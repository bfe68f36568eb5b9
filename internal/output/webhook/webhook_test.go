package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/menubot/internal/model"
	"github.com/crimson-sun/menubot/internal/output"
)

func testMessage() model.Message {
	return model.Message{
		Title: "Today's menu",
		Sections: []model.Section{
			{Heading: "Meat entrées", Color: "danger", Fields: []model.Field{
				{Label: "Baked Cod", Value: ":fish: contains fish and milk", Emphasized: true},
			}},
			{Heading: "Vegetarian entrées", Color: "good"},
			{Heading: "Sides"},
		},
	}
}

func TestWritePostsPayload(t *testing.T) {
	var got output.Payload
	var method, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).Write(context.Background(), testMessage()))

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Today's menu", got.Text)
	require.Len(t, got.Attachments, 3)
	assert.Equal(t, []output.Field{{Title: "Baked Cod", Value: ":fish: contains fish and milk", Short: true}}, got.Attachments[0].Fields)
}

func TestRetryOn5xx(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(500)
			return
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	err := New(srv.URL, WithBaseDelay(time.Millisecond)).Write(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestRetriesExhausted(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(502)
	}))
	defer srv.Close()

	err := New(srv.URL, WithBaseDelay(time.Millisecond)).Write(context.Background(), testMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
	assert.Equal(t, int64(maxRetries+1), attempts.Load())
}

func TestNoRetryOn4xx(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(400)
		w.Write([]byte("invalid_payload"))
	}))
	defer srv.Close()

	err := New(srv.URL).Write(context.Background(), testMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_payload", "response body belongs in the error")
	assert.Equal(t, int64(1), attempts.Load())
}

func TestCustomHeaders(t *testing.T) {
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Proxy-Authorization")
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	out := New(srv.URL, WithHeaders(map[string]string{"Proxy-Authorization": "Basic bWVudWJvdA=="}))
	require.NoError(t, out.Write(context.Background(), testMessage()))

	assert.Equal(t, "Basic bWVudWJvdA==", gotAuth)
	assert.Equal(t, "application/json", gotType)
}

func TestNilHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL, WithHeaders(nil)).Write(context.Background(), testMessage()))
}

func TestContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(503)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := New(srv.URL, WithBaseDelay(time.Minute)).Write(ctx, testMessage())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWriteAfterClose(t *testing.T) {
	out := New("http://127.0.0.1:0")
	require.NoError(t, out.Close())

	assert.ErrorIs(t, out.Write(context.Background(), testMessage()), errClosed)
}
