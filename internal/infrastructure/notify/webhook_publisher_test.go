package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/joehodgson0/teamhub/internal/platform/resilience"
)

func TestWebhookPublisher_Publish(t *testing.T) {
	t.Parallel()

	var gotBody atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-TeamHub-Event") != "result.recorded" {
			t.Errorf("unexpected event header %q", r.Header.Get("X-TeamHub-Event"))
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	p := NewWebhookPublisher(WebhookPublisherConfig{URL: server.URL, Token: "secret"}, nil)
	p.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	err := p.Publish(context.Background(), "result.recorded", map[string]any{"fixtureId": "fx-1"})
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	var decoded struct {
		Kind       string         `json:"kind"`
		OccurredAt string         `json:"occurredAt"`
		Payload    map[string]any `json:"payload"`
	}
	if err := sonic.Unmarshal(gotBody.Load().([]byte), &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Kind != "result.recorded" || decoded.Payload["fixtureId"] != "fx-1" {
		t.Fatalf("unexpected envelope: %+v", decoded)
	}
	if decoded.OccurredAt != "2026-08-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", decoded.OccurredAt)
	}
}

func TestWebhookPublisher_Publish_Rejections(t *testing.T) {
	t.Parallel()

	p := NewWebhookPublisher(WebhookPublisherConfig{URL: "not-a-url"}, nil)
	if err := p.Publish(context.Background(), "result.recorded", nil); err == nil {
		t.Fatalf("expected error for bad url")
	}

	p = NewWebhookPublisher(WebhookPublisherConfig{URL: "https://example.test/hook"}, nil)
	if err := p.Publish(context.Background(), "  ", nil); err == nil {
		t.Fatalf("expected error for empty kind")
	}
}

func TestWebhookPublisher_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewWebhookPublisher(WebhookPublisherConfig{URL: server.URL}, nil)

	for i := 0; i < 5; i++ {
		if err := p.Publish(context.Background(), "post.published", nil); err == nil {
			t.Fatalf("expected delivery failure on attempt %d", i)
		}
	}

	err := p.Publish(context.Background(), "post.published", nil)
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}
