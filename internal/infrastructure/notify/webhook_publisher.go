package notify

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joehodgson0/teamhub/internal/platform/logging"
	"github.com/joehodgson0/teamhub/internal/platform/resilience"
)

type WebhookPublisherConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// WebhookPublisher delivers activity notifications to an external HTTP
// consumer. Callers treat delivery as best-effort; a circuit breaker keeps
// a dead endpoint from slowing down the request path.
type WebhookPublisher struct {
	client  *http.Client
	url     string
	token   string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
	now     func() time.Time
}

func NewWebhookPublisher(cfg WebhookPublisherConfig, logger *logging.Logger) *WebhookPublisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &WebhookPublisher{
		client:  &http.Client{Timeout: timeout},
		url:     strings.TrimSpace(cfg.URL),
		token:   strings.TrimSpace(cfg.Token),
		breaker: resilience.NewCircuitBreaker(5, 30*time.Second),
		logger:  logger,
		now:     time.Now,
	}
}

type envelope struct {
	Kind       string `json:"kind"`
	OccurredAt string `json:"occurredAt"`
	Payload    any    `json:"payload"`
}

func (p *WebhookPublisher) Publish(ctx context.Context, kind string, payload any) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return errors.New("notification kind is required")
	}

	endpoint, err := validateHTTPURL(p.url)
	if err != nil {
		return errors.Wrap(err, "invalid webhook url")
	}

	if err := p.breaker.Allow(); err != nil {
		return errors.Wrapf(err, "webhook kind=%s", kind)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body, err := sonic.Marshal(envelope{
		Kind:       kind,
		OccurredAt: p.now().UTC().Format(time.RFC3339),
		Payload:    payload,
	})
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}
	if _, err := buf.Write(body); err != nil {
		return errors.Wrap(err, "buffer notification")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.url", endpoint),
			attribute.String("webhook.kind", kind),
			attribute.Int("webhook.body_bytes", buf.Len()),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf.Bytes()))
	if err != nil {
		p.breaker.RecordFailure()
		return errors.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-TeamHub-Event", kind)
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.breaker.RecordFailure()
		return errors.Wrapf(err, "deliver webhook kind=%s", kind)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		p.breaker.RecordFailure()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errors.Newf("deliver webhook kind=%s status=%d body=%s", kind, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	p.breaker.RecordSuccess()
	p.logger.DebugContext(ctx, "webhook delivered", "kind", kind, "status", resp.StatusCode)
	return nil
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", errors.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", errors.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.Newf("%q uses unsupported scheme %q", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", errors.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}
