package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-admin-data/internal/logging"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

const defaultTimeout = 30 * time.Second

// Option mutates the client configuration.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger injects the transport logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpc.Timeout = timeout
		}
	}
}

// Client issues backend requests with bearer-token signing and normalized
// error tagging. It holds no per-request state and is safe for concurrent
// use.
type Client struct {
	httpc     *http.Client
	endpoints *Endpoints
	store     interfaces.TokenStore
	logger    interfaces.Logger
}

// NewClient constructs a client over the resolved endpoint table. The token
// store may be nil for unauthenticated use (login itself).
func NewClient(endpoints *Endpoints, store interfaces.TokenStore, opts ...Option) *Client {
	client := &Client{
		httpc:     &http.Client{Timeout: defaultTimeout},
		endpoints: endpoints,
		store:     store,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Endpoints exposes the endpoint resolver for collaborators that need URLs
// outside the CRUD surface (login, proxy handlers).
func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// Do issues a request against an absolute endpoint URL and decodes the JSON
// response. A nil return with nil error means the backend sent no body.
// Non-2xx statuses surface as wrapped errors; nothing is retried.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body *Body) (any, error) {
	target := endpoint
	if len(query) > 0 {
		separator := "?"
		if strings.Contains(endpoint, "?") {
			separator = "&"
		}
		target = endpoint + separator + query.Encode()
	}

	var reader io.Reader
	contentType := ""
	if body != nil {
		reader = body.Reader
		contentType = body.ContentType
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.store != nil {
		if token, err := c.store.Get(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	res, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("rest.request.failed", "method", method, "url", target, "error", err)
		return nil, wrapTransportError(err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	c.logger.Debug("rest.request.completed",
		"method", method,
		"url", target,
		"status", res.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, wrapStatusError(&StatusError{
			StatusCode: res.StatusCode,
			Method:     method,
			URL:        target,
			Body:       truncate(string(raw), 512),
		})
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, wrapDecodingError(ErrResponseMalformed)
	}
	return payload, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
