// Package farmapi is the HTTP client of the remote farm REST API.
//
// Every method performs exactly one request. The bearer token is read from
// the TokenSource on each call and never cached. Non-2xx responses surface as
// *domain.APIError, which unwraps to the matching domain sentinel.
package farmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/pkg/ctxutil"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// TokenSource yields the current bearer token. An empty token means the
// request is sent without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the farm REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	userAgent  string
	metrics    *Metrics
	log        *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records every call into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a Client. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		userAgent:  "farmdash",
		log:        logger.With("adapter", "farmapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one request. route is the path template used for metrics
// and logs; path is the concrete, escaped path.
type call struct {
	method string
	route  string
	path   string
	body   any
	auth   bool
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	start := time.Now()

	resp, err := c.send(ctx, cl)
	if err != nil {
		c.metrics.observe(cl.method, cl.route, statusError, time.Since(start))
		c.log.ErrorContext(ctx, "farmapi request failed",
			slog.String("method", cl.method),
			slog.String("route", cl.route),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("farmapi: %s %s: %w", cl.method, cl.route, err)
	}
	defer resp.Body.Close()

	c.metrics.observe(cl.method, cl.route, statusClass(resp.StatusCode), time.Since(start))
	c.log.DebugContext(ctx, "farmapi response",
		slog.String("method", cl.method),
		slog.String("route", cl.route),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp)
		return fmt.Errorf("farmapi: %s %s: %w", cl.method, cl.route, apiErr)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("farmapi: %s %s: empty response body", cl.method, cl.route)
		}
		return fmt.Errorf("farmapi: %s %s: decode json: %w", cl.method, cl.route, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, cl call) (*http.Response, error) {
	var body io.Reader
	if cl.body != nil {
		buf, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	if cl.auth && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return c.httpClient.Do(req)
}

// errorBody is the loose shape of failure payloads.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeAPIError(resp *http.Response) *domain.APIError {
	apiErr := &domain.APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		apiErr.Message = strings.TrimSpace(eb.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(eb.Error)
		}
	}
	return apiErr
}
