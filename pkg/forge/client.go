// Package forge is a client for the Forge server-provisioning API:
// fluent builders that shape and validate server-creation payloads per
// cloud provider, and typed commands for the sub-resources (daemons,
// sites, deployments) scoped under a server.
package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://forge.laravel.com/api/v1"

// Client talks to the Forge API. It is safe for concurrent use; the
// server builders it hands out are not.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger

	Servers     *ServerClient
	Daemons     *DaemonClient
	Sites       *SiteClient
	Deployments *DeploymentClient
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithBaseURL points the client at a non-default endpoint, e.g. a test
// server. A trailing slash is stripped.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client. Timeouts and
// cancellation are entirely the transport's concern.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger enables debug logging of every request.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithInstrumentation wraps the transport with prometheus in-flight,
// count, and duration collectors registered on reg.
func WithInstrumentation(reg prometheus.Registerer) ClientOption {
	return func(c *Client) {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.httpClient.Transport = instrumentTransport(reg, base)
	}
}

// NewClient creates a client authenticating with the given bearer token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Servers = &ServerClient{client: c}
	c.Daemons = &DaemonClient{client: c}
	c.Sites = &SiteClient{client: c}
	c.Deployments = &DeploymentClient{client: c}
	return c
}

type envConfig struct {
	Token   string        `env:"FORGE_API_TOKEN,required,notEmpty"`
	BaseURL string        `env:"FORGE_BASE_URL" envDefault:"https://forge.laravel.com/api/v1"`
	Timeout time.Duration `env:"FORGE_TIMEOUT" envDefault:"30s"`
}

// NewClientFromEnv builds a client from FORGE_API_TOKEN, FORGE_BASE_URL,
// and FORGE_TIMEOUT.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	all := append([]ClientOption{
		WithBaseURL(cfg.BaseURL),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}, opts...)
	return NewClient(cfg.Token, all...), nil
}

// do issues one request and returns the raw response body. Validation
// never happens here; by the time do runs, the payload is final.
// Transport errors from the HTTP client are returned unmodified, and a
// non-2xx status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("forge api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
	}
	return raw, nil
}
