// Package salesforce implements the Salesforce REST and Tooling API gateway.
// It attaches bearer auth and turns HTTP-level failures into
// *domain.GatewayError values; it holds no business logic.
package salesforce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"resty.dev/v3"

	"github.com/bnema/forcedeck/internal/boundaries/out"
	"github.com/bnema/forcedeck/internal/domain"
)

const (
	// DefaultAPIVersion is the REST API version used when none is configured.
	DefaultAPIVersion = "58.0"
	// DefaultRequestTimeout bounds a single HTTP call, independent of any
	// deploy polling budget.
	DefaultRequestTimeout = 30 * time.Second
)

var (
	_ out.ToolingClient = (*Client)(nil)
	_ out.RestClient    = (*Client)(nil)
)

// Client talks to any org; the org and token come with each call.
type Client struct {
	http       *resty.Client
	apiVersion string
	timeout    time.Duration
	userAgent  string
	logger     resty.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithAPIVersion sets the REST API version, e.g. "58.0".
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if v := strings.TrimPrefix(strings.TrimSpace(version), "v"); v != "" {
			c.apiVersion = v
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger routes resty's internal messages to log.
func WithLogger(log zerowrap.Logger) Option {
	return func(c *Client) {
		c.logger = newRestyLogger(log)
	}
}

// New creates a gateway client.
func New(opts ...Option) *Client {
	c := &Client{
		apiVersion: DefaultAPIVersion,
		timeout:    DefaultRequestTimeout,
		userAgent:  "forcedeck/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}

	// No retries: creation calls must never be replayed behind the caller's back.
	c.http = resty.New().
		SetTimeout(c.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent)
	if c.logger != nil {
		c.http.SetLogger(c.logger)
	}

	return c
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// APIVersion returns the configured REST API version.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// CreateToolingRecord POSTs fields to tooling/sobjects/{sobject}.
func (c *Client) CreateToolingRecord(ctx context.Context, creds domain.Credentials, sobject string, fields map[string]any) (string, error) {
	endpoint := c.dataURL(creds, "tooling/sobjects/"+sobject)

	var created domain.SObjectCreateResult
	if err := c.do(ctx, creds, http.MethodPost, endpoint, fields, nil, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", &domain.GatewayError{
			Kind:   domain.GatewayDecode,
			Method: http.MethodPost,
			URL:    endpoint,
			Err:    errors.New("create response has no id"),
		}
	}
	return created.ID, nil
}

// DeleteToolingRecord DELETEs tooling/sobjects/{sobject}/{id}.
func (c *Client) DeleteToolingRecord(ctx context.Context, creds domain.Credentials, sobject, id string) error {
	endpoint := c.dataURL(creds, "tooling/sobjects/"+sobject+"/"+id)
	return c.do(ctx, creds, http.MethodDelete, endpoint, nil, nil, nil)
}

// ToolingQuery runs SOQL against tooling/query.
func (c *Client) ToolingQuery(ctx context.Context, creds domain.Credentials, soql string, result any) error {
	return c.do(ctx, creds, http.MethodGet, c.dataURL(creds, "tooling/query"), nil, map[string]string{"q": soql}, result)
}

// Query runs SOQL against the data API query endpoint.
func (c *Client) Query(ctx context.Context, creds domain.Credentials, soql string, result any) error {
	return c.do(ctx, creds, http.MethodGet, c.dataURL(creds, "query"), nil, map[string]string{"q": soql}, result)
}

// Get fetches a path under /services/data/v{version}/.
func (c *Client) Get(ctx context.Context, creds domain.Credentials, path string, result any) error {
	return c.do(ctx, creds, http.MethodGet, c.dataURL(creds, path), nil, nil, result)
}

// Post sends body to a path under /services/data/v{version}/.
func (c *Client) Post(ctx context.Context, creds domain.Credentials, path string, body, result any) error {
	return c.do(ctx, creds, http.MethodPost, c.dataURL(creds, path), body, nil, result)
}

func (c *Client) dataURL(creds domain.Credentials, path string) string {
	return fmt.Sprintf("%s/services/data/v%s/%s", creds.BaseURL(), c.apiVersion, strings.TrimLeft(path, "/"))
}

func (c *Client) do(ctx context.Context, creds domain.Credentials, method, endpoint string, body any, query map[string]string, result any) error {
	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(creds.AccessToken)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return classifyTransportError(method, endpoint, err)
	}

	code := resp.StatusCode()
	if code < 200 || code > 299 {
		return &domain.GatewayError{
			Kind:       domain.GatewayHTTP,
			Method:     method,
			URL:        endpoint,
			StatusCode: code,
			Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
			Body:       resp.String(),
		}
	}

	if result == nil {
		return nil
	}
	raw := resp.String()
	if strings.TrimSpace(raw) == "" {
		return &domain.GatewayError{
			Kind:       domain.GatewayDecode,
			Method:     method,
			URL:        endpoint,
			StatusCode: code,
			Err:        errors.New("empty response body"),
		}
	}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		return &domain.GatewayError{
			Kind:       domain.GatewayDecode,
			Method:     method,
			URL:        endpoint,
			StatusCode: code,
			Body:       raw,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

func classifyTransportError(method, endpoint string, err error) error {
	kind := domain.GatewayTransport
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = domain.GatewayTimeout
	}
	return &domain.GatewayError{
		Kind:   kind,
		Method: method,
		URL:    endpoint,
		Err:    err,
	}
}
