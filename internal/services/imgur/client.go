package imgur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	timeout         = 10 * time.Second
	formContentType = "application/x-www-form-urlencoded"
)

// Client is a stateless Imgur account API client. Credentials are supplied
// per call and never retained, so a single Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

var _ AccountAPI = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a new Imgur client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// formField is a single key/value pair of a form body. Order is preserved.
type formField struct {
	key   string
	value string
}

func encodeForm(fields []formField) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.value))
	}
	return b.String()
}

// doRequest sends one request and decodes the JSON body. The status code is
// not interpreted; Imgur reports failures inside the document.
func (c *Client) doRequest(ctx context.Context, method, endpoint, authorization string, form []formField) (Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(encodeForm(form))
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if form != nil {
		req.Header.Set("Content-Type", formContentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read imgur response from %s %s: %w", method, endpoint, err)
	}

	var result Response
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("error decoding imgur response from %s %s (%s): %w", method, endpoint, resp.Status, err)
	}

	return result, nil
}
