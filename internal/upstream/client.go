package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	LookupTimeout  = 10 * time.Second
	HistoryTimeout = 30 * time.Second
)

// Client performs single-attempt JSON requests against one external service.
type Client struct {
	service string
	http    *http.Client
	headers http.Header
}

func NewClient(service string, timeout time.Duration, headers http.Header) *Client {
	if headers == nil {
		headers = http.Header{}
	}
	if headers.Get("Accept") == "" {
		headers.Set("Accept", "application/json")
	}
	return &Client{
		service: service,
		http:    &http.Client{Timeout: timeout},
		headers: headers,
	}
}

func (c *Client) Service() string {
	return c.service
}

// GetJSON issues GET rawURL?query and decodes the body into dest.
func (c *Client) GetJSON(ctx context.Context, op, rawURL string, query url.Values, dest any) error {
	endpoint := rawURL
	if len(query) > 0 {
		endpoint = rawURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewError(c.service, op, fmt.Errorf("create request: %w", err))
	}

	return c.do(req, op, dest)
}

// PostJSON posts body encoded as JSON to rawURL and decodes the answer into dest.
func (c *Client) PostJSON(ctx context.Context, op, rawURL string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return NewError(c.service, op, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return NewError(c.service, op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, op, dest)
}

func (c *Client) do(req *http.Request, op string, dest any) error {
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return NewError(c.service, op, fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Service: c.service, Op: op, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return NewError(c.service, op, fmt.Errorf("decode response: %w", err))
	}

	return nil
}
