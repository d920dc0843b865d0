package bookapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Client talks to the commerce backend's REST API. All storefront data
// (catalog, lookups, reviews, orders) comes from here; the client
// normalizes the backend's wire shapes into internal/model records so
// upstream schema drift stays contained in this package.
type Client struct {
	baseURL string
	client  *http.Client
	token   func() string // bearer token source, may return ""
}

// NewClient reads BOOKSTORE_API_URL. token supplies the bearer token on
// each request; pass nil for anonymous access.
func NewClient(token func() string) (*Client, error) {
	base := os.Getenv("BOOKSTORE_API_URL")
	if base == "" {
		return nil, errors.New("BOOKSTORE_API_URL not set")
	}
	return &Client{
		baseURL: base,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		token: token,
	}, nil
}

// NewClientWithBase is used by tests to point at an httptest server.
func NewClientWithBase(base string, token func() string) *Client {
	return &Client{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
		token:   token,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bookapi: %s %s: status %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
