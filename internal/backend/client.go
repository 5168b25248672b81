package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codesearch/internal/domain"
)

// Endpoint paths
const (
	PathProjects = "/"
	PathIndex    = "/encode"
	PathSearch   = "/search"
	PathDelete   = "/delete"
)

// maxBody caps how much of a response body is read
const maxBody = 32 << 20

// API is the set of backend operations the client uses
type API interface {
	ListProjects(ctx context.Context) ([]string, error)
	Index(ctx context.Context, target string) error
	Search(ctx context.Context, query, project string) ([]domain.Match, error)
	Delete(ctx context.Context, project string) error
}

// Options configures a Client
type Options struct {
	BaseURL    string
	Timeout    time.Duration // 0 leaves the transport default
	IndexField string        // form field for /encode, "url" when empty
	HTTPClient *http.Client
}

// Client talks to the code search backend over HTTP
type Client struct {
	base       *url.URL
	indexField string
	http       *http.Client
}

var _ API = (*Client)(nil)

// New creates a client for the backend at opts.BaseURL
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	field := opts.IndexField
	if field == "" {
		field = "url"
	}

	return &Client{base: base, indexField: field, http: hc}, nil
}

// BaseURL returns the backend address
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListProjects fetches the identifiers of every indexed project, in backend order
func (c *Client) ListProjects(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, PathProjects, nil)
	if err != nil {
		return nil, err
	}
	projects, err := decodeProjects(body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", PathProjects, err)
	}
	return projects, nil
}

// Index asks the backend to index target. The response body is ignored.
func (c *Client) Index(ctx context.Context, target string) error {
	_, err := c.do(ctx, http.MethodPost, PathIndex, url.Values{c.indexField: {target}})
	return err
}

// Search runs query against project and returns the matches in rank order
func (c *Client) Search(ctx context.Context, query, project string) ([]domain.Match, error) {
	body, err := c.do(ctx, http.MethodPost, PathSearch, url.Values{
		"query": {query},
		"url":   {project},
	})
	if err != nil {
		return nil, err
	}
	matches, err := decodeMatches(body)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", PathSearch, err)
	}
	return matches, nil
}

// Delete removes project from the backend. The response body is ignored.
func (c *Client) Delete(ctx context.Context, project string) error {
	_, err := c.do(ctx, http.MethodDelete, PathDelete, url.Values{"url": {project}})
	return err
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	endpoint := c.base.JoinPath(path).String()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("backend: transport error", "method", method, "path", path, "err", err)
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	slog.Debug("backend: response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Method: method, Path: path, Status: resp.StatusCode}
	}
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Status: 0, Err: err}
	}
	return data, nil
}
