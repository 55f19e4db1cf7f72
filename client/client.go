// Package client talks to the remote search service: map presets,
// searches and map saving, all over query-encoded HTTP GETs.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gridmap/core"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request when no http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// NetworkError wraps any failed call to the service.
type NetworkError struct {
	Op         string // get_maps, start_search or save_map
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: server returned %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SearchRequest is the input of a search.
type SearchRequest struct {
	Map       string // map text
	Algorithm core.Algorithm
	Heuristic core.Heuristic // ignored for uninformed algorithms
}

// SearchResult is the service's answer: the path found (empty when the
// goal is unreachable) and every visited cell, in service order.
type SearchResult struct {
	Path    []core.Point
	Visited []core.Point
	Cost    float64
	HasCost bool
}

// Overlay converts the result into an overlay.
func (r *SearchResult) Overlay() core.Overlay {
	o := core.NewOverlay(r.Visited, r.Path)
	if r.HasCost {
		o = o.WithCost(r.Cost)
	}
	return o
}

// Client is a search service client. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger failed requests are reported to.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetMaps returns the preset maps, display name to map text.
func (c *Client) GetMaps(ctx context.Context) (map[string]string, error) {
	var body struct {
		Maps map[string]string `json:"maps"`
	}
	if err := c.get(ctx, "get_maps", nil, &body); err != nil {
		return nil, err
	}
	if body.Maps == nil {
		body.Maps = map[string]string{}
	}
	return body.Maps, nil
}

// StartSearch runs a search on the service.
func (c *Client) StartSearch(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	heuristic := ""
	if req.Algorithm.Informed() {
		heuristic = string(req.Heuristic)
	}
	params := url.Values{
		"map":       {req.Map},
		"alg":       {string(req.Algorithm)},
		"heuristic": {heuristic},
	}

	var body struct {
		Path    [][2]int `json:"path"`
		Visited [][2]int `json:"visited"`
		Cost    *float64 `json:"cost,omitempty"`
	}
	if err := c.get(ctx, "start_search", params, &body); err != nil {
		return nil, err
	}

	result := &SearchResult{
		Path:    toPoints(body.Path),
		Visited: toPoints(body.Visited),
	}
	if body.Cost != nil {
		result.Cost, result.HasCost = *body.Cost, true
	}
	return result, nil
}

// SaveMap stores a map on the service under name.
func (c *Client) SaveMap(ctx context.Context, name, text string) error {
	params := url.Values{
		"map_name": {name},
		"map":      {text},
	}
	var ack map[string]any
	return c.get(ctx, "save_map", params, &ack)
}

func (c *Client) get(ctx context.Context, op string, params url.Values, out any) error {
	u := *c.baseURL
	u.Path += "/" + op
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return c.fail(&NetworkError{Op: op, Err: err})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(&NetworkError{Op: op, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		return c.fail(&NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(text)})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(&NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response: %w", err)})
	}
	return nil
}

func (c *Client) fail(err *NetworkError) error {
	c.logger.Printf("request failed: %v", err)
	return err
}

func toPoints(pairs [][2]int) []core.Point {
	if len(pairs) == 0 {
		return nil
	}
	points := make([]core.Point, len(pairs))
	for i, p := range pairs {
		points[i] = core.Point{X: p[0], Y: p[1]}
	}
	return points
}
