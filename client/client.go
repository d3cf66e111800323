// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/bingo-grid/ids"
	"github.com/danielhkuo/bingo-grid/models"
)

// DefaultTimeout bounds each request unless WithTimeout or WithHTTPClient says otherwise.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bingo api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("bingo api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsInvalid reports whether err is a 400 from the server or a locally
// rejected grid id.
func IsInvalid(err error) bool {
	if errors.Is(err, ids.ErrInvalidID) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// Client talks to a Bingo Grid API server. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, including its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout on a copy of the current
// http.Client, so a shared client passed to WithHTTPClient is left alone.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3001"
// or "https://example.com/api/bingo".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateGrid stores a grid and returns its id. texts are in position order.
func (c *Client) CreateGrid(ctx context.Context, size int, texts []string) (string, error) {
	cells := make([]cellBody, len(texts))
	for i, t := range texts {
		cells[i] = cellBody{Text: t}
	}

	var resp models.CreateGridResponse
	if err := c.do(ctx, http.MethodPost, "/grids", createBody{Size: size, Cells: cells}, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// GetGrid loads a grid. Cell positions are filled in from response order.
func (c *Client) GetGrid(ctx context.Context, id string) (*models.Grid, error) {
	gridID, err := ids.Validate(id)
	if err != nil {
		return nil, err
	}

	var grid models.Grid
	if err := c.do(ctx, http.MethodGet, "/grids/"+gridID, nil, &grid); err != nil {
		return nil, err
	}
	if want := grid.Size * grid.Size; len(grid.Cells) != want {
		return nil, fmt.Errorf("grid %s: expected %d cells, got %d", gridID, want, len(grid.Cells))
	}
	for i := range grid.Cells {
		grid.Cells[i].Position = i
	}
	return &grid, nil
}

// GridExists asks the server whether a grid with this id exists.
func (c *Client) GridExists(ctx context.Context, id string) (bool, error) {
	gridID, err := ids.Validate(id)
	if err != nil {
		return false, err
	}

	var resp models.ExistsResponse
	if err := c.do(ctx, http.MethodGet, "/grids/"+gridID+"/exists", nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// ShareURL is the link a player opens to play the grid.
func (c *Client) ShareURL(id string) string {
	return c.baseURL + "/grids/" + id
}

type createBody struct {
	Size  int        `json:"size"`
	Cells []cellBody `json:"cells"`
}

type cellBody struct {
	Text string `json:"text"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Code = errBody.Code
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
