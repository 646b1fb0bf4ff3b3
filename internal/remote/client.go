// Package remote is the HTTP client for the JSON store that keeps the
// authors and categories collections.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vmunix/vmanager/internal/catalog"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 512
)

// Config is the store location and client limits.
type Config struct {
	BaseURL          string
	Timeout          time.Duration // 0 means 10s
	CategoryCacheTTL time.Duration // 0 disables the category cache
}

// Client talks to the store's /authors and /categories collections.
type Client struct {
	baseURL    string
	httpClient *http.Client
	categories *categoryCache
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a client for the store at cfg.BaseURL.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		categories: newCategoryCache(cfg.CategoryCacheTTL),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAuthors returns every author with their videos.
func (c *Client) FetchAuthors(ctx context.Context) ([]catalog.Author, error) {
	var authors []catalog.Author
	if err := c.getJSON(ctx, "/authors", &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// FetchAuthor returns one author. A missing author yields an error matching
// both ErrFetchFailed and ErrAuthorNotFound.
func (c *Client) FetchAuthor(ctx context.Context, authorID int) (catalog.Author, error) {
	var author catalog.Author
	if err := c.getJSON(ctx, fmt.Sprintf("/authors/%d", authorID), &author); err != nil {
		return catalog.Author{}, err
	}
	return author, nil
}

// FetchCategories returns every category, from cache when one is configured
// and fresh.
func (c *Client) FetchCategories(ctx context.Context) ([]catalog.Category, error) {
	if cached, ok := c.categories.get(); ok {
		c.log.Debug("categories served from cache", "count", len(cached))
		return cached, nil
	}

	var categories []catalog.Category
	if err := c.getJSON(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	c.categories.set(categories)
	return categories, nil
}

// SaveAuthor replaces the stored author record with author.
func (c *Client) SaveAuthor(ctx context.Context, author catalog.Author) error {
	if author.Videos == nil {
		author.Videos = []catalog.Video{}
	}
	body, err := json.Marshal(author)
	if err != nil {
		return fmt.Errorf("%w: encode author %d: %w", ErrSaveFailed, author.ID, err)
	}

	path := fmt.Sprintf("/authors/%d", author.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrSaveFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: PUT %s: %w: %w", ErrSaveFailed, path, ErrSaveUnconfirmed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("store request", "method", http.MethodPut, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: PUT %s: %s", ErrSaveFailed, path, statusDetail(resp))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrFetchFailed, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("store request", "method", http.MethodGet, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusNotFound && strings.HasPrefix(path, "/authors/") {
		return fmt.Errorf("%w: GET %s: %w", ErrFetchFailed, path, ErrAuthorNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s: %s", ErrFetchFailed, path, statusDetail(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrFetchFailed, path, err)
	}
	return nil
}

// statusDetail describes a failed response using its status and the start
// of its body.
func statusDetail(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return resp.Status
	}
	return resp.Status + ": " + msg
}
