// Package api is a thin client for the JSONPlaceholder mock REST API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/air-examples/placeholder/models"
)

// DefaultBaseURL is the public JSONPlaceholder endpoint.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// ErrPostNotFound is returned when the API has no post with the
// requested ID.
var ErrPostNotFound = errors.New("api: post not found")

// Client fetches posts from a JSONPlaceholder-compatible API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a client for the API at baseURL. A zero timeout
// leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// Posts fetches the full post collection with a single GET. The
// returned slice preserves the response order.
func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/posts",
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("posts: HTTP %d", resp.StatusCode)
	}

	var ps []models.Post
	if err := json.NewDecoder(resp.Body).Decode(&ps); err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}

	return ps, nil
}

// Post fetches a single post by ID.
func (c *Client) Post(ctx context.Context, id int) (models.Post, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/posts/"+strconv.Itoa(id),
		nil,
	)
	if err != nil {
		return models.Post{}, fmt.Errorf("post %d: %w", id, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return models.Post{}, fmt.Errorf("post %d: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return models.Post{}, ErrPostNotFound
	} else if resp.StatusCode != http.StatusOK {
		return models.Post{}, fmt.Errorf(
			"post %d: HTTP %d",
			id,
			resp.StatusCode,
		)
	}

	var p models.Post
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return models.Post{}, fmt.Errorf("post %d: %w", id, err)
	}

	return p, nil
}
