// Package feed implements the client-side view of the blog post API: an
// HTTP client plus a locally cached, filterable post collection.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ai-blog-api/internal/models"
)

// Client is an HTTP client for the blog post API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given base URL, e.g.
// "http://localhost:8080"
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates an API client with a custom http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, http: httpClient}
}

// ListPosts fetches the full post collection
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/posts", nil)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := c.do(req, http.StatusOK, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by id
func (c *Client) GetPost(ctx context.Context, id string) (*models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/posts/"+id, nil)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := c.do(req, http.StatusOK, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GeneratePost asks the server to generate a post for the topic
func (c *Client) GeneratePost(ctx context.Context, topic string) (*models.Post, error) {
	body, err := json.Marshal(models.GenerateRequest{Topic: topic})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/posts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var post models.Post
	if err := c.do(req, http.StatusCreated, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post by id
func (c *Client) DeletePost(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/posts/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusNoContent, nil)
}

func (c *Client) do(req *http.Request, wantStatus int, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: unexpected status %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
