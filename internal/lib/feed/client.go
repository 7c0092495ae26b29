package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"property_hub/internal/config"
	"property_hub/internal/domain"
)

// Client pulls blog posts from the external content feed.
type Client interface {
	LatestPosts(ctx context.Context, limit int) ([]domain.BlogPost, error)
	IsEnabled() bool
}

type client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// NewClient builds a feed client. When the feed is disabled the returned
// client reports no posts and the content service falls back to the built-in
// articles.
func NewClient(cfg config.FeedConfig, log *slog.Logger) Client {
	if !cfg.Enabled {
		return &noopClient{log: log}
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		log:     log,
	}
}

type postsResponse struct {
	Posts []domain.BlogPost `json:"posts"`
}

// LatestPosts fetches up to limit posts, newest first.
func (c *client) LatestPosts(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	const op = "feed.Client.LatestPosts"

	url := fmt.Sprintf("%s/posts?limit=%d", c.baseURL, limit)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to send request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s: unexpected status code %d: %s", op, resp.StatusCode, string(body))
	}

	var result postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	return result.Posts, nil
}

func (c *client) IsEnabled() bool { return true }

// noopClient stands in when the feed is disabled.
type noopClient struct {
	log *slog.Logger
}

func (c *noopClient) LatestPosts(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	c.log.Debug("blog feed is disabled, returning no posts")
	return nil, nil
}

func (c *noopClient) IsEnabled() bool { return false }
