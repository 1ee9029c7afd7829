// Package wikipedia builds articles from the public Wikipedia APIs.
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
)

const (
	DefaultBaseURL = "https://en.wikipedia.org"
	maxLinks       = 20
)

var ErrNotFound = errors.New("wikipedia page not found")

// Client fetches page summaries and outgoing links.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

type summaryResponse struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

type linksResponse struct {
	Query struct {
		Pages []struct {
			Missing bool `json:"missing"`
			Links   []struct {
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
}

// Fetch returns create params for the page titled title. The canonical title
// reported by Wikipedia (after redirects) is used, not the requested one.
func (c *Client) Fetch(ctx context.Context, title string) (*article.CreateParams, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, article.ErrEmptyTitle
	}

	var summary summaryResponse

	summaryURL := c.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	if err := c.getJSON(ctx, summaryURL, &summary); err != nil {
		return nil, fmt.Errorf("fetching summary: %w", err)
	}

	links, err := c.fetchLinks(ctx, summary.Title)
	if err != nil {
		return nil, fmt.Errorf("fetching links: %w", err)
	}

	params := &article.CreateParams{
		Title:   summary.Title,
		Summary: summary.Extract,
		Links:   links,
	}

	if summary.Thumbnail != nil {
		params.ImageURL = summary.Thumbnail.Source
	}

	return params, nil
}

func (c *Client) fetchLinks(ctx context.Context, title string) ([]string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("prop", "links")
	q.Set("plnamespace", "0")
	q.Set("pllimit", fmt.Sprint(maxLinks))
	q.Set("titles", title)

	var resp linksResponse
	if err := c.getJSON(ctx, c.baseURL+"/w/api.php?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	var links []string

	for _, page := range resp.Query.Pages {
		if page.Missing {
			return nil, ErrNotFound
		}

		for _, l := range page.Links {
			links = append(links, l.Title)
		}
	}

	return links, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code %d for url %s", resp.StatusCode, rawURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
