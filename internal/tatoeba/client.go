package tatoeba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Tatoeba instance.
const DefaultBaseURL = "https://tatoeba.org"

// Query describes one search against the sentence API.
type Query struct {
	From string // source language code, e.g. "spa"
	To   string // target language code, e.g. "eng"
	Page int    // 1-based page number
	Sort string // "relevance", "random", "created", ... (default "relevance")
}

// StatusError is returned when the API responds with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tatoeba: HTTP %d for %s", e.StatusCode, e.URL)
}

// Client queries the Tatoeba sentence search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a Client with a request timeout suited to
// interactive use.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the API's envelope.
type searchResponse struct {
	Paging struct {
		Sentences struct {
			Page      int `json:"page"`
			PageCount int `json:"pageCount"`
			Count     int `json:"count"`
		} `json:"Sentences"`
	} `json:"paging"`
	Results []Sentence `json:"results"`
}

// FetchPage returns one page of sentences with audio for the language
// pair in q. Results keep the API's order.
func (c *Client) FetchPage(ctx context.Context, q Query) (*Page, error) {
	if q.From == "" || q.To == "" {
		return nil, fmt.Errorf("tatoeba: both source and target language are required")
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	sort := q.Sort
	if sort == "" {
		sort = "relevance"
	}

	params := url.Values{}
	params.Set("from", q.From)
	params.Set("to", q.To)
	params.Set("has_audio", "yes")
	params.Set("trans_filter", "limit")
	params.Set("trans_to", q.To)
	params.Set("sort", sort)
	params.Set("page", fmt.Sprintf("%d", page))

	reqURL := fmt.Sprintf("%s/eng/api_v0/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sentences: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &Page{
		Sentences: sr.Results,
		Number:    sr.Paging.Sentences.Page,
		LastPage:  sr.Paging.Sentences.PageCount,
		Total:     sr.Paging.Sentences.Count,
	}, nil
}

// AudioURL resolves an audio reference to its playable download URL.
func (c *Client) AudioURL(a Audio) string {
	return fmt.Sprintf("%s/audio/download/%d", c.baseURL, a.ID)
}
