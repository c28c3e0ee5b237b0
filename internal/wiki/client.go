// Package wiki is the external knowledge-lookup collaborator. It talks
// to the Wikipedia search and summary APIs; the disambiguation core never
// calls it directly and never blocks on it.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neurosnap/sentences/english"
)

const defaultUserAgent = "lexis/1.0 (word sense disambiguation)"

type Client struct {
	httpClient *http.Client
	apiURL     string // MediaWiki action API, e.g. https://en.wikipedia.org/w/api.php
	restURL    string // REST summary endpoint prefix, e.g. https://en.wikipedia.org/api/rest_v1/page/summary
	userAgent  string
}

type Option func(*Client)

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewClient(apiURL, restURL string, opts ...Option) *Client {
	c := &Client{
		// The original integration used a strict short timeout so a slow
		// Wikipedia never stalls a disambiguation response.
		httpClient: &http.Client{Timeout: 2 * time.Second},
		apiURL:     strings.TrimRight(apiURL, "/"),
		restURL:    strings.TrimRight(restURL, "/"),
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchTitle resolves a free-form search term to the best-matching page
// title. Returns "" with a nil error when nothing matches.
func (c *Client) SearchTitle(ctx context.Context, term string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", term)
	params.Set("srlimit", "1")

	var payload struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.apiURL+"?"+params.Encode(), &payload); err != nil {
		return "", fmt.Errorf("wikipedia search %q: %w", term, err)
	}
	if len(payload.Query.Search) == 0 {
		return "", nil
	}
	return payload.Query.Search[0].Title, nil
}

// Summary fetches the lead extract for a page title. Returns "" with a
// nil error for pages without an extract.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	var payload struct {
		Extract string `json:"extract"`
	}
	endpoint := c.restURL + "/" + url.PathEscape(title)
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", fmt.Errorf("wikipedia summary %q: %w", title, err)
	}
	return payload.Extract, nil
}

// LookupFirst tries each search term in order and returns the first
// non-empty summary. Per-term failures are swallowed: a miss on one term
// just moves on to the next, as the original lookup did.
func (c *Client) LookupFirst(ctx context.Context, terms []string) (string, error) {
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		title, err := c.SearchTitle(ctx, term)
		if err != nil || title == "" {
			continue
		}
		summary, err := c.Summary(ctx, title)
		if err != nil {
			continue
		}
		if summary != "" {
			return summary, nil
		}
	}
	return "", nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// TrimSummary truncates text to at most maxSentences sentences using the
// sentence tokenizer. maxSentences <= 0 leaves the text untouched.
func TrimSummary(text string, maxSentences int) string {
	if maxSentences <= 0 || text == "" {
		return text
	}
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return text
	}
	parts := tokenizer.Tokenize(text)
	if len(parts) <= maxSentences {
		return text
	}
	var b strings.Builder
	for _, s := range parts[:maxSentences] {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}
