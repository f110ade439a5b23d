package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
)

// Config controls how the ESPN client reaches the upstream JSON APIs.
type Config struct {
	SiteBaseURL string
	WebBaseURL  string
	CoreBaseURL string
	UserAgent   string
	HTTPClient  *http.Client
}

// Client fetches raw ESPN JSON documents and builds the endpoint URLs the renderers use.
type Client struct {
	siteBaseURL string
	webBaseURL  string
	coreBaseURL string
	userAgent   string
	httpClient  httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		siteBaseURL: normalizeBaseURL(cfg.SiteBaseURL, defaultSiteBaseURL),
		webBaseURL:  normalizeBaseURL(cfg.WebBaseURL, defaultWebBaseURL),
		coreBaseURL: normalizeBaseURL(cfg.CoreBaseURL, defaultCoreBaseURL),
		userAgent:   resolveUserAgent(cfg.UserAgent),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name reports the provider label.
func (c *Client) Name() string {
	return providerName
}

// FetchDocument performs a GET and decodes the JSON object body.
func (c *Client) FetchDocument(ctx context.Context, url string) (jsonshape.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var doc jsonshape.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &providers.FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("espn: decode: %w", err)}
	}
	if doc == nil {
		doc = jsonshape.Document{}
	}
	return doc, nil
}
