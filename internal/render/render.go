package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrRendererUnavailable is returned when no renderer endpoint is configured.
var ErrRendererUnavailable = errors.New("renderer unavailable")

const (
	defaultTimeout     = 30 * time.Second
	defaultContentType = "image/png"
	maxErrorBody       = 512
)

// Request is everything the external HTML-to-image pipeline needs for one image.
type Request struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Template   string         `json:"template"`
	Stylesheet string         `json:"stylesheet"`
	Params     map[string]any `json:"params"`
}

// Renderer turns a Request into image bytes.
type Renderer interface {
	Render(ctx context.Context, req Request) (contentType string, body []byte, err error)
}

// HTTPRenderer posts requests as JSON to an external rendering service.
type HTTPRenderer struct {
	url    string
	client *http.Client
}

// NewHTTPRenderer returns nil when url is empty so callers can fall back to JSON output.
func NewHTTPRenderer(url string, timeout time.Duration) *HTTPRenderer {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPRenderer{url: url, client: &http.Client{Timeout: timeout}}
}

// Render posts req and returns the response body and its content type.
func (r *HTTPRenderer) Render(ctx context.Context, req Request) (string, []byte, error) {
	if r == nil {
		return "", nil, ErrRendererUnavailable
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", nil, fmt.Errorf("render: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", nil, fmt.Errorf("render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", nil, fmt.Errorf("render: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("render: read body: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}
	return contentType, body, nil
}
