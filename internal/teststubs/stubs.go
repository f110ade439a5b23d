package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
)

// ErrDocumentNotFound is returned by MapProvider for unknown URLs.
var ErrDocumentNotFound = errors.New("document not found")

// StubProvider is a test double for providers.DocumentProvider returning one document for any URL.
type StubProvider struct {
	Doc    jsonshape.Document
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchDocument returns the configured document and error while tracking calls.
func (s *StubProvider) FetchDocument(ctx context.Context, url string) (jsonshape.Document, error) {
	_ = ctx
	_ = url
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Doc, s.Err
}

// MapProvider serves documents keyed by exact URL and records every requested URL.
type MapProvider struct {
	Docs map[string]jsonshape.Document
	Errs map[string]error

	mu        sync.Mutex
	requested []string
}

// FetchDocument returns the document registered for url, the error registered for url,
// or ErrDocumentNotFound.
func (m *MapProvider) FetchDocument(ctx context.Context, url string) (jsonshape.Document, error) {
	_ = ctx
	m.mu.Lock()
	m.requested = append(m.requested, url)
	m.mu.Unlock()

	if err, ok := m.Errs[url]; ok {
		return nil, err
	}
	if doc, ok := m.Docs[url]; ok {
		return doc, nil
	}
	return nil, ErrDocumentNotFound
}

// Requested returns a copy of every URL fetched so far, in call order.
func (m *MapProvider) Requested() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requested))
	copy(out, m.requested)
	return out
}

// CountRequests reports how many times url was fetched.
func (m *MapProvider) CountRequests(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, u := range m.requested {
		if u == url {
			n++
		}
	}
	return n
}

// StubRenderer is a test double for render.Renderer.
type StubRenderer struct {
	ContentType string
	Body        []byte
	Err         error
	Last        render.Request
	Calls       int
}

// Render records the request and returns the configured image.
func (s *StubRenderer) Render(ctx context.Context, req render.Request) (string, []byte, error) {
	_ = ctx
	s.Calls++
	s.Last = req
	if s.Err != nil {
		return "", nil, s.Err
	}
	return s.ContentType, s.Body, nil
}
