package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Doc: jsonshape.Document{"a": 1}, Err: err}
	if _, got := p.FetchDocument(context.Background(), "http://x"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestMapProviderServesByURL(t *testing.T) {
	boom := errors.New("boom")
	m := &MapProvider{
		Docs: map[string]jsonshape.Document{"a": {"k": "v"}},
		Errs: map[string]error{"b": boom},
	}
	doc, err := m.FetchDocument(context.Background(), "a")
	if err != nil || doc["k"] != "v" {
		t.Fatalf("expected doc for a, got %v %v", doc, err)
	}
	if _, err := m.FetchDocument(context.Background(), "b"); !errors.Is(err, boom) {
		t.Fatalf("expected registered error, got %v", err)
	}
	if _, err := m.FetchDocument(context.Background(), "c"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if got := m.Requested(); len(got) != 3 || got[2] != "c" {
		t.Fatalf("unexpected request log %v", got)
	}
	if m.CountRequests("a") != 1 {
		t.Fatalf("expected one request for a")
	}
}

func TestStubRendererRecordsRequest(t *testing.T) {
	r := &StubRenderer{ContentType: "image/png", Body: []byte("png")}
	ct, body, err := r.Render(context.Background(), render.Request{Template: "t.html"})
	if err != nil || ct != "image/png" || string(body) != "png" {
		t.Fatalf("unexpected render result %q %q %v", ct, body, err)
	}
	if r.Last.Template != "t.html" || r.Calls != 1 {
		t.Fatalf("expected request recorded, got %+v", r.Last)
	}
}
