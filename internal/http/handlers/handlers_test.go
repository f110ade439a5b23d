package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-display-service/internal/poller"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
	"github.com/preston-bernstein/cfb-display-service/internal/settings"
	"github.com/preston-bernstein/cfb-display-service/internal/testutil"
	"github.com/preston-bernstein/cfb-display-service/internal/teststubs"
)

type stubService struct {
	req    render.Request
	err    error
	bundle settings.Bundle
	calls  int
}

func (s *stubService) Render(ctx context.Context, bundle settings.Bundle) (render.Request, error) {
	_ = ctx
	s.calls++
	s.bundle = bundle
	return s.req, s.err
}

func sampleRequest() render.Request {
	return render.Request{
		Width:      800,
		Height:     480,
		Template:   "cfbrankings.html",
		Stylesheet: "cfbrankings.css",
		Params:     map[string]any{"title": "AP Top 25"},
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestRankingsWithoutRendererReturnsBundle(t *testing.T) {
	svc := &stubService{req: sampleRequest()}
	h := NewHandler(svc, nil, nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet, "/rankings?poll=ap&top_n=10", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp render.Request
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Template != "cfbrankings.html" || resp.Params["title"] != "AP Top 25" {
		t.Fatalf("unexpected bundle %+v", resp)
	}
	if svc.bundle.String("poll", "") != "ap" || svc.bundle.Int("top_n", 0) != 10 {
		t.Fatalf("expected query forwarded as settings, got %v", svc.bundle)
	}
}

func TestRankingsWithRendererReturnsImage(t *testing.T) {
	svc := &stubService{req: sampleRequest()}
	renderer := &teststubs.StubRenderer{ContentType: "image/png", Body: []byte("PNG")}
	h := NewHandler(svc, nil, renderer, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet, "/rankings", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("Content-Type") != "image/png" || rr.Body.String() != "PNG" {
		t.Fatalf("expected image response, got %s %q", rr.Header().Get("Content-Type"), rr.Body.String())
	}
	if renderer.Last.Template != "cfbrankings.html" {
		t.Fatalf("expected render request forwarded, got %+v", renderer.Last)
	}
}

func TestFormatJSONBypassesRenderer(t *testing.T) {
	svc := &stubService{req: sampleRequest()}
	renderer := &teststubs.StubRenderer{ContentType: "image/png", Body: []byte("PNG")}
	h := NewHandler(nil, svc, renderer, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule?format=JSON&hide_logo=1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if renderer.Calls != 0 {
		t.Fatalf("expected renderer skipped, got %d calls", renderer.Calls)
	}
	if _, ok := svc.bundle["format"]; ok {
		t.Fatalf("expected format stripped from settings")
	}
	if !svc.bundle.Bool("hide_logo", false) {
		t.Fatalf("expected hide_logo forwarded")
	}
}

func TestPluginErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"fetch", fmt.Errorf("rankings: %w", &providers.FetchError{URL: "u", StatusCode: 500}), http.StatusBadGateway},
		{"selection", fmt.Errorf("rankings: %w", &rankings.SelectionError{Choice: rankings.ChoiceCFP, Message: "no cfp"}), http.StatusNotFound},
		{"timeout", &providers.FetchError{URL: "u", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tc.err}, nil, nil, nil, nil)
			req := httptest.NewRequest(http.MethodGet, "/rankings", nil)
			req.Header.Set("X-Request-ID", "req-1")
			rr := testutil.ServeRequest(http.HandlerFunc(h.Rankings), req)

			testutil.AssertStatus(t, rr, tc.want)
			var body map[string]string
			testutil.DecodeJSON(t, rr, &body)
			if body["error"] != tc.err.Error() || body["requestId"] != "req-1" {
				t.Fatalf("unexpected error body %v", body)
			}
		})
	}
}

func TestRendererFailureIsBadGateway(t *testing.T) {
	svc := &stubService{req: sampleRequest()}
	renderer := &teststubs.StubRenderer{Err: errors.New("chromium crashed")}
	h := NewHandler(svc, nil, renderer, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet, "/rankings", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestUnconfiguredPluginIsUnavailable(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/schedule", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReadyReflectsWarmerStatus(t *testing.T) {
	cases := []struct {
		name   string
		status func() poller.Status
		want   int
		errMsg string
	}{
		{"no warmer", nil, http.StatusOK, ""},
		{"warm", func() poller.Status { return poller.Status{LastSuccess: time.Now()} }, http.StatusOK, ""},
		{"never warmed", func() poller.Status { return poller.Status{} }, http.StatusServiceUnavailable, "not ready"},
		{"failing", func() poller.Status {
			return poller.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "rankings: upstream down"}
		}, http.StatusServiceUnavailable, "rankings: upstream down"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(nil, nil, nil, nil, tc.status)
			rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tc.want)
			var body map[string]string
			testutil.DecodeJSON(t, rr, &body)
			if tc.errMsg != "" && body["error"] != tc.errMsg {
				t.Fatalf("expected error %q, got %v", tc.errMsg, body)
			}
		})
	}
}
