package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/app/rankings"
	"github.com/preston-bernstein/cfb-display-service/internal/cache"
	"github.com/preston-bernstein/cfb-display-service/internal/device"
	"github.com/preston-bernstein/cfb-display-service/internal/http/handlers"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/espn"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/fixture"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
	"github.com/preston-bernstein/cfb-display-service/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	fetcher := providers.NewCachedFetcher("fixture", fixture.New(), cache.New(), logger, rec)
	dev := device.Static{Width: 800, Height: 480, Timezone: "UTC"}
	svc := rankings.NewService(fetcher, espn.NewClient(espn.Config{}), dev, rankings.Options{DefaultCacheMinutes: 5, Logger: logger, Metrics: rec})
	h := handlers.NewHandler(svc, nil, nil, logger, nil)
	return NewRouter(h, RouterOptions{Logger: logger, Metrics: rec, RequestTimeout: 5 * time.Second})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]int{
		"/health":          http.StatusOK,
		"/ready":           http.StatusOK,
		"/rankings":        http.StatusOK,
		"/rankings?poll=x": http.StatusOK,
		"/schedule":        http.StatusServiceUnavailable,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s expected request id header", path)
		}
	}
}

func TestRouterRankingsReturnsRenderBundle(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/rankings?poll=coaches&top_n=2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var req render.Request
	testutil.DecodeJSON(t, rr, &req)
	if req.Template != rankings.Template {
		t.Fatalf("expected rankings template, got %s", req.Template)
	}
	if title, _ := req.Params["title"].(string); !strings.Contains(title, "Coaches") {
		t.Fatalf("expected coaches poll title, got %v", req.Params["title"])
	}
	if rows, _ := req.Params["rows"].([]any); len(rows) != 2 {
		t.Fatalf("expected two rows, got %v", req.Params["rows"])
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodPost, "/rankings", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterAddsCORSHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://display.local")
	rr := testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}
