package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/cache"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
	"github.com/preston-bernstein/cfb-display-service/internal/testutil"
	"github.com/preston-bernstein/cfb-display-service/internal/teststubs"
)

func TestFetchServesFromCacheWithinTTL(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	c := cache.NewWithClock(func() time.Time { return clock })
	stub := &teststubs.StubProvider{Doc: jsonshape.Document{"v": "1"}}
	rec := metrics.NewRecorder()
	f := NewCachedFetcher("espn", stub, c, nil, rec)

	ttl := 30 * time.Minute
	if _, err := f.Fetch(context.Background(), "http://x/rankings", ttl); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	clock = now.Add(ttl - time.Second)
	if _, err := f.Fetch(context.Background(), "http://x/rankings", ttl); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected one upstream call within ttl, got %d", stub.Calls.Load())
	}

	clock = now.Add(ttl + time.Second)
	if _, err := f.Fetch(context.Background(), "http://x/rankings", ttl); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stub.Calls.Load() != 2 {
		t.Fatalf("expected refetch after ttl, got %d calls", stub.Calls.Load())
	}

	snap := rec.Snapshot("espn")
	if snap.CacheHits != 1 || snap.CacheMisses != 2 || snap.Calls != 2 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestFetchZeroTTLNeverStores(t *testing.T) {
	c := cache.New()
	stub := &teststubs.StubProvider{Doc: jsonshape.Document{}}
	f := NewCachedFetcher("espn", stub, c, nil, nil)

	for i := 0; i < 2; i++ {
		if _, err := f.Fetch(context.Background(), "u", 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if stub.Calls.Load() != 2 {
		t.Fatalf("expected every call to hit upstream, got %d", stub.Calls.Load())
	}
	if c.Len() != 0 {
		t.Fatalf("expected nothing cached, got %d", c.Len())
	}
}

func TestFetchWrapsErrorsAndDoesNotCache(t *testing.T) {
	c := cache.New()
	boom := errors.New("boom")
	stub := &teststubs.StubProvider{Err: boom}
	logger, buf := testutil.NewBufferLogger()
	f := NewCachedFetcher("espn", stub, c, logger, nil)

	_, err := f.Fetch(context.Background(), "http://x", time.Minute)
	fe, ok := AsFetchError(err)
	if !ok || fe.URL != "http://x" {
		t.Fatalf("expected fetch error for url, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected inner error preserved")
	}
	if c.Len() != 0 {
		t.Fatalf("expected failure not cached")
	}
	if !strings.Contains(buf.String(), "document fetch failed") {
		t.Fatalf("expected warning logged, got %q", buf.String())
	}
}

func TestFetchWithoutProvider(t *testing.T) {
	f := NewCachedFetcher("espn", nil, nil, nil, nil)
	_, err := f.Fetch(context.Background(), "u", time.Minute)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if f.Name() != "espn" {
		t.Fatalf("expected name espn, got %q", f.Name())
	}
}
