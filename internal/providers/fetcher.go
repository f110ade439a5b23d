package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/cache"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
)

// CachedFetcher serves upstream documents through a TTL cache.
type CachedFetcher struct {
	name     string
	provider DocumentProvider
	cache    *cache.TTLCache
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewCachedFetcher wires a provider to a cache. A nil cache gets a fresh wall-clock cache.
func NewCachedFetcher(name string, provider DocumentProvider, c *cache.TTLCache, logger *slog.Logger, recorder *metrics.Recorder) *CachedFetcher {
	if c == nil {
		c = cache.New()
	}
	return &CachedFetcher{
		name:     name,
		provider: provider,
		cache:    c,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Fetch returns the cached document for url when younger than ttl, otherwise fetches and stores it.
// A non-positive ttl always fetches and never stores.
func (f *CachedFetcher) Fetch(ctx context.Context, url string, ttl time.Duration) (jsonshape.Document, error) {
	if f == nil || f.provider == nil {
		return nil, &FetchError{URL: url, Err: ErrProviderUnavailable}
	}
	logger := logging.FromContext(ctx, f.logger)

	if ttl > 0 {
		if doc, ok := f.cache.Get(url, ttl); ok {
			f.metrics.RecordCacheLookup(f.name, true)
			f.log(ctx, logger, slog.LevelDebug, "document served from cache", slog.String(logging.FieldURL, url), slog.Bool(logging.FieldCache, true))
			return doc, nil
		}
		f.metrics.RecordCacheLookup(f.name, false)
	}

	start := f.now()
	doc, err := f.provider.FetchDocument(ctx, url)
	elapsed := f.now().Sub(start)
	f.metrics.RecordProviderAttempt(f.name, elapsed, err)
	if err != nil {
		f.log(ctx, logger, slog.LevelWarn, "document fetch failed",
			slog.String(logging.FieldURL, url),
			slog.Any("error", err),
		)
		return nil, wrapFetchError(url, err)
	}

	f.log(ctx, logger, slog.LevelInfo, "document fetched",
		slog.String(logging.FieldURL, url),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	if ttl > 0 {
		f.cache.Set(url, doc)
	}
	return doc, nil
}

// Name reports the provider label used for logs and metrics.
func (f *CachedFetcher) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// log tags every entry with the provider name.
func (f *CachedFetcher) log(ctx context.Context, logger *slog.Logger, level slog.Level, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Log(ctx, level, msg, append(args, slog.String("provider", f.name))...)
}
