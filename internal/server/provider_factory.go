package server

import (
	"log/slog"

	"github.com/preston-bernstein/cfb-display-service/internal/cache"
	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/espn"
)

// providerFactory assembles the document provider behind the shared TTL cache.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	cache   *cache.TTLCache
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, cache: cache.New()}
}

func (f providerFactory) build(cfg config.Config, client *espn.Client) *providers.CachedFetcher {
	base := selectProvider(cfg, client, f.logger)
	return providers.NewCachedFetcher(normalizeProviderName(cfg.Provider, base), base, f.cache, f.logger, f.metrics)
}
