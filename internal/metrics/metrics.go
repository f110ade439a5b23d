package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	cacheHits       int
	cacheMisses     int
	lastCallLatency time.Duration
}

type renderStats struct {
	renders int
	errors  int
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and renders,
// mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	renders map[string]*renderStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*providerStats),
		renders: make(map[string]*renderStats),
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for an upstream fetch and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordCacheLookup tracks whether a fetch was served from the document cache.
func (r *Recorder) RecordCacheLookup(provider string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	if hit {
		stats.cacheHits++
	} else {
		stats.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(provider, hit)
	}
}

// RecordRender tracks one render cycle for a plugin.
func (r *Recorder) RecordRender(plugin string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.renders[plugin]
	if !ok {
		stats = &renderStats{}
		r.renders[plugin] = stats
	}
	stats.renders++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRender(plugin, duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// CacheHits returns the number of cached fetches for a provider.
func (r *Recorder) CacheHits(provider string) int {
	return r.Snapshot(provider).CacheHits
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Renders returns how many renders were attempted and how many failed for a plugin.
func (r *Recorder) Renders(plugin string) (total int, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.renders[plugin]; ok {
		return stats.renders, stats.errors
	}
	return 0, 0
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	CacheHits       int
	CacheMisses     int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
