package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/cfb-display-service/internal/app/rankings"
	"github.com/preston-bernstein/cfb-display-service/internal/app/schedule"
	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/device"
	httpserver "github.com/preston-bernstein/cfb-display-service/internal/http"
	"github.com/preston-bernstein/cfb-display-service/internal/http/handlers"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
	"github.com/preston-bernstein/cfb-display-service/internal/poller"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/espn"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
)

var metricsSetup = metrics.Setup

type plugin = handlers.PluginService

// Server owns the HTTP, metrics and cache-warm lifecycles.
type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	fetcher         *providers.CachedFetcher
	rankingsService *rankings.Service
	scheduleService *schedule.Service
	httpServer      httpServer
	metricsServer   httpServer
	poller          Poller
	metricsStop     func(context.Context) error
}

// New constructs a server with provider, services and cache warming wired from cfg.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DocumentProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DocumentProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	client := newESPNClient(cfg)
	factory := newProviderFactory(logger, recorder)
	var fetcher *providers.CachedFetcher
	if provider == nil {
		fetcher = factory.build(cfg, client)
	} else {
		fetcher = providers.NewCachedFetcher(normalizeProviderName(cfg.Provider, provider), provider, factory.cache, logger, recorder)
	}

	rankSvc, schedSvc := buildServices(cfg, fetcher, client, logger, recorder)
	services := map[string]plugin{"rankings": rankSvc, "schedule": schedSvc}
	plr := buildPoller(cfg, logger, services)
	httpSrv := buildHTTPServer(cfg, rankSvc, schedSvc, buildRenderer(cfg), logger, recorder, plr)
	if plr == nil {
		plr = noopPoller{}
	}

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		fetcher:         fetcher,
		rankingsService: rankSvc,
		scheduleService: schedSvc,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		poller:          plr,
		metricsStop:     metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildServices(cfg config.Config, fetcher *providers.CachedFetcher, client *espn.Client, logger *slog.Logger, recorder *metrics.Recorder) (*rankings.Service, *schedule.Service) {
	dev := device.FromConfig(cfg.Device)
	rankSvc := rankings.NewService(fetcher, client, dev, rankings.Options{
		DefaultCacheMinutes: cfg.DefaultCacheMinutes,
		Logger:              logger,
		Metrics:             recorder,
	})
	schedSvc := schedule.NewService(fetcher, client, dev, schedule.Options{
		TeamID:              cfg.TeamID,
		TeamName:            cfg.TeamName,
		DefaultCacheMinutes: cfg.DefaultCacheMinutes,
		Logger:              logger,
		Metrics:             recorder,
	})
	return rankSvc, schedSvc
}

// buildRenderer returns a nil interface, not a typed nil, when no renderer URL is configured.
func buildRenderer(cfg config.Config) render.Renderer {
	r := render.NewHTTPRenderer(cfg.Renderer.URL, cfg.Renderer.Timeout)
	if r == nil {
		return nil
	}
	return r
}

func buildHTTPServer(cfg config.Config, rankSvc *rankings.Service, schedSvc *schedule.Service, renderer render.Renderer, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	handler := handlers.NewHandler(rankSvc, schedSvc, renderer, logger, statusFn)
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Logger:         logger,
		Metrics:        recorder,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: requestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
