package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/cfb-display-service/internal/http/handlers"
	"github.com/preston-bernstein/cfb-display-service/internal/http/middleware"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
)

const defaultRequestTimeout = 60 * time.Second

// RouterOptions configures the middleware stack around the plugin routes.
type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/rankings", handler.Rankings)
	r.Get("/schedule", handler.Schedule)
	return r
}
