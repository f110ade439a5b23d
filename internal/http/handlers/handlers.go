package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/cfb-display-service/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/poller"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
	"github.com/preston-bernstein/cfb-display-service/internal/settings"
)

// PluginService turns a settings bundle into a render request.
type PluginService interface {
	Render(ctx context.Context, bundle settings.Bundle) (render.Request, error)
}

// Handler wires HTTP routes to the plugin services.
type Handler struct {
	rankings PluginService
	schedule PluginService
	renderer render.Renderer
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil renderer makes every plugin route answer
// with the JSON render bundle; a nil statusFn reports ready unconditionally.
func NewHandler(rankingsSvc, scheduleSvc PluginService, renderer render.Renderer, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		rankings: rankingsSvc,
		schedule: scheduleSvc,
		renderer: renderer,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the cache warmer has recently succeeded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Rankings renders the rankings plugin.
func (h *Handler) Rankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.servePlugin(w, r, "rankings", h.rankings)
}

// Schedule renders the team schedule plugin.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.servePlugin(w, r, "schedule", h.schedule)
}

func (h *Handler) servePlugin(w nethttp.ResponseWriter, r *nethttp.Request, name string, svc PluginService) {
	logger := loggerFromContext(r, h.logger)
	if svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, name+" plugin not configured", logger)
		return
	}

	query := r.URL.Query()
	wantJSON := strings.EqualFold(query.Get("format"), "json")
	query.Del("format")
	bundle := settings.FromValues(query)

	req, err := svc.Render(r.Context(), bundle)
	if err != nil {
		status := statusForError(err)
		logging.Warn(logger, "plugin render failed",
			slog.String("plugin", name),
			slog.Int(logging.FieldStatusCode, status),
			slog.Any("error", err),
		)
		writeError(w, r, status, err.Error(), logger)
		return
	}

	if wantJSON || h.renderer == nil {
		writeJSON(w, nethttp.StatusOK, req, logger)
		return
	}

	contentType, body, err := h.renderer.Render(r.Context(), req)
	if err != nil {
		logging.Error(logger, "image render failed", err, slog.String("plugin", name))
		writeError(w, r, nethttp.StatusBadGateway, "image render failed", logger)
		return
	}
	writeImage(w, contentType, body, logger)
}

// statusForError maps render failures onto HTTP statuses: upstream trouble is a bad
// gateway, a missing poll is not found.
func statusForError(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return nethttp.StatusGatewayTimeout
	case errors.Is(err, rankings.ErrPollNotFound):
		return nethttp.StatusNotFound
	}
	if _, ok := providers.AsFetchError(err); ok {
		return nethttp.StatusBadGateway
	}
	return nethttp.StatusInternalServerError
}
