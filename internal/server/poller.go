package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/poller"
	"github.com/preston-bernstein/cfb-display-service/internal/settings"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

type noopPoller struct{}

func (noopPoller) Start(context.Context)      {}
func (noopPoller) Stop(context.Context) error { return nil }
func (noopPoller) Status() poller.Status      { return poller.Status{} }

// buildPoller warms the cache by rendering each plugin with its default settings.
// It returns nil when warming is disabled.
func buildPoller(cfg config.Config, logger *slog.Logger, services map[string]plugin) Poller {
	if !cfg.WarmEnabled {
		return nil
	}
	targets := make([]poller.Target, 0, len(services))
	for _, name := range []string{"rankings", "schedule"} {
		svc, ok := services[name]
		if !ok || svc == nil {
			continue
		}
		targets = append(targets, poller.Target{
			Name: name,
			Warm: func(ctx context.Context) error {
				_, err := svc.Render(ctx, settings.Bundle{})
				return err
			},
		})
	}
	return poller.New(targets, logger, cfg.WarmInterval)
}
