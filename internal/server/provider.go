package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/espn"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/fixture"
)

func newESPNClient(cfg config.Config) *espn.Client {
	return espn.NewClient(espn.Config{
		SiteBaseURL: cfg.ESPN.SiteBaseURL,
		WebBaseURL:  cfg.ESPN.WebBaseURL,
		CoreBaseURL: cfg.ESPN.CoreBaseURL,
		UserAgent:   cfg.ESPN.UserAgent,
		HTTPClient:  &http.Client{Timeout: cfg.ESPN.Timeout},
	})
}

// selectProvider returns the document source named by cfg.Provider. The ESPN client
// also serves as the URL builder regardless of which provider answers.
func selectProvider(cfg config.Config, client *espn.Client, logger *slog.Logger) providers.DocumentProvider {
	switch cfg.Provider {
	case "espn", "":
		return client
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
