package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.TeamID != defaultTeamID || cfg.TeamName != defaultTeamName {
		t.Fatalf("expected default team %s/%s, got %s/%s", defaultTeamID, defaultTeamName, cfg.TeamID, cfg.TeamName)
	}
	if cfg.DefaultCacheMinutes != defaultCacheMinutes {
		t.Fatalf("expected default cache minutes %d, got %d", defaultCacheMinutes, cfg.DefaultCacheMinutes)
	}
	if cfg.ESPN.SiteBaseURL != defaultSiteBaseURL {
		t.Fatalf("expected default site base url %s, got %s", defaultSiteBaseURL, cfg.ESPN.SiteBaseURL)
	}
	if cfg.ESPN.Timeout != defaultESPNTimeout {
		t.Fatalf("expected default espn timeout %s, got %s", defaultESPNTimeout, cfg.ESPN.Timeout)
	}
	if cfg.Device.Width != defaultDeviceWidth || cfg.Device.Height != defaultDeviceHeight {
		t.Fatalf("expected default resolution, got %dx%d", cfg.Device.Width, cfg.Device.Height)
	}
	if cfg.Renderer.URL != "" {
		t.Fatalf("expected no renderer by default, got %s", cfg.Renderer.URL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin, got %v", cfg.CORSOrigins)
	}
	if !cfg.WarmEnabled || cfg.WarmInterval != defaultWarmInterval {
		t.Fatalf("expected cache warming on every %s, got %v/%s", defaultWarmInterval, cfg.WarmEnabled, cfg.WarmInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "Fixture")
	t.Setenv(envTeamID, "251")
	t.Setenv(envTeamName, "Texas")
	t.Setenv(envCacheMinutes, "0")
	t.Setenv(envESPNTimeout, "5s")
	t.Setenv(envDeviceTimezone, "America/Chicago")
	t.Setenv(envDeviceOrient, "vertical")
	t.Setenv(envRendererURL, "http://renderer:3000/render")
	t.Setenv(envCORSOrigins, "http://a.test, http://b.test")
	t.Setenv(envWarmEnabled, "false")
	t.Setenv(envWarmInterval, "2m")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider lower-cased, got %s", cfg.Provider)
	}
	if cfg.TeamID != "251" || cfg.TeamName != "Texas" {
		t.Fatalf("expected team override, got %s/%s", cfg.TeamID, cfg.TeamName)
	}
	if cfg.DefaultCacheMinutes != 0 {
		t.Fatalf("expected cache minutes 0 to be honored, got %d", cfg.DefaultCacheMinutes)
	}
	if cfg.ESPN.Timeout != 5*time.Second {
		t.Fatalf("expected espn timeout 5s, got %s", cfg.ESPN.Timeout)
	}
	if cfg.Device.Timezone != "America/Chicago" || cfg.Device.Orientation != "vertical" {
		t.Fatalf("unexpected device config %+v", cfg.Device)
	}
	if cfg.Renderer.URL != "http://renderer:3000/render" {
		t.Fatalf("expected renderer url override, got %s", cfg.Renderer.URL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("expected two cors origins, got %v", cfg.CORSOrigins)
	}
	if cfg.WarmEnabled || cfg.WarmInterval != 2*time.Minute {
		t.Fatalf("expected warming disabled with 2m interval, got %v/%s", cfg.WarmEnabled, cfg.WarmInterval)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envESPNTimeout, "not-a-duration")

	cfg := Load()

	if cfg.ESPN.Timeout != defaultESPNTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.ESPN.Timeout)
	}
}

func TestLoadNegativeCacheMinutesFallsBack(t *testing.T) {
	t.Setenv(envCacheMinutes, "-5")

	cfg := Load()

	if cfg.DefaultCacheMinutes != defaultCacheMinutes {
		t.Fatalf("expected default cache minutes on negative value, got %d", cfg.DefaultCacheMinutes)
	}
}

func TestLoadDotEnvMissingFileIsNotAnError(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("TEAM_NAME=FromFile\nTEAM_ID=333\n"), 0o600); err != nil {
		t.Fatalf("failed writing env file: %v", err)
	}
	t.Setenv(envTeamName, "FromEnv")
	t.Setenv(envTeamID, "")
	os.Unsetenv(envTeamID)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(envTeamID) })

	cfg := Load()
	if cfg.TeamName != "FromEnv" {
		t.Fatalf("expected existing env to win, got %s", cfg.TeamName)
	}
	if cfg.TeamID != "333" {
		t.Fatalf("expected team id from file, got %s", cfg.TeamID)
	}
}
