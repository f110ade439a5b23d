package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envTeamID          = "TEAM_ID"
	envTeamName        = "TEAM_NAME"
	envCacheMinutes    = "DEFAULT_CACHE_MINUTES"
	envCORSOrigins     = "CORS_ORIGINS"
	envWarmEnabled     = "CACHE_WARM_ENABLED"
	envWarmInterval    = "CACHE_WARM_INTERVAL"
	envSiteBaseURL     = "ESPN_SITE_BASE_URL"
	envWebBaseURL      = "ESPN_WEB_BASE_URL"
	envCoreBaseURL     = "ESPN_CORE_BASE_URL"
	envESPNTimeout     = "ESPN_TIMEOUT"
	envESPNUserAgent   = "ESPN_USER_AGENT"
	envDeviceWidth     = "DEVICE_WIDTH"
	envDeviceHeight    = "DEVICE_HEIGHT"
	envDeviceOrient    = "DEVICE_ORIENTATION"
	envDeviceTimezone  = "DEVICE_TIMEZONE"
	envRendererURL     = "RENDERER_URL"
	envRendererTimeout = "RENDERER_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultProvider     = "espn"
	defaultTeamID       = "87"
	defaultTeamName     = "Notre Dame"
	defaultCacheMinutes = 30
	defaultCORSOrigins  = "*"
	defaultWarmInterval = 10 * Duration(time.Minute)

	defaultSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultWebBaseURL  = "https://site.web.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultCoreBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/college-football"
	// ESPN answers slowly during Saturday traffic; 20s matches what the plugins always used.
	defaultESPNTimeout = 20 * Duration(time.Second)
	defaultUserAgent   = "cfb-display-service/1.0"

	defaultDeviceWidth       = 800
	defaultDeviceHeight      = 480
	defaultDeviceOrientation = "horizontal"

	defaultRendererTimeout = 30 * Duration(time.Second)
	defaultMetricsPort     = "9090"
)
