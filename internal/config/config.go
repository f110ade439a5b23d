package config

import "strings"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port                string
	Provider            string
	TeamID              string
	TeamName            string
	DefaultCacheMinutes int
	CORSOrigins         []string
	WarmEnabled         bool
	WarmInterval        Duration
	ESPN                ESPNConfig
	Device              DeviceConfig
	Renderer            RendererConfig
	Metrics             MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                envOrDefault(envPort, defaultPort),
		Provider:            strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		TeamID:              envOrDefault(envTeamID, defaultTeamID),
		TeamName:            envOrDefault(envTeamName, defaultTeamName),
		DefaultCacheMinutes: nonNegativeIntEnvOrDefault(envCacheMinutes, defaultCacheMinutes),
		CORSOrigins:         listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		WarmEnabled:         boolEnvOrDefault(envWarmEnabled, true),
		WarmInterval:        durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
		ESPN:                loadESPN(),
		Device:              loadDevice(),
		Renderer:            loadRenderer(),
		Metrics:             loadMetrics(),
	}
}
