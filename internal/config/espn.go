package config

// ESPNConfig controls how we talk to ESPN's public JSON endpoints.
type ESPNConfig struct {
	SiteBaseURL string
	WebBaseURL  string
	CoreBaseURL string
	Timeout     Duration
	UserAgent   string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		SiteBaseURL: envOrDefault(envSiteBaseURL, defaultSiteBaseURL),
		WebBaseURL:  envOrDefault(envWebBaseURL, defaultWebBaseURL),
		CoreBaseURL: envOrDefault(envCoreBaseURL, defaultCoreBaseURL),
		Timeout:     durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
		UserAgent:   envOrDefault(envESPNUserAgent, defaultUserAgent),
	}
}
