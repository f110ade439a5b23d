package config

// RendererConfig points at the external HTML-to-image renderer.
// An empty URL means render requests are returned as JSON bundles.
type RendererConfig struct {
	URL     string
	Timeout Duration
}

func loadRenderer() RendererConfig {
	return RendererConfig{
		URL:     envOrDefault(envRendererURL, ""),
		Timeout: durationEnvOrDefault(envRendererTimeout, defaultRendererTimeout),
	}
}
