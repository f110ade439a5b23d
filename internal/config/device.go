package config

// DeviceConfig describes the target display.
type DeviceConfig struct {
	Width       int
	Height      int
	Orientation string
	Timezone    string // IANA name; empty means the process local zone
}

func loadDevice() DeviceConfig {
	return DeviceConfig{
		Width:       intEnvOrDefault(envDeviceWidth, defaultDeviceWidth),
		Height:      intEnvOrDefault(envDeviceHeight, defaultDeviceHeight),
		Orientation: envOrDefault(envDeviceOrient, defaultDeviceOrientation),
		Timezone:    envOrDefault(envDeviceTimezone, ""),
	}
}
