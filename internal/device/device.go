package device

import (
	"strings"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/timeutil"
)

const (
	KeyOrientation = "orientation"
	KeyTimezone    = "timezone"

	OrientationVertical = "vertical"
)

// Device supplies the target display's resolution and named config values.
type Device interface {
	Resolution() (width, height int)
	Config(key string) string
}

// Static is a Device with fixed values, typically loaded from the environment.
type Static struct {
	Width       int
	Height      int
	Orientation string
	Timezone    string
}

// FromConfig builds a Static device from configuration.
func FromConfig(cfg config.DeviceConfig) Static {
	return Static{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Orientation: cfg.Orientation,
		Timezone:    cfg.Timezone,
	}
}

func (s Static) Resolution() (int, int) {
	return s.Width, s.Height
}

func (s Static) Config(key string) string {
	switch key {
	case KeyOrientation:
		return s.Orientation
	case KeyTimezone:
		return s.Timezone
	}
	return ""
}

var screenSizes = map[string][2]int{
	"800x480":   {800, 480},
	"1600x1200": {1600, 1200},
}

// Dimensions resolves the canvas size: a known screen_size override, else the device
// resolution, swapped when the device is vertical.
func Dimensions(d Device, screenSize string) (int, int) {
	var w, h int
	if size, ok := screenSizes[strings.ToLower(strings.TrimSpace(screenSize))]; ok {
		w, h = size[0], size[1]
	} else if d != nil {
		w, h = d.Resolution()
	}
	if d != nil && strings.EqualFold(d.Config(KeyOrientation), OrientationVertical) {
		w, h = h, w
	}
	return w, h
}

// Location returns the device timezone, or nil (process local) when unset or invalid.
func Location(d Device) *time.Location {
	if d == nil {
		return nil
	}
	return timeutil.LoadLocation(d.Config(KeyTimezone))
}
