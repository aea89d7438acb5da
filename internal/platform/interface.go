package platform

import (
	"runtime"

	"jellyamp/internal/geometry"
)

// FormFactor is the class of device the binary runs on
type FormFactor string

const (
	FormFactorDesktop FormFactor = "desktop"
	FormFactorMobile  FormFactor = "mobile"
)

// Capability is resolved once at startup and tells the app which window
// features the platform supports
type Capability struct {
	Platform         string     `json:"platform"`
	FormFactor       FormFactor `json:"formFactor"`
	AdaptiveGeometry bool       `json:"adaptiveGeometry"`
}

// DisplayProbe queries the operating system directly for the primary display.
// It backs up the webview runtime when that cannot resolve a screen.
type DisplayProbe interface {
	PrimaryDisplay() (geometry.DisplayMetrics, error)
}

// Capabilities returns the capability of the running platform
func Capabilities() Capability {
	return CapabilitiesFor(runtime.GOOS)
}

// CapabilitiesFor returns the capability of the given GOOS. Window geometry
// is meaningless on phones and tablets, so mobile targets opt out.
func CapabilitiesFor(goos string) Capability {
	switch goos {
	case "android", "ios":
		return Capability{Platform: goos, FormFactor: FormFactorMobile, AdaptiveGeometry: false}
	default:
		return Capability{Platform: goos, FormFactor: FormFactorDesktop, AdaptiveGeometry: true}
	}
}
