//go:build android || ios

package platform

import (
	"runtime"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
)

// MobileProbe implements DisplayProbe for phones and tablets, where the
// window always fills the screen
type MobileProbe struct{}

// NewDisplayProbe creates the display probe for mobile targets
func NewDisplayProbe() DisplayProbe {
	return &MobileProbe{}
}

func (m *MobileProbe) PrimaryDisplay() (geometry.DisplayMetrics, error) {
	return geometry.DisplayMetrics{}, errors.HandleUnsupported("primary_display", runtime.GOOS)
}
