//go:build darwin && !ios

package platform

import (
	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
)

// DarwinProbe implements DisplayProbe for macOS
type DarwinProbe struct{}

// NewDisplayProbe creates the display probe for macOS
func NewDisplayProbe() DisplayProbe {
	return &DarwinProbe{}
}

// PrimaryDisplay is report-only: it always returns an unavailable error.
// NSScreen is only reachable through the webview runtime, which is queried first.
func (d *DarwinProbe) PrimaryDisplay() (geometry.DisplayMetrics, error) {
	return geometry.DisplayMetrics{}, errors.HandleUnavailable("primary_display", "NSScreen")
}
