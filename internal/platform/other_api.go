//go:build !windows && !linux && !darwin

package platform

import (
	"runtime"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
)

// GenericProbe implements DisplayProbe for platforms without a native query
type GenericProbe struct{}

// NewDisplayProbe creates the display probe for other platforms
func NewDisplayProbe() DisplayProbe {
	return &GenericProbe{}
}

func (g *GenericProbe) PrimaryDisplay() (geometry.DisplayMetrics, error) {
	return geometry.DisplayMetrics{}, errors.NewGeometryErrorWithContext("primary_display",
		errors.ErrNoDisplay,
		errors.ErrCodeUnavailable,
		map[string]string{"platform": runtime.GOOS})
}
