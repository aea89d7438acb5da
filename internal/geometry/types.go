package geometry

import (
	"fmt"
	"math"
)

const (
	// FallbackMinWidth is used when the configuration does not set a minimum width
	FallbackMinWidth = 380.0
	// FallbackMinHeight is used when the configuration does not set a minimum height
	FallbackMinHeight = 624.0

	// availableWidthRatio and availableHeightRatio leave room for taskbars and docks
	availableWidthRatio  = 0.68
	availableHeightRatio = 0.80
)

// ConfiguredWindowSpec is the static window configuration of the main window
type ConfiguredWindowSpec struct {
	DefaultWidth  float64  `json:"defaultWidth"`
	DefaultHeight float64  `json:"defaultHeight"`
	MinWidth      *float64 `json:"minWidth,omitempty"`  // nil means FallbackMinWidth
	MinHeight     *float64 `json:"minHeight,omitempty"` // nil means FallbackMinHeight
}

// ObservedWindowSize is the window size reported by the platform at startup
type ObservedWindowSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DisplayMetrics describes the display currently hosting the window
type DisplayMetrics struct {
	PhysicalWidth  float64 `json:"physicalWidth"`
	PhysicalHeight float64 `json:"physicalHeight"`
	ScaleFactor    float64 `json:"scaleFactor"`
}

// TargetWindowSize is the computed size to apply to the window
type TargetWindowSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Float returns a pointer to v, for the optional fields of ConfiguredWindowSpec
func Float(v float64) *float64 {
	return &v
}

// ResolvedMinimum returns the configured minimum size, falling back to
// FallbackMinWidth x FallbackMinHeight for dimensions that are not set.
func (s ConfiguredWindowSpec) ResolvedMinimum() (width, height float64) {
	width, height = FallbackMinWidth, FallbackMinHeight
	if s.MinWidth != nil {
		width = *s.MinWidth
	}
	if s.MinHeight != nil {
		height = *s.MinHeight
	}
	return width, height
}

// Validate checks that the configured sizes are usable
func (s ConfiguredWindowSpec) Validate() error {
	if !isPositive(s.DefaultWidth) {
		return fmt.Errorf("default width must be positive, got %v", s.DefaultWidth)
	}
	if !isPositive(s.DefaultHeight) {
		return fmt.Errorf("default height must be positive, got %v", s.DefaultHeight)
	}
	if s.MinWidth != nil && (*s.MinWidth < 0 || math.IsNaN(*s.MinWidth) || math.IsInf(*s.MinWidth, 0)) {
		return fmt.Errorf("min width cannot be negative, got %v", *s.MinWidth)
	}
	if s.MinHeight != nil && (*s.MinHeight < 0 || math.IsNaN(*s.MinHeight) || math.IsInf(*s.MinHeight, 0)) {
		return fmt.Errorf("min height cannot be negative, got %v", *s.MinHeight)
	}
	return nil
}

// Available returns the share of the display the window is allowed to occupy
func (d DisplayMetrics) Available() (width, height float64) {
	return d.PhysicalWidth * d.ScaleFactor * availableWidthRatio,
		d.PhysicalHeight * d.ScaleFactor * availableHeightRatio
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
