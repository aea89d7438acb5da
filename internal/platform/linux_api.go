//go:build linux && !android

package platform

import (
	"os"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
)

// LinuxProbe implements DisplayProbe for Linux.
// The webview runtime already talks to GTK; this probe only reports whether
// a display server is reachable at all.
type LinuxProbe struct{}

// NewDisplayProbe creates the display probe for Linux
func NewDisplayProbe() DisplayProbe {
	return &LinuxProbe{}
}

// PrimaryDisplay is report-only: it never returns metrics. Screen sizes on
// Linux come from the webview runtime, which is queried first; the error
// names the display server found in the environment.
func (l *LinuxProbe) PrimaryDisplay() (geometry.DisplayMetrics, error) {
	server := "none"
	switch {
	case os.Getenv("WAYLAND_DISPLAY") != "":
		server = "wayland"
	case os.Getenv("DISPLAY") != "":
		server = "x11"
	}
	return geometry.DisplayMetrics{}, errors.NewGeometryErrorWithContext("primary_display",
		errors.ErrNoDisplay,
		errors.ErrCodeUnavailable,
		map[string]string{"display_server": server})
}
