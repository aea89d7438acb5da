//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
)

const (
	smCXScreen = 0
	smCYScreen = 1
	defaultDPI = 96
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procGetDpiForSystem  = user32.NewProc("GetDpiForSystem")
)

// WindowsProbe implements DisplayProbe with user32
type WindowsProbe struct{}

// NewDisplayProbe creates the display probe for Windows
func NewDisplayProbe() DisplayProbe {
	return &WindowsProbe{}
}

// PrimaryDisplay reads the primary monitor size and the system DPI
func (w *WindowsProbe) PrimaryDisplay() (geometry.DisplayMetrics, error) {
	if err := procGetSystemMetrics.Find(); err != nil {
		return geometry.DisplayMetrics{}, errors.NewGeometryError("primary_display", err, errors.ErrCodePlatform)
	}

	width, _, _ := procGetSystemMetrics.Call(smCXScreen)
	height, _, _ := procGetSystemMetrics.Call(smCYScreen)
	if width == 0 || height == 0 {
		return geometry.DisplayMetrics{}, errors.HandleUnavailable("primary_display", "GetSystemMetrics")
	}

	return geometry.DisplayMetrics{
		PhysicalWidth:  float64(width),
		PhysicalHeight: float64(height),
		ScaleFactor:    float64(systemDPI()) / defaultDPI,
	}, nil
}

// systemDPI returns the system DPI, or 96 before Windows 10 1607
func systemDPI() uint32 {
	if procGetDpiForSystem.Find() != nil {
		return defaultDPI
	}
	dpi, _, _ := procGetDpiForSystem.Call()
	if dpi == 0 {
		return defaultDPI
	}
	return uint32(dpi)
}

func (w *WindowsProbe) String() string {
	return fmt.Sprintf("windows(user32, dpi=%d)", systemDPI())
}
