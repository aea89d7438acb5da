package window

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
	"jellyamp/internal/platform"
)

// runtimeFuncs is the subset of the Wails runtime the adapter uses
type runtimeFuncs struct {
	windowGetSize func(ctx context.Context) (int, int)
	windowSetSize func(ctx context.Context, width, height int)
	windowCenter  func(ctx context.Context)
	screenGetAll  func(ctx context.Context) ([]wailsruntime.Screen, error)
}

func defaultRuntime() runtimeFuncs {
	return runtimeFuncs{
		windowGetSize: wailsruntime.WindowGetSize,
		windowSetSize: wailsruntime.WindowSetSize,
		windowCenter:  wailsruntime.WindowCenter,
		screenGetAll:  wailsruntime.ScreenGetAll,
	}
}

// WailsWindow implements Window on top of the Wails runtime.
// The context must be the one Wails passes to OnStartup.
type WailsWindow struct {
	rt    runtimeFuncs
	probe platform.DisplayProbe
}

var _ Window = (*WailsWindow)(nil)

// NewWailsWindow creates a Window backed by the Wails runtime. probe, when
// not nil, is asked for the primary display if Wails reports no usable screen.
func NewWailsWindow(probe platform.DisplayProbe) *WailsWindow {
	return &WailsWindow{rt: defaultRuntime(), probe: probe}
}

// ObservedSize returns the current window size
func (w *WailsWindow) ObservedSize(ctx context.Context) (geometry.ObservedWindowSize, error) {
	if ctx == nil {
		return geometry.ObservedWindowSize{}, errors.HandleUnavailable(OpObservedSize, "wails context")
	}

	width, height := w.rt.windowGetSize(ctx)
	if width <= 0 || height <= 0 {
		return geometry.ObservedWindowSize{}, errors.HandleUnavailable(OpObservedSize, "window")
	}

	return geometry.ObservedWindowSize{Width: float64(width), Height: float64(height)}, nil
}

// ActiveDisplay returns the metrics of the screen hosting the window,
// falling back to the primary screen and then to the native probe
func (w *WailsWindow) ActiveDisplay(ctx context.Context) (geometry.DisplayMetrics, error) {
	if ctx == nil {
		return geometry.DisplayMetrics{}, errors.HandleUnavailable(OpActiveDisplay, "wails context")
	}

	screens, err := w.rt.screenGetAll(ctx)
	if err == nil {
		if screen, ok := pickScreen(screens); ok {
			if metrics, ok := screenMetrics(screen); ok {
				return metrics, nil
			}
		}
	}

	if w.probe != nil {
		if metrics, probeErr := w.probe.PrimaryDisplay(); probeErr == nil {
			return metrics, nil
		}
	}

	if err != nil {
		return geometry.DisplayMetrics{}, errors.WrapWithContext(OpActiveDisplay, err, map[string]string{"source": "wails"})
	}
	return geometry.DisplayMetrics{}, errors.HandleUnavailable(OpActiveDisplay, "screen")
}

// ApplySize resizes the window, truncating to whole pixels
func (w *WailsWindow) ApplySize(ctx context.Context, size geometry.TargetWindowSize) error {
	if ctx == nil {
		return errors.HandleUnavailable(OpApplySize, "wails context")
	}
	w.rt.windowSetSize(ctx, int(size.Width), int(size.Height))
	return nil
}

// Center centers the window on its screen
func (w *WailsWindow) Center(ctx context.Context) error {
	if ctx == nil {
		return errors.HandleUnavailable(OpCenter, "wails context")
	}
	w.rt.windowCenter(ctx)
	return nil
}

// pickScreen returns the screen hosting the window, else the primary screen
func pickScreen(screens []wailsruntime.Screen) (wailsruntime.Screen, bool) {
	for _, s := range screens {
		if s.IsCurrent {
			return s, true
		}
	}
	for _, s := range screens {
		if s.IsPrimary {
			return s, true
		}
	}
	return wailsruntime.Screen{}, false
}

// screenMetrics converts a Wails screen. The scale factor is the ratio of
// physical to logical width; platforms that report no physical size get 1.
func screenMetrics(s wailsruntime.Screen) (geometry.DisplayMetrics, bool) {
	logicalWidth, logicalHeight := s.Size.Width, s.Size.Height
	if logicalWidth <= 0 || logicalHeight <= 0 {
		logicalWidth, logicalHeight = s.Width, s.Height
	}

	physicalWidth, physicalHeight := s.PhysicalSize.Width, s.PhysicalSize.Height
	if physicalWidth <= 0 || physicalHeight <= 0 {
		physicalWidth, physicalHeight = logicalWidth, logicalHeight
	}

	if physicalWidth <= 0 || physicalHeight <= 0 {
		return geometry.DisplayMetrics{}, false
	}

	scale := 1.0
	if logicalWidth > 0 {
		scale = float64(physicalWidth) / float64(logicalWidth)
	}

	return geometry.DisplayMetrics{
		PhysicalWidth:  float64(physicalWidth),
		PhysicalHeight: float64(physicalHeight),
		ScaleFactor:    scale,
	}, true
}
