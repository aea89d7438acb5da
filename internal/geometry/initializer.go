// Package geometry decides the initial size of the main window at startup.
//
// The decision is a pure function of the observed window size, the static
// window configuration and the metrics of the active display. Applying the
// result to a real window is left to the caller (see package window).
package geometry

import "math"

// Initialize decides what to do with the main window on launch, using the
// size-match first-run heuristic. A nil observed size or a nil display
// yields a NoOp action.
func Initialize(observed *ObservedWindowSize, spec ConfiguredWindowSpec, display *DisplayMetrics) Action {
	return InitializeWith(SizeMatch{}, observed, spec, display)
}

// InitializeWith is Initialize with a custom first-run detector
func InitializeWith(detector FirstRunDetector, observed *ObservedWindowSize, spec ConfiguredWindowSpec, display *DisplayMetrics) Action {
	if observed == nil {
		return NoAction()
	}
	if detector == nil {
		detector = SizeMatch{}
	}

	if !detector.IsFirstRun(*observed, spec) {
		return NoAction()
	}

	if display == nil || !display.usable() {
		return NoAction()
	}

	target := ComputeTarget(spec, *display)

	// Shrunk below the preferred size: center so the margins are even
	if target.Width < spec.DefaultWidth || target.Height < spec.DefaultHeight {
		return Action{Kind: ResizeAndCenter, Size: target}
	}
	return Action{Kind: Resize, Size: target}
}

// ComputeTarget clamps the configured default size into the available space
// of the display, then raises it to the minimum size. The minimum always wins
// over the available space.
func ComputeTarget(spec ConfiguredWindowSpec, display DisplayMetrics) TargetWindowSize {
	minWidth, minHeight := spec.ResolvedMinimum()
	availableWidth, availableHeight := display.Available()

	optimalWidth := math.Min(spec.DefaultWidth, availableWidth)
	optimalHeight := math.Min(spec.DefaultHeight, availableHeight)

	return TargetWindowSize{
		Width:  math.Max(optimalWidth, minWidth),
		Height: math.Max(optimalHeight, minHeight),
	}
}

// usable reports whether the metrics describe a real display
func (d DisplayMetrics) usable() bool {
	return isPositive(d.PhysicalWidth) && isPositive(d.PhysicalHeight) && isPositive(d.ScaleFactor)
}
