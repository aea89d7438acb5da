// Package window applies the startup geometry decision to the real main window.
//
// Every platform call here is best-effort: failures are recorded and logged,
// never returned, so window sizing can not stop the application from starting.
package window

import (
	"context"

	"jellyamp/internal/geometry"
)

// Window is the platform's view of the main window and its display.
// Every method may fail; the Initializer treats failures as non-fatal.
type Window interface {
	ObservedSize(ctx context.Context) (geometry.ObservedWindowSize, error)
	ActiveDisplay(ctx context.Context) (geometry.DisplayMetrics, error)
	ApplySize(ctx context.Context, size geometry.TargetWindowSize) error
	Center(ctx context.Context) error
}

// Step operation names
const (
	OpObservedSize  = "observed_size"
	OpActiveDisplay = "active_display"
	OpApplySize     = "apply_size"
	OpCenter        = "center"
)

// Step is the best-effort result of one platform call
type Step struct {
	Op  string `json:"op"`
	Err error  `json:"-"`
}

// OK reports whether the step succeeded
func (s Step) OK() bool {
	return s.Err == nil
}

// Report describes what one run of the Initializer did
type Report struct {
	Action  geometry.Action `json:"action"`
	Skipped string          `json:"skipped,omitempty"` // why nothing was attempted
	Steps   []Step          `json:"steps"`
}

// Step returns the step with the given op, if it ran
func (r Report) Step(op string) (Step, bool) {
	for _, s := range r.Steps {
		if s.Op == op {
			return s, true
		}
	}
	return Step{}, false
}

// Failed returns the steps that did not succeed
func (r Report) Failed() []Step {
	var failed []Step
	for _, s := range r.Steps {
		if !s.OK() {
			failed = append(failed, s)
		}
	}
	return failed
}
