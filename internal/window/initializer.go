package window

import (
	"context"
	"fmt"
	"time"

	"jellyamp/internal/geometry"
	"jellyamp/internal/infrastructure/errors"
	"jellyamp/internal/infrastructure/logging"
	"jellyamp/internal/platform"
)

// Skip reasons reported in Report.Skipped
const (
	SkipUnsupported  = "platform does not support adaptive window geometry"
	SkipNoWindow     = "no main window"
	SkipObservedSize = "observed window size unavailable"
)

// Options configures an Initializer
type Options struct {
	Spec       geometry.ConfiguredWindowSpec
	Detector   geometry.FirstRunDetector // nil means geometry.SizeMatch
	Capability platform.Capability
	Logger     logging.Logger
}

// Initializer sizes the main window once on startup
type Initializer struct {
	window     Window
	spec       geometry.ConfiguredWindowSpec
	detector   geometry.FirstRunDetector
	capability platform.Capability
	logger     logging.Logger
}

// NewInitializer creates a new Initializer for the given window
func NewInitializer(w Window, opts Options) *Initializer {
	if opts.Logger == nil {
		opts.Logger = logging.NewDefaultLogger()
	}
	if opts.Detector == nil {
		opts.Detector = geometry.SizeMatch{}
	}
	return &Initializer{
		window:     w,
		spec:       opts.Spec,
		detector:   opts.Detector,
		capability: opts.Capability,
		logger:     opts.Logger,
	}
}

// Run reads the window and display once, decides the startup geometry and
// applies it. It never fails: every problem ends up in the returned Report
// and in the log.
func (i *Initializer) Run(ctx context.Context) Report {
	start := time.Now()
	report := Report{Action: geometry.NoAction()}

	if !i.capability.AdaptiveGeometry {
		report.Skipped = SkipUnsupported
		i.logger.Debug("Skipping window geometry", "reason", report.Skipped, "platform", i.capability.Platform)
		return report
	}

	if i.window == nil {
		report.Skipped = SkipNoWindow
		i.logger.Debug("Skipping window geometry", "reason", report.Skipped)
		return report
	}

	var observed geometry.ObservedWindowSize
	step := i.attempt(OpObservedSize, func() (err error) {
		observed, err = i.window.ObservedSize(ctx)
		return err
	})
	report.Steps = append(report.Steps, step)
	if !step.OK() {
		report.Skipped = SkipObservedSize
		return report
	}

	var display geometry.DisplayMetrics
	step = i.attempt(OpActiveDisplay, func() (err error) {
		display, err = i.window.ActiveDisplay(ctx)
		return err
	})
	report.Steps = append(report.Steps, step)

	var displayPtr *geometry.DisplayMetrics
	if step.OK() {
		displayPtr = &display
	}

	report.Action = geometry.InitializeWith(i.detector, &observed, i.spec, displayPtr)
	i.logger.Debug("Window geometry decided",
		"action", report.Action.Kind.String(),
		"observed_width", observed.Width,
		"observed_height", observed.Height,
		"display_resolved", displayPtr != nil)

	if report.Action.ShouldResize() {
		size := report.Action.Size
		report.Steps = append(report.Steps, i.attempt(OpApplySize, func() error {
			return i.window.ApplySize(ctx, size)
		}))
	}

	// Centering is attempted even if resizing failed
	if report.Action.ShouldCenter() {
		report.Steps = append(report.Steps, i.attempt(OpCenter, func() error {
			return i.window.Center(ctx)
		}))
	}

	logging.LogOperation(i.logger, "window_geometry", time.Since(start), map[string]interface{}{
		"action": report.Action.String(),
		"failed": len(report.Failed()),
	})

	return report
}

// attempt runs one platform call, turning errors and panics into a logged Step
func (i *Initializer) attempt(op string, fn func() error) (step Step) {
	step.Op = op

	defer func() {
		if r := recover(); r != nil {
			step.Err = errors.FromPanic(op, r)
		}
		if step.Err != nil {
			logging.LogGeometryError(i.logger, step.Err, op, nil)
		}
	}()

	if err := fn(); err != nil {
		step.Err = wrapStepError(op, err)
	}
	return step
}

func wrapStepError(op string, err error) error {
	code := errors.ClassifyError(err)
	if code == errors.ErrCodeUnknown {
		switch op {
		case OpApplySize:
			code = errors.ErrCodeApplyFailed
		case OpCenter:
			code = errors.ErrCodeCenterFailed
		case OpObservedSize, OpActiveDisplay:
			code = errors.ErrCodeUnavailable
		}
	}
	return errors.NewGeometryErrorWithContext(op, fmt.Errorf("%s: %w", op, err), code, nil)
}
