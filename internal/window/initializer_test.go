package window

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jellyamp/internal/geometry"
	geoerrors "jellyamp/internal/infrastructure/errors"
	"jellyamp/internal/platform"
	"jellyamp/internal/testutils"
)

// fakeWindow records every call and returns canned results
type fakeWindow struct {
	observed    geometry.ObservedWindowSize
	observedErr error
	display     geometry.DisplayMetrics
	displayErr  error
	applyErr    error
	centerErr   error
	panicOn     string

	calls   []string
	applied []geometry.TargetWindowSize
}

func (f *fakeWindow) maybePanic(op string) {
	if f.panicOn == op {
		panic(op + " exploded")
	}
}

func (f *fakeWindow) ObservedSize(ctx context.Context) (geometry.ObservedWindowSize, error) {
	f.calls = append(f.calls, OpObservedSize)
	f.maybePanic(OpObservedSize)
	return f.observed, f.observedErr
}

func (f *fakeWindow) ActiveDisplay(ctx context.Context) (geometry.DisplayMetrics, error) {
	f.calls = append(f.calls, OpActiveDisplay)
	f.maybePanic(OpActiveDisplay)
	return f.display, f.displayErr
}

func (f *fakeWindow) ApplySize(ctx context.Context, size geometry.TargetWindowSize) error {
	f.calls = append(f.calls, OpApplySize)
	f.maybePanic(OpApplySize)
	f.applied = append(f.applied, size)
	return f.applyErr
}

func (f *fakeWindow) Center(ctx context.Context) error {
	f.calls = append(f.calls, OpCenter)
	f.maybePanic(OpCenter)
	return f.centerErr
}

func testSpec() geometry.ConfiguredWindowSpec {
	return geometry.ConfiguredWindowSpec{
		DefaultWidth:  1000,
		DefaultHeight: 700,
		MinWidth:      geometry.Float(380),
		MinHeight:     geometry.Float(624),
	}
}

func desktop() platform.Capability {
	return platform.CapabilitiesFor("linux")
}

func newTestInitializer(w Window, logger *testutils.RecordingLogger) *Initializer {
	return NewInitializer(w, Options{
		Spec:       testSpec(),
		Capability: desktop(),
		Logger:     logger,
	})
}

func TestInitializer_FirstRunOnLargeDisplay(t *testing.T) {
	w := &fakeWindow{
		observed: geometry.ObservedWindowSize{Width: 1000, Height: 700},
		display:  geometry.DisplayMetrics{PhysicalWidth: 1920, PhysicalHeight: 1080, ScaleFactor: 1},
	}

	report := newTestInitializer(w, &testutils.RecordingLogger{}).Run(context.Background())

	assert.Equal(t, geometry.Resize, report.Action.Kind)
	assert.Equal(t, []string{OpObservedSize, OpActiveDisplay, OpApplySize}, w.calls)
	assert.Equal(t, []geometry.TargetWindowSize{{Width: 1000, Height: 700}}, w.applied)
	assert.Empty(t, report.Failed())
	assert.Empty(t, report.Skipped)
}

func TestInitializer_FirstRunOnSmallDisplayCenters(t *testing.T) {
	w := &fakeWindow{
		observed: geometry.ObservedWindowSize{Width: 1000, Height: 700},
		display:  geometry.DisplayMetrics{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1},
	}

	report := newTestInitializer(w, &testutils.RecordingLogger{}).Run(context.Background())

	require.Equal(t, geometry.ResizeAndCenter, report.Action.Kind)
	assert.Equal(t, []string{OpObservedSize, OpActiveDisplay, OpApplySize, OpCenter}, w.calls)
	require.Len(t, w.applied, 1)
	assert.InDelta(t, 544.0, w.applied[0].Width, 1e-9)
	assert.InDelta(t, 624.0, w.applied[0].Height, 1e-9)
}

func TestInitializer_RestoredSessionTouchesNothing(t *testing.T) {
	w := &fakeWindow{
		observed: geometry.ObservedWindowSize{Width: 1200, Height: 800},
		display:  geometry.DisplayMetrics{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1},
	}

	report := newTestInitializer(w, &testutils.RecordingLogger{}).Run(context.Background())

	assert.Equal(t, geometry.NoOp, report.Action.Kind)
	assert.Equal(t, []string{OpObservedSize, OpActiveDisplay}, w.calls, "reads once, writes nothing")
}

func TestInitializer_DisplayUnavailableIsNoOp(t *testing.T) {
	logger := &testutils.RecordingLogger{}
	w := &fakeWindow{
		observed:   geometry.ObservedWindowSize{Width: 1000, Height: 700},
		displayErr: geoerrors.ErrNoDisplay,
	}

	report := newTestInitializer(w, logger).Run(context.Background())

	assert.Equal(t, geometry.NoOp, report.Action.Kind)
	assert.Equal(t, []string{OpObservedSize, OpActiveDisplay}, w.calls)

	step, ok := report.Step(OpActiveDisplay)
	require.True(t, ok)
	assert.True(t, geoerrors.IsUnavailable(step.Err))
	assert.Len(t, logger.ByLevel("WARN"), 1)
}

func TestInitializer_ObservedSizeUnavailableSkips(t *testing.T) {
	w := &fakeWindow{observedErr: errors.New("window not created yet")}

	report := newTestInitializer(w, &testutils.RecordingLogger{}).Run(context.Background())

	assert.Equal(t, SkipObservedSize, report.Skipped)
	assert.Equal(t, geometry.NoOp, report.Action.Kind)
	assert.Equal(t, []string{OpObservedSize}, w.calls, "display is not read without a window size")
}

func TestInitializer_ApplyFailureStillCenters(t *testing.T) {
	logger := &testutils.RecordingLogger{}
	w := &fakeWindow{
		observed: geometry.ObservedWindowSize{Width: 1000, Height: 700},
		display:  geometry.DisplayMetrics{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1},
		applyErr: errors.New("compositor refused"),
	}

	report := newTestInitializer(w, logger).Run(context.Background())

	assert.Equal(t, []string{OpObservedSize, OpActiveDisplay, OpApplySize, OpCenter}, w.calls)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, OpApplySize, failed[0].Op)
	assert.True(t, geoerrors.IsApplyFailed(failed[0].Err))

	call, ok := logger.Find("Window geometry step failed")
	require.True(t, ok)
	fields := testutils.FieldsToMap(t, call.Fields)
	assert.Equal(t, OpApplySize, fields["operation"])
	assert.Equal(t, "APPLY_FAILED", fields["error_code"])
}

func TestInitializer_CenterFailureIsAbsorbed(t *testing.T) {
	w := &fakeWindow{
		observed:  geometry.ObservedWindowSize{Width: 1000, Height: 700},
		display:   geometry.DisplayMetrics{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1},
		centerErr: errors.New("no parent screen"),
	}

	report := newTestInitializer(w, &testutils.RecordingLogger{}).Run(context.Background())

	step, ok := report.Step(OpCenter)
	require.True(t, ok)
	assert.True(t, geoerrors.IsCenterFailed(step.Err))
	assert.Equal(t, geometry.ResizeAndCenter, report.Action.Kind)
}

func TestInitializer_PanicsAreRecovered(t *testing.T) {
	for _, op := range []string{OpObservedSize, OpActiveDisplay, OpApplySize, OpCenter} {
		t.Run(op, func(t *testing.T) {
			w := &fakeWindow{
				observed: geometry.ObservedWindowSize{Width: 1000, Height: 700},
				display:  geometry.DisplayMetrics{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1},
				panicOn:  op,
			}

			var report Report
			require.NotPanics(t, func() {
				report = newTestInitializer(w, &testutils.RecordingLogger{}).Run(context.Background())
			})

			step, ok := report.Step(op)
			require.True(t, ok)
			assert.True(t, geoerrors.IsPlatform(step.Err))
		})
	}
}

func TestInitializer_MobileIsSkipped(t *testing.T) {
	w := &fakeWindow{observed: geometry.ObservedWindowSize{Width: 1000, Height: 700}}
	initializer := NewInitializer(w, Options{
		Spec:       testSpec(),
		Capability: platform.CapabilitiesFor("android"),
		Logger:     &testutils.RecordingLogger{},
	})

	report := initializer.Run(context.Background())

	assert.Equal(t, SkipUnsupported, report.Skipped)
	assert.Empty(t, w.calls)
}

func TestInitializer_NilWindowIsSkipped(t *testing.T) {
	report := NewInitializer(nil, Options{Spec: testSpec(), Capability: desktop(), Logger: &testutils.RecordingLogger{}}).
		Run(context.Background())

	assert.Equal(t, SkipNoWindow, report.Skipped)
	assert.Equal(t, geometry.NoOp, report.Action.Kind)
}

func TestInitializer_ExplicitRestoreReport(t *testing.T) {
	w := &fakeWindow{
		observed: geometry.ObservedWindowSize{Width: 1000, Height: 700},
		display:  geometry.DisplayMetrics{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1},
	}
	initializer := NewInitializer(w, Options{
		Spec:       testSpec(),
		Detector:   geometry.RestoreReport{Reported: true, Restored: true},
		Capability: desktop(),
		Logger:     &testutils.RecordingLogger{},
	})

	report := initializer.Run(context.Background())

	assert.Equal(t, geometry.NoOp, report.Action.Kind)
	assert.Empty(t, w.applied)
}

func TestInitializer_LogsCompletion(t *testing.T) {
	logger := &testutils.RecordingLogger{}
	w := &fakeWindow{
		observed: geometry.ObservedWindowSize{Width: 1000, Height: 700},
		display:  geometry.DisplayMetrics{PhysicalWidth: 1920, PhysicalHeight: 1080, ScaleFactor: 1},
	}

	newTestInitializer(w, logger).Run(context.Background())

	call, ok := logger.Find("Operation completed: window_geometry")
	require.True(t, ok)
	fields := testutils.FieldsToMap(t, call.Fields)
	assert.Equal(t, "RESIZE(1000x700)", fields["action"])
	assert.Equal(t, 0, fields["failed"])
}
