package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfiguredWindowSpec_Validate(t *testing.T) {
	tests := []struct {
		name     string
		spec     ConfiguredWindowSpec
		errorMsg string
	}{
		{"valid", defaultSpec(), ""},
		{"valid without minimums", ConfiguredWindowSpec{DefaultWidth: 800, DefaultHeight: 600}, ""},
		{"zero width", ConfiguredWindowSpec{DefaultWidth: 0, DefaultHeight: 600}, "default width must be positive"},
		{"negative height", ConfiguredWindowSpec{DefaultWidth: 800, DefaultHeight: -1}, "default height must be positive"},
		{"infinite width", ConfiguredWindowSpec{DefaultWidth: math.Inf(1), DefaultHeight: 600}, "default width must be positive"},
		{"negative min width", ConfiguredWindowSpec{DefaultWidth: 800, DefaultHeight: 600, MinWidth: Float(-5)}, "min width cannot be negative"},
		{"NaN min height", ConfiguredWindowSpec{DefaultWidth: 800, DefaultHeight: 600, MinHeight: Float(math.NaN())}, "min height cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errorMsg)
		})
	}
}

func TestConfiguredWindowSpec_ResolvedMinimum(t *testing.T) {
	w, h := ConfiguredWindowSpec{}.ResolvedMinimum()
	assert.Equal(t, FallbackMinWidth, w)
	assert.Equal(t, FallbackMinHeight, h)

	w, h = ConfiguredWindowSpec{MinWidth: Float(0), MinHeight: Float(100)}.ResolvedMinimum()
	assert.Equal(t, 0.0, w, "an explicit zero is kept")
	assert.Equal(t, 100.0, h)
}

func TestDisplayMetrics_Available(t *testing.T) {
	w, h := DisplayMetrics{PhysicalWidth: 1920, PhysicalHeight: 1080, ScaleFactor: 1.0}.Available()
	assert.InDelta(t, 1305.6, w, delta)
	assert.InDelta(t, 864.0, h, delta)

	w, h = DisplayMetrics{PhysicalWidth: 1000, PhysicalHeight: 1000, ScaleFactor: 1.5}.Available()
	assert.InDelta(t, 1020.0, w, delta)
	assert.InDelta(t, 1200.0, h, delta)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "NOOP", NoAction().String())
	assert.Equal(t, "RESIZE(1000x700)", Action{Kind: Resize, Size: TargetWindowSize{Width: 1000, Height: 700}}.String())
	assert.Equal(t, "RESIZE_AND_CENTER(544x624)", Action{Kind: ResizeAndCenter, Size: TargetWindowSize{Width: 544, Height: 624}}.String())
}
