package geometry

import "math"

// DefaultTolerance is how far, in logical units, the observed size may drift
// from the configured default and still count as the default
const DefaultTolerance = 1.0

// FirstRunDetector decides whether the window is showing without any
// previously persisted geometry
type FirstRunDetector interface {
	IsFirstRun(observed ObservedWindowSize, spec ConfiguredWindowSpec) bool
}

// SizeMatch treats a window whose size still equals the configured default
// as a first run. A restored session whose saved size happens to equal the
// default is indistinguishable from a first run.
type SizeMatch struct {
	Tolerance float64 // zero means DefaultTolerance
}

// IsFirstRun implements FirstRunDetector
func (m SizeMatch) IsFirstRun(observed ObservedWindowSize, spec ConfiguredWindowSpec) bool {
	tolerance := m.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return math.Abs(observed.Width-spec.DefaultWidth) < tolerance &&
		math.Abs(observed.Height-spec.DefaultHeight) < tolerance
}

// RestoreReport uses an explicit answer from the window state provider when
// it has one, and falls back to SizeMatch otherwise.
type RestoreReport struct {
	Reported bool // the provider answered
	Restored bool // saved geometry was found and applied
}

// IsFirstRun implements FirstRunDetector
func (r RestoreReport) IsFirstRun(observed ObservedWindowSize, spec ConfiguredWindowSpec) bool {
	if r.Reported {
		return !r.Restored
	}
	return SizeMatch{}.IsFirstRun(observed, spec)
}
