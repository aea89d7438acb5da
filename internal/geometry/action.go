package geometry

import "fmt"

// ActionKind tells the caller what to do with the main window
type ActionKind int

const (
	NoOp ActionKind = iota
	Resize
	ResizeAndCenter
)

// String returns a string representation of the action kind
func (k ActionKind) String() string {
	switch k {
	case Resize:
		return "RESIZE"
	case ResizeAndCenter:
		return "RESIZE_AND_CENTER"
	default:
		return "NOOP"
	}
}

// Action is the outcome of the startup geometry decision.
// Size is only meaningful when Kind is Resize or ResizeAndCenter.
type Action struct {
	Kind ActionKind       `json:"kind"`
	Size TargetWindowSize `json:"size"`
}

// NoAction is the Action that leaves the window untouched
func NoAction() Action {
	return Action{Kind: NoOp}
}

// ShouldResize reports whether the action applies a new size
func (a Action) ShouldResize() bool {
	return a.Kind == Resize || a.Kind == ResizeAndCenter
}

// ShouldCenter reports whether the window must be centered after resizing
func (a Action) ShouldCenter() bool {
	return a.Kind == ResizeAndCenter
}

func (a Action) String() string {
	if !a.ShouldResize() {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%gx%g)", a.Kind, a.Size.Width, a.Size.Height)
}
