package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{"nil error", nil, ErrCodeUnknown},
		{"no display sentinel", ErrNoDisplay, ErrCodeUnavailable},
		{"wrapped no display", fmt.Errorf("screens: %w", ErrNoDisplay), ErrCodeUnavailable},
		{"not supported sentinel", ErrNotSupported, ErrCodeUnsupported},
		{"permission", fmt.Errorf("probe: %w", os.ErrPermission), ErrCodePermission},
		{"geometry error keeps its code", NewGeometryError("op", errors.New("x"), ErrCodeCenterFailed), ErrCodeCenterFailed},
		{"string no screen", errors.New("No screen found"), ErrCodeUnavailable},
		{"string unsupported", errors.New("operation unsupported by compositor"), ErrCodeUnsupported},
		{"string access denied", errors.New("Access denied"), ErrCodePermission},
		{"anything else", errors.New("boom"), ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.expected {
				t.Errorf("ClassifyError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap("op", nil) != nil {
		t.Error("Expected Wrap(nil) to return nil")
	}

	err := Wrap("active_display", ErrNoDisplay)
	if !IsUnavailable(err) {
		t.Errorf("Expected wrapped error to be unavailable, got %v", err)
	}
	if !errors.Is(err, ErrNoDisplay) {
		t.Error("Expected wrapped error to match ErrNoDisplay")
	}
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext("observed_size", errors.New("boom"), map[string]string{"source": "wails"})

	var geoErr *GeometryError
	if !errors.As(err, &geoErr) {
		t.Fatalf("Expected *GeometryError, got %T", err)
	}
	if geoErr.Context["source"] != "wails" {
		t.Errorf("Expected source context, got %v", geoErr.Context)
	}
}

func TestFromPanic(t *testing.T) {
	err := FromPanic("center", "runtime not ready")

	if !IsPlatform(err) {
		t.Errorf("Expected platform error, got %v", err)
	}
	if !strings.Contains(err.Error(), "runtime not ready") {
		t.Errorf("Expected panic value in message, got %v", err)
	}
}

func TestErrorConstructors(t *testing.T) {
	if err := HandleUnavailable("active_display", "screen"); !IsUnavailable(err) {
		t.Errorf("HandleUnavailable() = %v, want unavailable", err)
	}
	if err := HandleUnsupported("capabilities", "android"); !IsUnsupported(err) || !strings.Contains(err.Error(), "platform=android") {
		t.Errorf("HandleUnsupported() = %v, want unsupported with platform", err)
	}
	if err := HandleInvalidConfig("load", "window.width", errors.New("must be positive")); !IsInvalidConfig(err) {
		t.Errorf("HandleInvalidConfig() = %v, want invalid config", err)
	}
}
