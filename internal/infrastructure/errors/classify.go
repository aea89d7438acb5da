package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoDisplay is returned when no display can be resolved for the window
var ErrNoDisplay = errors.New("no active display")

// ErrNotSupported is returned on platforms without desktop window geometry
var ErrNotSupported = errors.New("window geometry not supported on this platform")

// ClassifyError maps an arbitrary error to a geometry error code
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	var geoErr *GeometryError
	if errors.As(err, &geoErr) {
		return geoErr.Code
	}

	switch {
	case errors.Is(err, ErrNoDisplay):
		return ErrCodeUnavailable
	case errors.Is(err, ErrNotSupported):
		return ErrCodeUnsupported
	case errors.Is(err, os.ErrPermission):
		return ErrCodePermission
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "not supported"), strings.Contains(errStr, "unsupported"):
		return ErrCodeUnsupported
	case strings.Contains(errStr, "no screen"), strings.Contains(errStr, "no display"), strings.Contains(errStr, "no monitor"):
		return ErrCodeUnavailable
	case strings.Contains(errStr, "access denied"), strings.Contains(errStr, "permission denied"):
		return ErrCodePermission
	default:
		return ErrCodeUnknown
	}
}

// Wrap wraps err as a geometry error, classifying it unless it already is one
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return NewGeometryError(op, err, ClassifyError(err))
}

// WrapWithContext is Wrap with additional context
func WrapWithContext(op string, err error, contextMap map[string]string) error {
	if err == nil {
		return nil
	}
	return NewGeometryErrorWithContext(op, err, ClassifyError(err), contextMap)
}

// FromPanic turns a value recovered from a panic in platform code into an error
func FromPanic(op string, recovered any) error {
	return NewGeometryErrorWithContext(op,
		fmt.Errorf("platform call panicked: %v", recovered),
		ErrCodePlatform,
		map[string]string{"recovered": "true"})
}

// HandleUnavailable creates a standardized error for a missing window or display
func HandleUnavailable(op string, resource string) error {
	return NewGeometryErrorWithContext(op, ErrNoDisplay, ErrCodeUnavailable, map[string]string{
		"resource": resource,
	})
}

// HandleUnsupported creates a standardized error for a platform without window geometry
func HandleUnsupported(op string, platform string) error {
	return NewGeometryErrorWithContext(op, ErrNotSupported, ErrCodeUnsupported, map[string]string{
		"platform": platform,
	})
}

// HandleInvalidConfig creates a standardized configuration error
func HandleInvalidConfig(op string, field string, reason error) error {
	return NewGeometryErrorWithContext(op, reason, ErrCodeInvalidConfig, map[string]string{
		"field": field,
	})
}

// IsPermission checks if a platform call was refused
func IsPermission(err error) bool {
	return hasCode(err, ErrCodePermission)
}
