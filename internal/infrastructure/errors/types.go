package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents different types of window geometry errors
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeUnavailable
	ErrCodeUnsupported
	ErrCodeApplyFailed
	ErrCodeCenterFailed
	ErrCodeInvalidConfig
	ErrCodePlatform
	ErrCodePermission
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeUnavailable:
		return "UNAVAILABLE"
	case ErrCodeUnsupported:
		return "UNSUPPORTED"
	case ErrCodeApplyFailed:
		return "APPLY_FAILED"
	case ErrCodeCenterFailed:
		return "CENTER_FAILED"
	case ErrCodeInvalidConfig:
		return "INVALID_CONFIG"
	case ErrCodePlatform:
		return "PLATFORM"
	case ErrCodePermission:
		return "PERMISSION"
	default:
		return "UNKNOWN"
	}
}

// GeometryError is an error raised while reading or changing window geometry.
// None of these errors are fatal: they are logged and the startup continues.
type GeometryError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *GeometryError) Error() string {
	if e == nil {
		return "geometry error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "geometry error" + contextStr
}

func (e *GeometryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *GeometryError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*GeometryError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *GeometryError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *GeometryError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *GeometryError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error is shared between goroutines.
func (e *GeometryError) WithContext(key, value string) *GeometryError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewGeometryError creates a new geometry error with the given parameters
func NewGeometryError(op string, err error, code ErrorCode) *GeometryError {
	return &GeometryError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewGeometryErrorWithContext creates a new geometry error with additional context
func NewGeometryErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *GeometryError {
	geoErr := NewGeometryError(op, err, code)
	if context != nil {
		// Clone so later mutation by the caller does not leak in
		geoErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			geoErr.Context[k] = v
		}
	}
	return geoErr
}

func hasCode(err error, code ErrorCode) bool {
	var geoErr *GeometryError
	if errors.As(err, &geoErr) {
		return geoErr.Code == code
	}
	return false
}

// IsUnavailable checks if the error reports a missing window or display
func IsUnavailable(err error) bool {
	return hasCode(err, ErrCodeUnavailable)
}

// IsUnsupported checks if the error reports a platform without window geometry
func IsUnsupported(err error) bool {
	return hasCode(err, ErrCodeUnsupported)
}

// IsApplyFailed checks if applying a new window size failed
func IsApplyFailed(err error) bool {
	return hasCode(err, ErrCodeApplyFailed)
}

// IsCenterFailed checks if centering the window failed
func IsCenterFailed(err error) bool {
	return hasCode(err, ErrCodeCenterFailed)
}

// IsInvalidConfig checks if the error is a configuration error
func IsInvalidConfig(err error) bool {
	return hasCode(err, ErrCodeInvalidConfig)
}

// IsPlatform checks if the error came from a native platform call
func IsPlatform(err error) bool {
	return hasCode(err, ErrCodePlatform)
}
