package curveplot

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every [ValidationError].
var ErrValidation = errors.New("invalid input")

// ValidationError reports a request parameter that is malformed or out of
// its domain. It is returned before any curve is evaluated.
type ValidationError struct {
	// Field names the offending parameter, such as "xmin" or "points[2].y".
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
