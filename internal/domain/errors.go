package domain

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports an input field that violates its documented
// range. It is raised before any sizing arithmetic runs.
type InvalidParameterError struct {
	Field      string // JSON name of the offending field
	Constraint string // violated rule, e.g. "must be greater than 0"
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Constraint)
}

// DomainError reports a computation whose result would be mathematically
// undefined for otherwise admissible inputs, such as a division by zero. It
// is raised at the step that failed.
type DomainError struct {
	Op     string // sizing step that failed, e.g. "feeder volumetric flow"
	Reason string // what made it undefined, with the values involved
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// DomainErrf builds a DomainError for op with a formatted reason.
func DomainErrf(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidParameter reports whether err or anything it wraps is an
// *InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var e *InvalidParameterError
	return errors.As(err, &e)
}

// IsDomainError reports whether err or anything it wraps is a *DomainError.
func IsDomainError(err error) bool {
	var e *DomainError
	return errors.As(err, &e)
}
