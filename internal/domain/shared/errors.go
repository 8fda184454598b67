package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error so outer layers can translate it
// without inspecting messages.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindConflict     ErrorKind = "CONFLICT"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"-"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError of the same kind.
// A target without a code matches every error of its kind, so
// errors.Is(err, ErrNotFound) holds for any not-found error.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == string(t.Kind) || t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Sentinels for errors.Is matching by kind.
var (
	ErrValidation   = NewDomainError(KindValidation, string(KindValidation), "Invalid input provided")
	ErrNotFound     = NewDomainError(KindNotFound, string(KindNotFound), "Resource not found")
	ErrConflict     = NewDomainError(KindConflict, string(KindConflict), "Operation conflicts with current state")
	ErrForbidden    = NewDomainError(KindForbidden, string(KindForbidden), "Access to this resource is forbidden")
	ErrUnauthorized = NewDomainError(KindUnauthorized, string(KindUnauthorized), "Authentication required")
)

// NewValidationError reports bad input shape or values.
func NewValidationError(code, format string, args ...any) *DomainError {
	return NewDomainError(KindValidation, code, fmt.Sprintf(format, args...))
}

// NewNotFoundError reports a referenced entity that does not exist.
func NewNotFoundError(entity string) *DomainError {
	return NewDomainError(KindNotFound, entity+"_NOT_FOUND", entity+" not found")
}

// NewConflictError reports an invalid state transition.
func NewConflictError(code, format string, args ...any) *DomainError {
	return NewDomainError(KindConflict, code, fmt.Sprintf(format, args...))
}

// NewForbiddenError reports an authorization failure.
func NewForbiddenError(format string, args ...any) *DomainError {
	return NewDomainError(KindForbidden, string(KindForbidden), fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the first DomainError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
