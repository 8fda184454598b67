package dto

import (
	"errors"
	"net/http"

	"github.com/hostel/backend/internal/domain/shared"
)

// Error codes produced by the HTTP layer itself. Domain errors carry their
// own codes (ROOM_NOT_FOUND, BILL_ALREADY_PAID, ...).
const (
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeRateLimited    = "RATE_LIMIT_EXCEEDED"
	ErrCodeBodyTooLarge   = "REQUEST_TOO_LARGE"
	ErrCodeTokenExpired   = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid   = "INVALID_TOKEN"
	ErrCodeTokenRevoked   = "TOKEN_REVOKED"
	ErrCodeServiceUnready = "SERVICE_UNAVAILABLE"
)

var kindStatus = map[shared.ErrorKind]int{
	shared.KindValidation:   http.StatusBadRequest,
	shared.KindUnauthorized: http.StatusUnauthorized,
	shared.KindForbidden:    http.StatusForbidden,
	shared.KindNotFound:     http.StatusNotFound,
	shared.KindConflict:     http.StatusConflict,
}

// StatusForKind maps a domain error kind to its HTTP status.
// Unknown kinds are 500.
func StatusForKind(kind shared.ErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorStatus returns the HTTP status, code and client-safe message for err.
// ok is false for errors that are not domain errors; their message must not
// reach the client.
func ErrorStatus(err error) (status int, code, message string, ok bool) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return StatusForKind(domainErr.Kind), domainErr.Code, domainErr.Message, true
	}
	return http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", false
}
