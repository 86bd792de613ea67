package dto

import (
	"net/http"
	"strings"
)

// Interface-level error codes
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Validation codes not listed here fall through the INVALID_ prefix rule.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeConflict:   http.StatusConflict,
	"ALREADY_EXISTS":  http.StatusConflict,
	"ALREADY_DECIDED": http.StatusConflict,

	"INVALID_STATE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Unlisted
// INVALID_* validation codes are client errors; anything unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
