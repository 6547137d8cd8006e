package apperr

import (
	"errors"
	"net/http"
)

// Stable machine-readable codes exposed in every error response body.
const (
	CodeValidation         = "validation_error"
	CodeAuth               = "auth_error"
	CodeNotFound           = "not_found"
	CodeDuplicateSignature = "duplicate_signature"
	CodeUpstream           = "upstream_failure"
	CodeInternal           = "internal_error"
)

// Error carries the taxonomy entry alongside the human-readable message.
// Handlers translate it to an HTTP response exactly once, at the boundary.
type Error struct {
	Code    string
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches two taxonomy errors by code, so errors.Is works against the
// exported sentinels regardless of message.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

var (
	ErrInvalidCredentials = &Error{Code: CodeAuth, Status: http.StatusUnauthorized, Message: "Credenciais inválidas"}
	ErrDuplicateSignature = &Error{Code: CodeDuplicateSignature, Status: http.StatusConflict, Message: "Documento já foi assinado por este usuário"}
)

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

// Store wraps a persistence failure. The store's message is surfaced to the
// client with a 400, matching the upstream data service's own error contract.
func Store(cause error) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: cause.Error(), cause: cause}
}

func Auth(message string) *Error {
	return &Error{Code: CodeAuth, Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

func Upstream(message string, cause error) *Error {
	return &Error{Code: CodeUpstream, Status: http.StatusBadGateway, Message: message, cause: cause}
}

// From normalizes any error into a taxonomy entry. Unknown errors become
// opaque 500s so internal details never leak into a response body.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: "Erro interno do servidor", cause: err}
}
