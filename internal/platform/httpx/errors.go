package httpx

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the domain layer. Services wrap these so handlers can
// map failures to status codes without inspecting error strings.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate entry")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

type statusError struct {
	kind error
	msg  string
}

func (e statusError) Error() string { return e.msg }

func (e statusError) Unwrap() error { return e.kind }

// NotFoundf builds an ErrNotFound with a caller-facing message.
func NotFoundf(format string, args ...any) error {
	return statusError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Validationf builds an ErrValidation with a caller-facing message.
func Validationf(format string, args ...any) error {
	return statusError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// Duplicatef builds an ErrDuplicate with a caller-facing message.
func Duplicatef(format string, args ...any) error {
	return statusError{kind: ErrDuplicate, msg: fmt.Sprintf(format, args...)}
}

// StatusOf returns the HTTP status code a domain error maps to.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps domain errors to HTTP responses. Unrecognised errors
// collapse to a generic 500 so internals never leak to the caller.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicate):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
