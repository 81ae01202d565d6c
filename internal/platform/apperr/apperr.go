package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error independent of the transport.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindStore          Kind = "store"
)

type AppError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
	Err     error  `json:"-"`
	status  int
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *AppError) StatusCode() int {
	if e == nil || e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

func Validation(code, msg string, err error) *AppError {
	return newAppError(KindValidation, code, msg, err, http.StatusBadRequest)
}

func NotFound(code, msg string, err error) *AppError {
	return newAppError(KindNotFound, code, msg, err, http.StatusNotFound)
}

func Conflict(code, msg string, err error) *AppError {
	return newAppError(KindConflict, code, msg, err, http.StatusConflict)
}

func Unauthorized(code, msg string, err error) *AppError {
	return newAppError(KindAuthentication, code, msg, err, http.StatusUnauthorized)
}

func Forbidden(code, msg string, err error) *AppError {
	return newAppError(KindAuthorization, code, msg, err, http.StatusForbidden)
}

// Store is a persistence failure. The message never carries the cause.
func Store(err error) *AppError {
	return newAppError(KindStore, "internal_error", http.StatusText(http.StatusInternalServerError), err, http.StatusInternalServerError)
}

func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Store(err)
}

func newAppError(kind Kind, code, msg string, err error, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Kind:    kind,
		Err:     err,
		status:  status,
	}
}
