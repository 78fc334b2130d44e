package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{http.StatusNotFound, errors.New("not found")}
	Duplicate           = HttpError{http.StatusConflict, errors.New("duplicate")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("internal server error")}
	Conflict            = HttpError{http.StatusConflict, errors.New("conflict")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// ValidationError carries one message per rejected request field, keyed by the
// field's json name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() ValidationError {
	return ValidationError{Fields: map[string]string{}}
}

func (v ValidationError) Add(field, message string) {
	v.Fields[field] = message
}

func (v ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

func (v ValidationError) Error() string {
	return "validation failed"
}

func (v ValidationError) Unwrap() error {
	return BadRequest
}
