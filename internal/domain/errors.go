package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a tool or property id is absent
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "tool"
	}
	return fmt.Sprintf("%s %q not found", kind, e.ID)
}

func IsNotFoundError(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ValidationError blocks an action before any I/O happens
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, format string, args ...any) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// IOError wraps a disk read, write, mkdir or remove failure
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e IOError) Unwrap() error {
	return e.Err
}

func IsIOError(err error) bool {
	var ioe IOError
	return errors.As(err, &ioe)
}
