package usecase

import (
	"errors"
	"fmt"
)

// Error definitions for satisfaction usecase
var (
	ErrRatingNotProvided = errors.New("rating not provided")
	ErrClassification    = errors.New("classification failed")
)

// ErrorKind tags a usecase error so the transport layer can pick a status
type ErrorKind int

const (
	// KindValidation marks bad client input
	KindValidation ErrorKind = iota + 1
	// KindInternal marks everything else
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the only error type returned across the usecase boundary
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(err error, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...), Err: err}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, treating foreign errors as internal
func KindOf(err error) ErrorKind {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Kind
	}
	return KindInternal
}
