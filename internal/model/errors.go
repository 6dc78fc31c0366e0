package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies analysis failures so callers can branch on them.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	// KindNotFound means the report or source file does not exist.
	KindNotFound
	// KindMalformedInput means the input exists but is not the expected shape.
	KindMalformedInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformedInput:
		return "malformed_input"
	default:
		return "other"
	}
}

// Sentinel errors for errors.Is checks against an *Error.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrMalformedInput = errors.New("malformed input")
)

// Error is the error value returned by every analysis operation.
// An empty result is never an Error.
type Error struct {
	Kind     ErrorKind
	Resource string
	Err      error
}

// NotFound builds a KindNotFound error for resource.
func NotFound(resource string, cause error) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Err: cause}
}

// Malformed builds a KindMalformedInput error for resource.
func Malformed(resource string, cause error) *Error {
	return &Error{Kind: KindMalformedInput, Resource: resource, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindNotFound:
		msg = fmt.Sprintf("%s not found", e.Resource)
	case KindMalformedInput:
		msg = fmt.Sprintf("error parsing %s", e.Resource)
	default:
		msg = fmt.Sprintf("error processing %s", e.Resource)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrMalformedInput:
		return e.Kind == KindMalformedInput
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or KindOther.
func KindOf(err error) ErrorKind {
	var analysisErr *Error
	if errors.As(err, &analysisErr) {
		return analysisErr.Kind
	}
	return KindOther
}
