package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an operation error for propagation decisions and HTTP
// status mapping.
type ErrorKind string

const (
	ErrorKindNotFound   ErrorKind = "not-found"
	ErrorKindForbidden  ErrorKind = "forbidden"
	ErrorKindConflict   ErrorKind = "conflict"
	ErrorKindBadRequest ErrorKind = "bad-request"
	ErrorKindInternal   ErrorKind = "internal"
)

// genericUserMessage is returned to clients when an error carries no safe
// message of its own.
const genericUserMessage = "operation failed"

// OperationError is a tagged error carrying a kind, an optional message that
// is safe to show to users, and the underlying cause.
type OperationError struct {
	Kind        ErrorKind
	UserMessage string
	Cause       error
}

func (e *OperationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.UserMessage, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.UserMessage)
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// NewError builds an OperationError with the given kind and safe message.
func NewError(kind ErrorKind, userMessage string, cause error) error {
	return &OperationError{Kind: kind, UserMessage: userMessage, Cause: cause}
}

func NewNotFoundError(userMessage string, cause error) error {
	return NewError(ErrorKindNotFound, userMessage, cause)
}

func NewForbiddenError(userMessage string, cause error) error {
	return NewError(ErrorKindForbidden, userMessage, cause)
}

func NewConflictError(userMessage string, cause error) error {
	return NewError(ErrorKindConflict, userMessage, cause)
}

func NewBadRequestError(userMessage string, cause error) error {
	return NewError(ErrorKindBadRequest, userMessage, cause)
}

func NewInternalError(userMessage string, cause error) error {
	return NewError(ErrorKindInternal, userMessage, cause)
}

// KindOf returns the kind of err, or ErrorKindInternal when err is not an
// OperationError.
func KindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}

	return ErrorKindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// UserMessage extracts the safe message from err. It falls back to a generic
// message so internals never leak to clients.
func UserMessage(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.UserMessage != "" {
		return opErr.UserMessage
	}

	return genericUserMessage
}
