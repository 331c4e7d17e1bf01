// Package apperrors defines the error taxonomy shared by the booking
// workflow and the recommendation engine.
package apperrors

import "fmt"

type Kind string

const (
	KindBadRequest   Kind = "BadRequest"
	KindNotFound     Kind = "NotFound"
	KindForbidden    Kind = "Forbidden"
	KindInvalidState Kind = "InvalidState"
	KindServerError  Kind = "ServerError"
)

// Error carries a taxonomy kind and a stable, human-readable message.
// Internal causes are kept for server-side logs and never echoed to callers.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func ServerError(message string, cause error) *Error {
	return &Error{Kind: KindServerError, Message: message, cause: cause}
}

// HTTPStatus maps a kind to the status code the handlers respond with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return 400
	case KindNotFound:
		return 404
	case KindForbidden:
		return 403
	case KindInvalidState:
		return 409
	default:
		return 500
	}
}
