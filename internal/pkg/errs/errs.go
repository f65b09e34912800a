package errs

import (
	"errors"
	"net/http"
	"strings"
)

// Kind sentinels. Every *Error unwraps to exactly one of these, so callers
// dispatch with errors.Is instead of type assertions on concrete error types.
var (
	ErrValidation        = errors.New("validation failed")
	ErrAuthentication    = errors.New("authentication failed")
	ErrAuthorization     = errors.New("authorization failed")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInfrastructure    = errors.New("infrastructure failure")
)

// Kind tags an Error with its failure category. The tag determines the HTTP
// status code and whether the error is operational (expected, user-facing)
// or an infrastructure fault whose message must not reach the caller.
type Kind int

const (
	// KindUnknown is the zero value and never produced by constructors.
	KindUnknown Kind = iota

	// KindValidation marks malformed or out-of-range request data.
	KindValidation

	// KindAuthentication marks missing, invalid, or expired credentials.
	KindAuthentication

	// KindAuthorization marks a valid identity lacking permission.
	KindAuthorization

	// KindNotFound marks a lookup for an object that does not exist.
	KindNotFound

	// KindInvalidTransition marks an illegal order status transition.
	KindInvalidTransition

	// KindInfrastructure marks unexpected faults (database connectivity,
	// signing failures). These are not operational.
	KindInfrastructure
)

// kindSentinels maps each kind to its sentinel for Unwrap/errors.Is dispatch.
func kindSentinels() map[Kind]error {
	return map[Kind]error{
		KindValidation:        ErrValidation,
		KindAuthentication:    ErrAuthentication,
		KindAuthorization:     ErrAuthorization,
		KindNotFound:          ErrObjectNotFound,
		KindInvalidTransition: ErrInvalidTransition,
		KindInfrastructure:    ErrInfrastructure,
	}
}

// kindStatuses maps each kind to the HTTP status code it surfaces as.
func kindStatuses() map[Kind]int {
	return map[Kind]int{
		KindValidation:        http.StatusBadRequest,
		KindAuthentication:    http.StatusUnauthorized,
		KindAuthorization:     http.StatusForbidden,
		KindNotFound:          http.StatusNotFound,
		KindInvalidTransition: http.StatusUnprocessableEntity,
		KindInfrastructure:    http.StatusInternalServerError,
	}
}

// Error is the single tagged error type for all expected failures in the
// application. It carries a user-facing message, an optional cause for
// diagnostics, and a kind that determines dispatch and HTTP mapping.
//
// Example:
//
//	err := errs.NewNotFoundError("order not found")
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // handle missing object
//	}
type Error struct {
	kind    Kind
	message string
	cause   error
}

// newError builds a tagged error. All exported constructors funnel through it.
func newError(kind Kind, message string, cause error) *Error {
	return &Error{
		kind:    kind,
		message: message,
		cause:   cause,
	}
}

// NewValidationError creates a KindValidation error with the given message.
func NewValidationError(message string) *Error {
	return newError(KindValidation, message, nil)
}

// NewValidationErrorWithCause creates a KindValidation error wrapping a cause.
func NewValidationErrorWithCause(message string, cause error) *Error {
	return newError(KindValidation, message, cause)
}

// NewAuthenticationError creates a KindAuthentication error with the given message.
func NewAuthenticationError(message string) *Error {
	return newError(KindAuthentication, message, nil)
}

// NewAuthenticationErrorWithCause creates a KindAuthentication error wrapping a cause.
func NewAuthenticationErrorWithCause(message string, cause error) *Error {
	return newError(KindAuthentication, message, cause)
}

// NewAuthorizationError creates a KindAuthorization error with the given message.
func NewAuthorizationError(message string) *Error {
	return newError(KindAuthorization, message, nil)
}

// NewNotFoundError creates a KindNotFound error with the given message.
func NewNotFoundError(message string) *Error {
	return newError(KindNotFound, message, nil)
}

// NewNotFoundErrorWithCause creates a KindNotFound error wrapping a cause.
func NewNotFoundErrorWithCause(message string, cause error) *Error {
	return newError(KindNotFound, message, cause)
}

// NewInvalidTransitionError creates a KindInvalidTransition error with the given message.
func NewInvalidTransitionError(message string) *Error {
	return newError(KindInvalidTransition, message, nil)
}

// NewInvalidTransitionErrorWithCause creates a KindInvalidTransition error wrapping a cause.
func NewInvalidTransitionErrorWithCause(message string, cause error) *Error {
	return newError(KindInvalidTransition, message, cause)
}

// NewInfrastructureError creates a KindInfrastructure error wrapping a cause.
// The message is logged internally but never surfaced to callers.
func NewInfrastructureError(message string, cause error) *Error {
	return newError(KindInfrastructure, message, cause)
}

// Kind returns the error's failure category.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the user-facing message without cause details.
func (e *Error) Message() string {
	return e.message
}

// Cause returns the wrapped diagnostic error, or nil.
func (e *Error) Cause() error {
	return e.cause
}

// HTTPStatus returns the response status code for the error's kind.
// Unknown kinds map to 500.
func (e *Error) HTTPStatus() int {
	if status, ok := kindStatuses()[e.kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Operational reports whether the error is expected and user-facing.
// Infrastructure errors are not operational: their details are logged but
// callers only see a generic message.
func (e *Error) Operational() bool {
	return e.kind != KindInfrastructure && e.kind != KindUnknown
}

// Error formats the message, appending the cause when present.
// Newlines are collapsed so messages stay single-line in logs.
func (e *Error) Error() string {
	if e.cause != nil {
		return sanitize(e.message + " (cause: " + e.cause.Error() + ")")
	}
	return sanitize(e.message)
}

// Unwrap returns the kind sentinel so errors.Is can dispatch on the tag.
func (e *Error) Unwrap() error {
	if sentinel, ok := kindSentinels()[e.kind]; ok {
		return sentinel
	}
	return nil
}

// sanitize collapses newlines into spaces to keep log lines intact.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
