package authcore

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the surrounding transport can map it to an
// HTTP status without inspecting messages. The status is carried on the
// error value, not computed by the transport layer.
type Kind uint8

const (
	// KindBadRequest marks a request missing required input.
	KindBadRequest Kind = iota + 1
	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound
	// KindUnauthorized marks an authentication, token, or session failure.
	KindUnauthorized
	// KindForbidden is reserved for ownership checks in calling code; no
	// Engine operation produces it.
	KindForbidden
	// KindRateLimited marks a throttled login attempt.
	KindRateLimited
	// KindUnavailable marks a transient infrastructure failure (cache or
	// user store unreachable). Callers map it to a 5xx-class response.
	KindUnavailable
)

// HTTPStatus returns the wire status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by Engine operations. Two Errors
// match under [errors.Is] when their kinds are equal, so callers can test
// against the exported sentinels regardless of the per-call message.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// NewError creates a typed failure with the given kind and message. It is
// exported for callers that build their own transport adapters around the
// Engine.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying infrastructure error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports kind equality against another *Error target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus returns the wire status carried by the error.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

var (
	// ErrBadRequest matches any KindBadRequest failure.
	ErrBadRequest = &Error{Kind: KindBadRequest, Message: "bad request"}
	// ErrNotFound matches any KindNotFound failure.
	ErrNotFound = &Error{Kind: KindNotFound, Message: "not found"}
	// ErrUnauthorized matches any KindUnauthorized failure.
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	// ErrForbidden matches any KindForbidden failure.
	ErrForbidden = &Error{Kind: KindForbidden, Message: "forbidden"}
	// ErrLoginRateLimited is returned when the login throttle budget for an
	// email or client IP is exhausted.
	ErrLoginRateLimited = &Error{Kind: KindRateLimited, Message: "login rate limited"}
	// ErrStoreUnavailable matches any KindUnavailable failure.
	ErrStoreUnavailable = &Error{Kind: KindUnavailable, Message: "backend store unavailable"}
	// ErrSessionCreationFailed is returned when login issued a token but the
	// session write did not complete; the whole login fails and the token is
	// discarded.
	ErrSessionCreationFailed = &Error{Kind: KindUnavailable, Message: "session creation failed"}
	// ErrSessionInvalidationFailed is returned when logout could not delete
	// the session record.
	ErrSessionInvalidationFailed = &Error{Kind: KindUnavailable, Message: "session invalidation failed"}

	// ErrEngineNotReady is returned when an Engine method is called on a nil
	// or incompletely built receiver.
	ErrEngineNotReady = errors.New("engine not initialized")
)

// StatusOf maps any error to an HTTP status. Typed failures carry their own
// status; nil maps to 200; everything else is an internal error.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func badRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func unavailable(message string, cause error) *Error {
	return &Error{Kind: KindUnavailable, Message: message, cause: cause}
}
