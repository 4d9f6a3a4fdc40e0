package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an error for propagation policy and HTTP mapping.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeUnavailable    Type = "UNAVAILABLE"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Code is a registered error definition. Values are created through
// Registry.Register and treated as immutable afterwards.
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry namespaces error codes for one domain package.
type Registry struct {
	prefix string
}

// NewRegistry creates a registry whose codes are prefixed with the given
// namespace, e.g. NewRegistry("APPLICATION").
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines a new error code under the registry's namespace.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		Code:       r.prefix + "." + code,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New creates a fresh *Error for a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.Code,
		Type:       c.Type,
		HTTPStatus: c.HTTPStatus,
		Message:    c.Message,
	}
}

// Error is the error value carried across layers. Details are safe to
// surface to API callers; the wrapped cause is not.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair for the API response and returns
// the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error without exposing it to callers.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the caller-visible body for this error.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap turns an arbitrary error into an *Error of the given type,
// preserving the original as the cause. Already-wrapped errors are
// returned unchanged so the original classification wins.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	var ex *Error
	if errors.As(err, &ex) {
		return ex
	}
	return &Error{
		Code:       "GENERIC." + string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: statusFor(t),
		cause:      err,
	}
}

// IsType reports whether err is (or wraps) an *Error of the given type.
func IsType(err error, t Type) bool {
	var ex *Error
	return errors.As(err, &ex) && ex.Type == t
}

func statusFor(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeUnavailable:
		return http.StatusServiceUnavailable
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
