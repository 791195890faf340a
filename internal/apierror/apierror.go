// Package apierror provides standardized error types and response structures
// for the API. All errors returned to clients go through this package to
// ensure consistency and to prevent leaking internal details (stack traces,
// DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure so handlers can map it to an HTTP status
// without inspecting error strings.
type Kind int

const (
	// KindValidation: malformed or missing input, user-correctable.
	KindValidation Kind = iota
	// KindReferential: a referenced entity (client, article, seller) does not exist.
	KindReferential
	// KindState: the operation is not allowed in the entity's current lifecycle state.
	KindState
	// KindConflict: a write race was lost (e.g. correlative number collision).
	KindConflict
	// KindTransient: storage or an external collaborator is unavailable.
	KindTransient
	// KindNotFound: the addressed resource itself does not exist.
	KindNotFound
)

// Error is the canonical domain error. Detail is safe to show to clients;
// Fields carries per-field validation messages when Kind == KindValidation.
type Error struct {
	Kind   Kind
	Detail string
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the error kind to the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindReferential, KindState, KindConflict:
		return http.StatusConflict
	case KindTransient:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(detail string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Detail: detail, Fields: fields}
}

func Referential(detail string) *Error {
	return &Error{Kind: KindReferential, Detail: detail}
}

func State(detail string) *Error {
	return &Error{Kind: KindState, Detail: detail}
}

func Conflict(detail string, cause error) *Error {
	return &Error{Kind: KindConflict, Detail: detail, cause: cause}
}

func Transient(detail string, cause error) *Error {
	return &Error{Kind: KindTransient, Detail: detail, cause: cause}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// ─── Response envelopes ──────────────────────────────────────────────────────

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
