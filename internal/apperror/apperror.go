package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure so controllers can pick an HTTP status
// without inspecting message strings.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindBadRequest
	KindForbidden
	KindUnavailable
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound marks the NotFound() probe used by controllers that only care
// about the 404 case.
func (e *Error) NotFound() bool {
	return e.Kind == KindNotFound
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func NotFound(msg string) *Error    { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error    { return &Error{Kind: KindConflict, Message: msg} }
func BadRequest(msg string) *Error  { return &Error{Kind: KindBadRequest, Message: msg} }
func Forbidden(msg string) *Error   { return &Error{Kind: KindForbidden, Message: msg} }
func Unavailable(msg string) *Error { return &Error{Kind: KindUnavailable, Message: msg} }

// StatusOf maps any error to an HTTP status. Non-domain errors are treated
// as internal failures.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	return http.StatusInternalServerError
}
