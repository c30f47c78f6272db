package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error carrying the HTTP status the legacy API
// contract assigns to it.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors. The non-standard statuses (402, 406, 408, 410, 412) are
// part of the wire contract the coordination bot depends on and must not
// change, message text included.
var (
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "Auth failed")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusBadRequest, "internal error")
	ErrDateNotInFuture    = New("DATE_NOT_IN_FUTURE", http.StatusPaymentRequired, "NewDate is not in the future.")
	ErrPendingRequest     = New("PENDING_REQUEST_EXISTS", http.StatusNotAcceptable, "A request is currently opened for the same class.")
	ErrInvalidDateFormat  = New("INVALID_DATE_FORMAT", http.StatusRequestTimeout, "Unvalid date format.")
	ErrCourseRequestTaken = New("COURSE_REQUEST_TAKEN", http.StatusGone, "Course request was taken")
	ErrClassNotFound      = New("CLASS_NOT_FOUND", http.StatusPreconditionFailed, "There is no class with that ID.")
	ErrCourseReqNotFound  = New("COURSE_REQUEST_NOT_FOUND", http.StatusPreconditionFailed, "There is no course request with that ID.")
)

// FromError normalises any error into an *Error. Unexpected lower-level
// failures surface as a 400 carrying the underlying message, matching the
// behaviour of the system this one replaces.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, err.Error())
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
