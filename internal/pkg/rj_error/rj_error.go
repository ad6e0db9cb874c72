package rj_error

import (
	"errors"
	"fmt"
)

// ErrorCode doubles as the HTTP status returned for the error.
type ErrorCode int

const (
	BadRequestCode      ErrorCode = 400
	UnauthenticatedCode ErrorCode = 401
	DataNotExistsCode   ErrorCode = 404
	TooManyRequestsCode ErrorCode = 429
	InternalErrorCode   ErrorCode = 500
)

var ErrStrMap = map[ErrorCode]string{
	BadRequestCode:      "Invalid request",
	UnauthenticatedCode: "Authentication credentials were not provided",
	DataNotExistsCode:   "Not found",
	TooManyRequestsCode: "Too many requests",
	InternalErrorCode:   "Internal server error",
}

type AnaError struct {
	Code    ErrorCode
	Message string
	Details map[string]string
	Err     error
}

func (e *AnaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *AnaError) Unwrap() error {
	return e.Err
}

// Is matches any AnaError carrying the same code and message.
func (e *AnaError) Is(target error) bool {
	t, ok := target.(*AnaError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code ErrorCode, msg string) *AnaError {
	if msg == "" {
		msg = ErrStrMap[code]
	}
	return &AnaError{Code: code, Message: msg}
}

func Wrap(code ErrorCode, msg string, err error) *AnaError {
	ae := New(code, msg)
	ae.Err = err
	return ae
}

// WithDetails returns a copy carrying field level messages.
func (e *AnaError) WithDetails(details map[string]string) *AnaError {
	cp := *e
	cp.Details = details
	return &cp
}

func As(err error) (*AnaError, bool) {
	var ae *AnaError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
