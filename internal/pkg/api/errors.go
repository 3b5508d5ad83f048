package api

import "fmt"

// Error is the normalized failure shape for every backend call. Message holds
// the server-provided message when the body carried one; StatusCode is -1 for
// transport-level failures that never produced a response.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func NewError(err error, statusCode ...int) *Error {
	errObj := &Error{Err: err}
	if len(statusCode) > 0 {
		errObj.StatusCode = statusCode[0]
	}
	return errObj
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the failure happened before any HTTP response
// was received.
func (e *Error) IsTransport() bool {
	return e.StatusCode <= 0 && e.Message == ""
}
