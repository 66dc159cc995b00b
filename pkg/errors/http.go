package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be answered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError. code is used as the response status.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}
