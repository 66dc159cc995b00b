package trello

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("trello key and token are required")
	ErrUnauthorized       = errors.New("trello rejected the credentials")
)

// APIError is returned for any non-2xx Trello response.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trello API error %d on %s: %s", e.StatusCode, e.Path, e.Body)
}

// Unwrap lets errors.Is match ErrUnauthorized for 401/403 responses.
func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return ErrUnauthorized
	}
	return nil
}
