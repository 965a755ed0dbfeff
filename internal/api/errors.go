package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches 401 responses; the session is missing or expired
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches 404 responses
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx API response
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Body)
}

// Is lets errors.Is match ErrUnauthorized and ErrNotFound by status code
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
