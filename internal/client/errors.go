package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAPI is the sentinel wrapped by every non-2xx response from the service.
var ErrAPI = errors.New("tajmahal api error")

// APIError carries the HTTP status and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return fmt.Sprintf("%s: status=%d", ErrAPI, e.StatusCode)
	}
	return fmt.Sprintf("%s: status=%d: %s", ErrAPI, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}
