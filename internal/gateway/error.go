package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyToken         = errors.New("login response carried no token")
	ErrNullCollection     = errors.New("response carried null instead of a list")
)

// FetchError is every failure the Client can return: transport errors,
// non-2xx statuses and undecodable bodies.
type FetchError struct {
	Op         string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status from err, or 0 when the request never got a response.
func StatusCode(err error) int {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}
