package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError is a non-2xx answer from the API.
type RemoteError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: server returned %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Detail)
}

func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
