package axiar

import (
	"fmt"
	"net/http"
)

// ValidationError is returned when a required parameter is missing or
// malformed. It is raised before any network activity, so the caller can
// correct the input and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("axiar: invalid %s: %s", e.Field, e.Reason)
}

// HTTPError is returned when the gateway responds with a non-2xx HTTP status.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("axiar: http error %d (%s): %s", e.StatusCode, e.Status, e.Body)
}

// ParseError is returned when a response body is not XML or carries none
// of the recognized root elements. It is never folded into a declined
// result.
type ParseError struct {
	Reason string
	Body   []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("axiar: unparseable response: %s", e.Reason)
}
