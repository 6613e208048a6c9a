package axiar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Content types used by the two gateway endpoints.
const (
	contentTypeXML  = "text/xml; charset=utf-8"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// HTTPDoer is the part of http.Client the gateway client depends on.
// Implementations must be safe for concurrent use.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// post sends one synchronous POST and returns the raw response body.
// A non-2xx status comes back as *HTTPError. No retries, no caching;
// the request either completes or fails.
func post(ctx context.Context, doer HTTPDoer, url, contentType string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("axiar: create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("axiar: send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("axiar: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
			Headers:    resp.Header,
		}
	}
	return respBody, nil
}
