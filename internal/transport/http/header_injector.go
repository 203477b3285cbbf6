package http

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderInjector is a custom http.RoundTripper that adds default headers to requests.
// Headers already present on a request are left untouched.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// defaults holds the headers to add when missing.
	defaults http.Header
}

// NewHeaderInjector creates a HeaderInjector.
// Every request also gets a fresh X-Request-Id unless it already carries one.
func NewHeaderInjector(next http.RoundTripper, defaults http.Header) http.RoundTripper {
	return &HeaderInjector{
		next:     next,
		defaults: defaults.Clone(),
	}
}

// DefaultHeaders returns the headers the desktop client sends.
func DefaultHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("User-Agent", DefaultUserAgent)
	headers.Set("Accept", "application/json")

	return headers
}

// RoundTrip implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())

	for name, values := range t.defaults {
		if req.Header.Get(name) != "" || len(values) == 0 {
			continue
		}

		req.Header[name] = append([]string(nil), values...)
	}

	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	return t.next.RoundTrip(req)
}
