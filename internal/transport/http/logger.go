package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/logger"
	"github.com/oshokin/musixmatch-client/internal/utils"
)

// LogTransport is a custom http.RoundTripper that logs HTTP requests and responses at debug level.
// Query values listed in SecretQueryKeys are redacted from every dump.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of logged request/response data.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// NewLogTransport creates and returns a new instance of LogTransport.
// If maxLogLength is less than or equal to 0, it defaults to config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength <= 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := logger.WithKV(req.Context(), "request_id", req.Header.Get(RequestIDHeader))
	redactedURL := utils.RedactURL(req.URL, SecretQueryKeys...)

	requestDump := t.dumpRequest(req)

	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, redactedURL, err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp)

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, redactedURL, resp.StatusCode, duration, requestDump, responseDump)

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	// Dump a copy whose URL has secrets removed; DumpRequest restores the body afterwards.
	redacted := req.Clone(req.Context())
	redacted.Body = req.Body

	redactedURL := *req.URL
	redactedURL.RawQuery = utils.RedactQuery(req.URL.RawQuery, SecretQueryKeys...)
	redacted.URL = &redactedURL

	dump, err := httputil.DumpRequest(redacted, true)

	// DumpRequest swaps in a fresh reader on the copy; hand it back to the real request.
	req.Body = redacted.Body

	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}
