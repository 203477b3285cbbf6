package http

const (
	// DefaultUserAgent mimics the Musixmatch desktop client.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Musixmatch/3.22.1 Chrome/108.0.5359.215 Electron/22.3.5 Safari/537.36" //nolint: lll

	// RequestIDHeader carries the correlation ID of a request.
	RequestIDHeader = "X-Request-Id"
)

// SecretQueryKeys lists query parameters never written to logs.
//
//nolint:gochecknoglobals // Immutable list used as a constant.
var SecretQueryKeys = []string{"usertoken", "signature"}
