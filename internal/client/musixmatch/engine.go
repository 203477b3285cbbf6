package musixmatch

//go:generate $MOCKGEN -source=engine.go -destination=mocks/engine_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/logger"
	http_transport "github.com/oshokin/musixmatch-client/internal/transport/http"
)

// Engine turns an API method and its arguments into an HTTP call and parses the reply.
//
// One engine is one session: the cookie jar collects every cookie the server sets
// and replays it on later calls. Callers sharing an engine across goroutines
// should serialize whole calls if they depend on cookie ordering.
type Engine interface {
	// SendRequest calls method with query arguments and, for write methods, a form body.
	// options, when not nil, replaces the method's registered override bundle.
	SendRequest(
		ctx context.Context,
		method Method,
		query Arguments,
		body Arguments,
		options *RequestOptions,
	) (Envelope, error)
}

// EngineImpl implements the Engine interface over net/http.
type EngineImpl struct {
	// baseURL is the default API root, always ending with a slash.
	baseURL string
	// appID is sent as app_id on every call.
	appID string
	// userToken is sent as usertoken on every call.
	userToken string
	// httpClient owns the session cookie jar.
	httpClient *http.Client
}

// Keys the engine adds to every query string.
const (
	formatKey    = "format"
	formatJSON   = "json"
	appIDKey     = "app_id"
	userTokenKey = "usertoken"
)

const formContentType = "application/x-www-form-urlencoded"

// NewEngine creates an engine from the validated configuration.
func NewEngine(cfg *config.Config) (Engine, error) {
	cookies, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewHeaderInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
			http_transport.DefaultHeaders()),
		Jar:     cookies,
		Timeout: cfg.ParsedRequestTimeout,
	}

	return &EngineImpl{
		baseURL:    ensureTrailingSlash(cfg.APIBaseURL),
		appID:      cfg.AppID,
		userToken:  cfg.AuthToken,
		httpClient: httpClient,
	}, nil
}

// SendRequest issues a single call. See the Engine interface.
func (e *EngineImpl) SendRequest(
	ctx context.Context,
	method Method,
	query Arguments,
	body Arguments,
	options *RequestOptions,
) (Envelope, error) {
	descriptor, err := Describe(method)
	if err != nil {
		return nil, err
	}

	effective := resolveOptions(descriptor, options)

	endpoint := e.baseURL + descriptor.Path
	if effective.BaseURL != "" {
		endpoint = effective.BaseURL
	}

	// Injected after the caller's pairs so they win on a key collision.
	query = query.Clone().
		Set(formatKey, formatJSON).
		Set(appIDKey, e.appID).
		Set(userTokenKey, e.userToken)

	requestURL := endpoint + query.Encode()

	var payload io.Reader = http.NoBody
	if hasBody(descriptor.Verb) {
		payload = strings.NewReader(body.EncodeBody())
	}

	request, err := http.NewRequestWithContext(ctx, descriptor.Verb, requestURL, payload)
	if err != nil {
		return nil, err
	}

	if hasBody(descriptor.Verb) {
		request.Header.Set("Content-Type", formContentType)
	}

	logger.DebugKV(ctx, "Sending API request", "method", method.String(), "verb", descriptor.Verb, "raw", effective.Raw)

	startTime := time.Now()

	response, err := e.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	text, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.DebugKV(ctx, "Received API response",
		"method", method.String(), "bytes", len(text), "duration", time.Since(startTime))

	if effective.Raw {
		return &RawEnvelope{Text: string(text)}, nil
	}

	envelope, err := parseEnvelope(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return envelope, nil
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}

	return s + "/"
}
