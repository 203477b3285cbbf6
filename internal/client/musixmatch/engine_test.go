package musixmatch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/musixmatch-client/internal/config"
)

const successEnvelope = `{"message":{"header":{"status_code":200,"execute_time":0.0042},"body":{"user_token":"abc"}}}`

// capturedRequest is what the test server saw for a single call.
type capturedRequest struct {
	method      string
	path        string
	rawQuery    string
	query       url.Values
	body        string
	contentType string
	length      int64
	cookies     []*http.Cookie
}

// recordingServer records every request and answers with a fixed reply.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newRecordingServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		rs.mu.Lock()
		rs.requests = append(rs.requests, capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			rawQuery:    r.URL.RawQuery,
			query:       r.URL.Query(),
			body:        string(body),
			contentType: r.Header.Get("Content-Type"),
			length:      r.ContentLength,
			cookies:     r.Cookies(),
		})
		rs.mu.Unlock()

		handler(w, r)
	}))

	t.Cleanup(rs.Close)

	return rs
}

func (rs *recordingServer) last(t *testing.T) capturedRequest {
	t.Helper()

	rs.mu.Lock()
	defer rs.mu.Unlock()

	require.NotEmpty(t, rs.requests)

	return rs.requests[len(rs.requests)-1]
}

func reply(status int, text string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, text)
	}
}

func newTestEngine(t *testing.T, baseURL string) Engine {
	t.Helper()

	engine, err := NewEngine(&config.Config{
		AuthToken:  "secret-token",
		AppID:      "test-app",
		APIBaseURL: baseURL,
	})
	require.NoError(t, err)

	return engine
}

// TestRegistry_IsTotal tests that every method has a descriptor.
func TestRegistry_IsTotal(t *testing.T) {
	t.Parallel()

	methods := Methods()
	require.Len(t, methods, int(methodCount))

	for _, m := range methods {
		descriptor, err := Describe(m)
		require.NoError(t, err)
		assert.NotEmpty(t, descriptor.Path, m)
		assert.Contains(t, []string{http.MethodGet, http.MethodPost}, descriptor.Verb, m)
	}
}

// TestRegistry_KnownEntries tests a few fixed descriptors.
func TestRegistry_KnownEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method  Method
		path    string
		verb    string
		options *RequestOptions
	}{
		{MethodTokenGet, "token.get", http.MethodGet, nil},
		{MethodTrackSearch, "track.search", http.MethodGet, nil},
		{MethodTrackSubtitlePost, "track.subtitle.post", http.MethodPost, nil},
		{MethodRequestJWTToken, "jwt.get", http.MethodGet, nil},
		{MethodMissionsGet, "graphql", http.MethodPost, &RequestOptions{BaseURL: MissionsEndpoint, Raw: true}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			descriptor, err := Describe(tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.path, descriptor.Path)
			assert.Equal(t, tt.verb, descriptor.Verb)
			assert.Equal(t, tt.options, descriptor.Options)
			assert.Equal(t, tt.path, tt.method.String())
		})
	}
}

// TestDescribe_UnknownMethod tests that values outside the enumeration are rejected.
func TestDescribe_UnknownMethod(t *testing.T) {
	t.Parallel()

	for _, m := range []Method{-1, methodCount, Method(99)} {
		_, err := Describe(m)
		require.ErrorIs(t, err, ErrUnknownMethod)
		assert.False(t, m.IsValid())
	}

	assert.Equal(t, "Method(99)", Method(99).String())
}

// TestValidateRegistry tests that gaps in the table are detected.
func TestValidateRegistry(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateRegistry(registry[:]))

	withGap := registry
	withGap[MethodTrackGet] = EndpointDescriptor{}
	require.ErrorIs(t, validateRegistry(withGap[:]), ErrIncompleteRegistry)

	badVerb := registry
	badVerb[MethodTrackGet].Verb = http.MethodDelete
	require.ErrorIs(t, validateRegistry(badVerb[:]), ErrIncompleteRegistry)

	require.ErrorIs(t, validateRegistry(registry[:methodCount-1]), ErrIncompleteRegistry)
}

// TestSendRequest_BuildsURL tests path, encoding and injected parameters.
func TestSendRequest_BuildsURL(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), MethodTrackSearch,
		NewArguments("a", "", "b", "x y"), nil, nil)
	require.NoError(t, err)

	got := server.last(t)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/ws/1.1/track.search", got.path)
	assert.Equal(t, "b=x%20y&format=json&app_id=test-app&usertoken=secret-token", got.rawQuery)
	assert.NotContains(t, got.rawQuery, "a=")
	assert.Empty(t, got.body)
}

// TestSendRequest_InjectedParametersWin tests that caller values cannot override the session keys.
func TestSendRequest_InjectedParametersWin(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	query := NewArguments("format", "xml", "usertoken", "other", "q", "a+b&c")

	_, err := engine.SendRequest(context.Background(), MethodTrackSearch, query, nil, nil)
	require.NoError(t, err)

	got := server.last(t)
	assert.Equal(t, "json", got.query.Get("format"))
	assert.Equal(t, "secret-token", got.query.Get("usertoken"))
	assert.Equal(t, "test-app", got.query.Get("app_id"))
	assert.Equal(t, "a+b&c", got.query.Get("q"))

	value, _ := query.Get("format")
	assert.Equal(t, "xml", value, "caller arguments are not modified")
}

// TestSendRequest_EmptyTokenIsOmitted tests that an unset token is not sent.
func TestSendRequest_EmptyTokenIsOmitted(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))

	engine, err := NewEngine(&config.Config{AppID: "test-app", APIBaseURL: server.URL + "/ws/1.1"})
	require.NoError(t, err)

	_, err = engine.SendRequest(context.Background(), MethodTokenGet, nil, nil, nil)
	require.NoError(t, err)

	got := server.last(t)
	assert.Equal(t, "/ws/1.1/token.get", got.path, "missing trailing slash is added")
	assert.Equal(t, "format=json&app_id=test-app", got.rawQuery)
}

// TestSendRequest_ReplaysCookies tests that cookies set by one call are sent on the next.
func TestSendRequest_ReplaysCookies(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "S", Value: "1", Path: "/"})
		_, _ = io.WriteString(w, successEnvelope)
	})
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), MethodTokenGet, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, server.last(t).cookies)

	_, err = engine.SendRequest(context.Background(), MethodTrackGet, NewArguments("track_id", "1"), nil, nil)
	require.NoError(t, err)

	cookies := server.last(t).cookies
	require.Len(t, cookies, 1)
	assert.Equal(t, "S", cookies[0].Name)
	assert.Equal(t, "1", cookies[0].Value)
}

// TestSendRequest_StructuredEnvelope tests both envelope layouts.
func TestSendRequest_StructuredEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{
			name: "wrapped in message",
			text: successEnvelope,
		},
		{
			name: "bare envelope",
			text: `{"header":{"status_code":200,"execute_time":0.0042},"body":{"user_token":"abc"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newRecordingServer(t, reply(http.StatusOK, tt.text))
			engine := newTestEngine(t, server.URL+"/ws/1.1/")

			envelope, err := engine.SendRequest(context.Background(), MethodTokenGet, nil, nil, nil)
			require.NoError(t, err)

			structured, ok := envelope.(*StructuredEnvelope)
			require.True(t, ok)
			assert.Equal(t, StatusSuccess, structured.StatusCode)
			assert.InDelta(t, 0.0042, structured.TimeElapsed, 1e-9)
			assert.JSONEq(t, `{"status_code":200,"execute_time":0.0042}`, structured.Header)
			assert.JSONEq(t, `{"user_token":"abc"}`, structured.Body)

			decoded, err := Decode[UserTokenResponse](envelope)
			require.NoError(t, err)
			assert.Equal(t, "abc", decoded.UserToken)
		})
	}
}

// TestSendRequest_ServiceStatusIsNotAnError tests that a non-200 envelope status is returned as data.
func TestSendRequest_ServiceStatusIsNotAnError(t *testing.T) {
	t.Parallel()

	text := `{"message":{"header":{"status_code":401,"execute_time":0.001,"hint":"renew"},"body":""}}`
	server := newRecordingServer(t, reply(http.StatusOK, text))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	envelope, err := engine.SendRequest(context.Background(), MethodTokenGet, nil, nil, nil)
	require.NoError(t, err)

	structured, ok := envelope.(*StructuredEnvelope)
	require.True(t, ok)
	assert.Equal(t, StatusAuthFailed, structured.StatusCode)
	assert.Equal(t, "renew", structured.Hint())

	statusErr := structured.Err(MethodTokenGet)
	require.ErrorIs(t, statusErr, ErrAuthFailed)
	assert.Contains(t, statusErr.Error(), "token.get")
	assert.Contains(t, statusErr.Error(), "hint: renew")
}

// TestSendRequest_RawOverride tests that raw mode returns the body byte for byte.
func TestSendRequest_RawOverride(t *testing.T) {
	t.Parallel()

	const text = "not json at all\n\t{"

	server := newRecordingServer(t, reply(http.StatusOK, text))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	envelope, err := engine.SendRequest(context.Background(), MethodTrackGet, nil, nil, &RequestOptions{Raw: true})
	require.NoError(t, err)

	raw, ok := envelope.(*RawEnvelope)
	require.True(t, ok)
	assert.Equal(t, text, raw.Text)
	assert.Equal(t, text, raw.Payload())
}

// TestSendRequest_OverridePrecedence tests that a caller bundle replaces the registered one.
func TestSendRequest_OverridePrecedence(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, `{"data":{"missions":[]}}`))
	engine := newTestEngine(t, "http://127.0.0.1:1/unused/")

	envelope, err := engine.SendRequest(context.Background(), MethodMissionsGet,
		nil, NewArguments("query", "{ missions }"), &RequestOptions{BaseURL: server.URL + "/graphql", Raw: true})
	require.NoError(t, err)

	got := server.last(t)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/graphql", got.path)
	assert.Equal(t, "query=%7B%20missions%20%7D", got.body)
	assert.Equal(t, `{"data":{"missions":[]}}`, envelope.Payload())

	// Without Raw in the override the same reply must be parsed and rejected.
	_, err = engine.SendRequest(context.Background(), MethodMissionsGet,
		nil, nil, &RequestOptions{BaseURL: server.URL + "/graphql"})
	require.ErrorIs(t, err, ErrMalformedEnvelope)
}

// TestSendRequest_OverrideEndpoint tests that an override URL is the whole endpoint.
func TestSendRequest_OverrideEndpoint(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), MethodTrackGet,
		NewArguments("track_id", "1"), nil, &RequestOptions{BaseURL: server.URL + "/custom/endpoint"})
	require.NoError(t, err)

	got := server.last(t)
	assert.Equal(t, "/custom/endpoint", got.path)
	assert.Equal(t, "1", got.query.Get("track_id"))
	assert.Equal(t, "json", got.query.Get("format"))
}

// TestSendRequest_PostBody tests the form body of write methods.
func TestSendRequest_PostBody(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), MethodTrackSubtitlePost,
		NewArguments("commontrack_id", "7"), NewArguments("k", "v", "empty", ""), nil)
	require.NoError(t, err)

	got := server.last(t)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "k=v", got.body)
	assert.Equal(t, int64(len("k=v")), got.length)
	assert.Equal(t, "application/x-www-form-urlencoded", got.contentType)
	assert.Equal(t, "7", got.query.Get("commontrack_id"))
}

// TestSendRequest_GetIgnoresBody tests that read methods never send a body.
func TestSendRequest_GetIgnoresBody(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), MethodTrackGet, nil, NewArguments("k", "v"), nil)
	require.NoError(t, err)

	got := server.last(t)
	assert.Empty(t, got.body)
	assert.Empty(t, got.contentType)
}

// TestSendRequest_MalformedEnvelope tests replies that do not match the envelope schema.
func TestSendRequest_MalformedEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		field string
	}{
		{"invalid json", `{"message":`, "not valid JSON"},
		{"no header", `{"message":{"body":{}}}`, `"header"`},
		{"no status code", `{"message":{"header":{"execute_time":0.1},"body":{}}}`, `"status_code"`},
		{"string status code", `{"message":{"header":{"status_code":"200","execute_time":0.1},"body":{}}}`, `"status_code"`},
		{"no execute time", `{"message":{"header":{"status_code":200},"body":{}}}`, `"execute_time"`},
		{"no body", `{"message":{"header":{"status_code":200,"execute_time":0.1}}}`, `"body"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newRecordingServer(t, reply(http.StatusOK, tt.text))
			engine := newTestEngine(t, server.URL+"/ws/1.1/")

			envelope, err := engine.SendRequest(context.Background(), MethodTrackGet, nil, nil, nil)
			require.ErrorIs(t, err, ErrMalformedEnvelope)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), "track.get")
			assert.Nil(t, envelope)
		})
	}
}

// TestSendRequest_HTTPStatus tests that non-2xx replies fail before parsing.
func TestSendRequest_HTTPStatus(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusServiceUnavailable, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), MethodTokenGet, nil, nil, nil)
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Contains(t, err.Error(), "503")
}

// TestSendRequest_TransportError tests that connection failures are propagated.
func TestSendRequest_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL + "/ws/1.1/"
	server.Close()

	engine := newTestEngine(t, baseURL)

	_, err := engine.SendRequest(context.Background(), MethodTokenGet, nil, nil, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.NotErrorIs(t, err, ErrMalformedEnvelope)
}

// TestSendRequest_UnknownMethod tests that no request is made for an unknown method.
func TestSendRequest_UnknownMethod(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	_, err := engine.SendRequest(context.Background(), Method(42), nil, nil, nil)
	require.ErrorIs(t, err, ErrUnknownMethod)

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Empty(t, server.requests)
}

// TestSendRequest_CanceledContext tests that a canceled context aborts the call.
func TestSendRequest_CanceledContext(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, reply(http.StatusOK, successEnvelope))
	engine := newTestEngine(t, server.URL+"/ws/1.1/")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.SendRequest(ctx, MethodTokenGet, nil, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

// TestDecode tests typed decoding of both envelope kinds.
func TestDecode(t *testing.T) {
	t.Parallel()

	raw := &RawEnvelope{Text: `{"jwt":"signed"}`}
	result, err := Decode[JWTResponse](raw)
	require.NoError(t, err)
	assert.Equal(t, "signed", result.JWT)

	_, err = Decode[JWTResponse](&StructuredEnvelope{Body: `"plain string"`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")

	_, err = Decode[JWTResponse](nil)
	require.ErrorIs(t, err, ErrMalformedEnvelope)
}
