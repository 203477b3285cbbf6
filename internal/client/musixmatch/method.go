package musixmatch

import (
	"fmt"
	"net/http"
)

// Method identifies a remote API operation.
type Method int

// Supported API methods.
const (
	MethodTokenGet Method = iota
	MethodTrackSearch
	MethodTrackGet
	MethodTrackSubtitleGet
	MethodTrackLyricsGet
	MethodTrackSnippetGet
	MethodTrackSubtitlePost
	MethodRequestJWTToken
	MethodMissionsGet

	// methodCount must stay last.
	methodCount
)

// MissionsEndpoint is the missions GraphQL endpoint.
const MissionsEndpoint = "https://missions-backend.musixmatch.com/graphql"

// EndpointDescriptor describes how a method is reached.
type EndpointDescriptor struct {
	// Path is appended to the API root unless an override supplies the endpoint.
	Path string
	// Verb is the HTTP method.
	Verb string
	// Options is the default override bundle, nil for most methods.
	Options *RequestOptions
}

// registry is indexed by Method. init verifies every entry is filled.
//
//nolint:gochecknoglobals // Immutable lookup table.
var registry = [methodCount]EndpointDescriptor{
	MethodTokenGet:          {Path: "token.get", Verb: http.MethodGet},
	MethodTrackSearch:       {Path: "track.search", Verb: http.MethodGet},
	MethodTrackGet:          {Path: "track.get", Verb: http.MethodGet},
	MethodTrackSubtitleGet:  {Path: "track.subtitle.get", Verb: http.MethodGet},
	MethodTrackLyricsGet:    {Path: "track.lyrics.get", Verb: http.MethodGet},
	MethodTrackSnippetGet:   {Path: "track.snippet.get", Verb: http.MethodGet},
	MethodTrackSubtitlePost: {Path: "track.subtitle.post", Verb: http.MethodPost},
	MethodRequestJWTToken:   {Path: "jwt.get", Verb: http.MethodGet},
	MethodMissionsGet: {
		Path: "graphql",
		Verb: http.MethodPost,
		Options: &RequestOptions{
			BaseURL: MissionsEndpoint,
			Raw:     true,
		},
	},
}

//nolint:gochecknoinits // A registry gap is a programming error and must fail before first use.
func init() {
	if err := validateRegistry(registry[:]); err != nil {
		panic(err)
	}
}

// validateRegistry checks that every method has a path and a known verb.
func validateRegistry(descriptors []EndpointDescriptor) error {
	if len(descriptors) != int(methodCount) {
		return fmt.Errorf("%w: %d entries for %d methods", ErrIncompleteRegistry, len(descriptors), methodCount)
	}

	for i, d := range descriptors {
		if d.Path == "" {
			return fmt.Errorf("%w: method %d has no path", ErrIncompleteRegistry, i)
		}

		if d.Verb != http.MethodGet && d.Verb != http.MethodPost {
			return fmt.Errorf("%w: method %d has unsupported verb %q", ErrIncompleteRegistry, i, d.Verb)
		}
	}

	return nil
}

// Methods returns every supported method in declaration order.
func Methods() []Method {
	methods := make([]Method, 0, methodCount)
	for m := range methodCount {
		methods = append(methods, m)
	}

	return methods
}

// IsValid reports whether m belongs to the enumeration.
func (m Method) IsValid() bool {
	return m >= 0 && m < methodCount
}

// String returns the API path of the method.
func (m Method) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return registry[m].Path
}

// Describe returns the endpoint descriptor of m.
func Describe(m Method) (EndpointDescriptor, error) {
	if !m.IsValid() {
		return EndpointDescriptor{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}

	return registry[m], nil
}

// hasBody reports whether the verb carries a form body.
func hasBody(verb string) bool {
	return verb == http.MethodPost
}
