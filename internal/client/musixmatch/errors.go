package musixmatch

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUnknownMethod indicates a Method value outside the enumeration.
	ErrUnknownMethod = errors.New("unknown API method")
	// ErrIncompleteRegistry indicates a method without an endpoint or verb.
	ErrIncompleteRegistry = errors.New("incomplete method registry")
	// ErrUnexpectedHTTPStatus indicates a non-2xx HTTP status.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMalformedEnvelope indicates a response that does not match the envelope schema.
	ErrMalformedEnvelope = errors.New("malformed response envelope")
	// ErrTrackNotFound indicates that a lookup returned no track.
	ErrTrackNotFound = errors.New("track not found")
	// ErrEmptySubtitles indicates an attempt to submit empty subtitles.
	ErrEmptySubtitles = errors.New("subtitles cannot be empty")
	// ErrUnknownSubtitleFormat indicates an unsupported subtitle format.
	ErrUnknownSubtitleFormat = errors.New("unknown subtitle format")
	// ErrNilSearchParameters indicates a search without parameters.
	ErrNilSearchParameters = errors.New("search parameters cannot be nil")
)
