package musixmatch

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Envelope is the parsed result of a call: either *StructuredEnvelope or *RawEnvelope.
type Envelope interface {
	// Payload returns the text typed decoding works on.
	Payload() string

	isEnvelope()
}

// StructuredEnvelope is the uniform status/timing/header/body wrapper of the API.
type StructuredEnvelope struct {
	// StatusCode is the service-level status from the header.
	StatusCode StatusCode
	// TimeElapsed is the server execution time in seconds.
	TimeElapsed float64
	// Header is the serialized header subtree.
	Header string
	// Body is the serialized body subtree.
	Body string
}

// RawEnvelope holds a response returned verbatim.
type RawEnvelope struct {
	// Text is the complete response body.
	Text string
}

// Payload returns the serialized body.
func (e *StructuredEnvelope) Payload() string { return e.Body }

// Payload returns the raw response text.
func (e *RawEnvelope) Payload() string { return e.Text }

func (*StructuredEnvelope) isEnvelope() {}

func (*RawEnvelope) isEnvelope() {}

// Hint returns the optional "hint" field of the header (e.g. "renew" for a stale token).
func (e *StructuredEnvelope) Hint() string {
	return gjson.Get(e.Header, "hint").String()
}

// Err maps a non-success status code to a *StatusError.
func (e *StructuredEnvelope) Err(method Method) error {
	if e.StatusCode == StatusSuccess {
		return nil
	}

	return &StatusError{
		Code:   e.StatusCode,
		Method: method,
		Hint:   e.Hint(),
	}
}

// Envelope roots in lookup order: the live API nests everything under "message",
// bare envelopes put header and body at the top level.
//
//nolint:gochecknoglobals // Immutable lookup table.
var envelopeRoots = []string{"message.", ""}

// parseEnvelope extracts the envelope fields from a JSON document.
func parseEnvelope(text string) (*StructuredEnvelope, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrMalformedEnvelope)
	}

	root, ok := findEnvelopeRoot(text)
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedEnvelope, "header")
	}

	statusCode := gjson.Get(text, root+"header.status_code")
	if statusCode.Type != gjson.Number {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedEnvelope, "status_code")
	}

	executeTime := gjson.Get(text, root+"header.execute_time")
	if executeTime.Type != gjson.Number {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedEnvelope, "execute_time")
	}

	body := gjson.Get(text, root+"body")
	if !body.Exists() {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedEnvelope, "body")
	}

	return &StructuredEnvelope{
		StatusCode:  StatusCode(statusCode.Int()),
		TimeElapsed: executeTime.Float(),
		Header:      gjson.Get(text, root+"header").Raw,
		Body:        body.Raw,
	}, nil
}

// findEnvelopeRoot returns the first root whose header is an object.
func findEnvelopeRoot(text string) (string, bool) {
	for _, root := range envelopeRoots {
		if gjson.Get(text, root+"header").IsObject() {
			return root, true
		}
	}

	return "", false
}

// Decode unmarshals the envelope payload into T.
func Decode[T any](envelope Envelope) (*T, error) {
	if envelope == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrMalformedEnvelope)
	}

	var result T
	if err := json.Unmarshal([]byte(envelope.Payload()), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &result, nil
}
