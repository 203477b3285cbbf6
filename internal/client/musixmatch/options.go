package musixmatch

// RequestOptions overrides how a single call is routed and parsed.
// A caller-supplied value replaces the method's registered default as a whole.
type RequestOptions struct {
	// BaseURL is a complete endpoint URL that replaces the API root and the method path.
	BaseURL string
	// Raw returns the response text untouched instead of parsing the envelope.
	Raw bool
}

// resolveOptions picks the caller's options, then the registry default, then none.
func resolveOptions(descriptor EndpointDescriptor, override *RequestOptions) RequestOptions {
	switch {
	case override != nil:
		return *override
	case descriptor.Options != nil:
		return *descriptor.Options
	default:
		return RequestOptions{}
	}
}
