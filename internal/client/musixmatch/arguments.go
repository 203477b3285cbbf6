package musixmatch

import (
	"net/url"
	"strings"
)

// Argument is a single key-value pair of a query string or form body.
type Argument struct {
	Key   string
	Value string
}

// Arguments is an ordered argument list. Pairs with empty values are never sent.
type Arguments []Argument

// NewArguments builds Arguments from alternating keys and values.
// A trailing key without a value gets an empty value and is therefore dropped on encoding.
func NewArguments(pairs ...string) Arguments {
	args := make(Arguments, 0, (len(pairs)+1)/2)

	for i := 0; i < len(pairs); i += 2 {
		var value string
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}

		args = args.Set(pairs[i], value)
	}

	return args
}

// Set replaces the value of key in place or appends a new pair.
func (a Arguments) Set(key, value string) Arguments {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value

			return a
		}
	}

	return append(a, Argument{Key: key, Value: value})
}

// Get returns the value of key.
func (a Arguments) Get(key string) (string, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg.Value, true
		}
	}

	return "", false
}

// Clone returns an independent copy.
func (a Arguments) Clone() Arguments {
	if a == nil {
		return nil
	}

	clone := make(Arguments, len(a))
	copy(clone, a)

	return clone
}

// Encode returns "?k=v&k2=v2" for every pair with a non-empty value,
// or an empty string when nothing is left to send.
func (a Arguments) Encode() string {
	var sb strings.Builder

	for _, arg := range a {
		if arg.Value == "" {
			continue
		}

		if sb.Len() == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}

		sb.WriteString(escape(arg.Key))
		sb.WriteByte('=')
		sb.WriteString(escape(arg.Value))
	}

	return sb.String()
}

// EncodeBody returns the form payload: Encode without the leading separator.
func (a Arguments) EncodeBody() string {
	return strings.TrimPrefix(a.Encode(), "?")
}

// escape percent-encodes s, spelling spaces as %20.
// QueryEscape already turns a literal plus into %2B, so the replacement is unambiguous.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
