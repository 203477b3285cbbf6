package utils

import (
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// RedactedValue replaces secret query values in logs.
const RedactedValue = "REDACTED"

// textContentTypePatterns matches content types whose bodies are safe to dump as text.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/x-www-form-urlencoded$`),
}

// SetFileExtension ensures the file has the specified extension.
// When isExtensionReplaced is true an existing different extension is replaced,
// otherwise the new extension is appended.
func SetFileExtension(filename, extension string, isExtensionReplaced bool) string {
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	currentExt := filepath.Ext(filename)
	if currentExt == extension {
		return filename
	}

	if isExtensionReplaced {
		filename = strings.TrimSuffix(filename, currentExt)
	}

	return filename + extension
}

// IsFileExist checks if a regular file exists at the specified path.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// IsTextContentType checks if the given content type represents a text-based format
// with a utf-8 or us-ascii charset (or none).
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// RedactQuery returns rawQuery with the values of the given keys replaced by RedactedValue.
// Key order and the encoding of untouched pairs are preserved.
func RedactQuery(rawQuery string, keys ...string) string {
	if rawQuery == "" || len(keys) == 0 {
		return rawQuery
	}

	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		key, _, _ := strings.Cut(pair, "=")

		unescapedKey, err := url.QueryUnescape(key)
		if err != nil {
			unescapedKey = key
		}

		for _, secret := range keys {
			if unescapedKey == secret {
				pairs[i] = key + "=" + RedactedValue

				break
			}
		}
	}

	return strings.Join(pairs, "&")
}

// RedactURL returns the URL string with the values of the given query keys redacted.
func RedactURL(u *url.URL, keys ...string) string {
	if u == nil {
		return ""
	}

	redacted := *u
	redacted.RawQuery = RedactQuery(u.RawQuery, keys...)

	return redacted.String()
}
