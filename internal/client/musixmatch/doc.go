// Package musixmatch is a client for the Musixmatch desktop API.
// The Engine maps every API method to an HTTP call (endpoint, verb, query and form encoding),
// keeps session cookies across calls and unwraps the uniform response envelope.
// ClientImpl builds on it to search tracks and fetch or submit lyrics and subtitles.
package musixmatch
