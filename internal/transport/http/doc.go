// Package http provides custom HTTP transport utilities:
// request/response debug logging with secret redaction and default header injection.
package http
