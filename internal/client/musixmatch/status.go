package musixmatch

import (
	"errors"
	"fmt"
	"strconv"
)

// StatusCode is the service-level status carried in the envelope header.
type StatusCode int

// Status codes documented by the API.
const (
	// StatusSuccess means the request was successful.
	StatusSuccess StatusCode = 200
	// StatusBadSyntax means the request had bad syntax or was inherently impossible to satisfy.
	StatusBadSyntax StatusCode = 400
	// StatusAuthFailed means authentication failed, usually an invalid or missing token.
	StatusAuthFailed StatusCode = 401
	// StatusUsageLimitReached means the daily request limit or the balance was exhausted.
	StatusUsageLimitReached StatusCode = 402
	// StatusNotAuthorized means the caller may not perform this operation.
	StatusNotAuthorized StatusCode = 403
	// StatusResourceNotFound means the requested resource was not found.
	StatusResourceNotFound StatusCode = 404
	// StatusMethodNotFound means the requested method was not found.
	StatusMethodNotFound StatusCode = 405
	// StatusServerError means something went wrong on the server.
	StatusServerError StatusCode = 500
	// StatusServerBusy means the server is overloaded.
	StatusServerBusy StatusCode = 503
)

// Sentinels a *StatusError unwraps to.
var (
	// ErrBadSyntax matches StatusBadSyntax.
	ErrBadSyntax = errors.New("bad syntax")
	// ErrAuthFailed matches StatusAuthFailed.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrUsageLimitReached matches StatusUsageLimitReached.
	ErrUsageLimitReached = errors.New("usage limit reached")
	// ErrNotAuthorized matches StatusNotAuthorized.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrResourceNotFound matches StatusResourceNotFound.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrMethodNotFound matches StatusMethodNotFound.
	ErrMethodNotFound = errors.New("method not found")
	// ErrServerError matches StatusServerError.
	ErrServerError = errors.New("server error")
	// ErrServerBusy matches StatusServerBusy.
	ErrServerBusy = errors.New("server busy")
	// ErrUnknownStatus matches any undocumented non-success code.
	ErrUnknownStatus = errors.New("unknown status")
)

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	statusNames = map[StatusCode]string{
		StatusSuccess:           "Success",
		StatusBadSyntax:         "BadSyntax",
		StatusAuthFailed:        "AuthFailed",
		StatusUsageLimitReached: "UsageLimitReached",
		StatusNotAuthorized:     "NotAuthorized",
		StatusResourceNotFound:  "ResourceNotFound",
		StatusMethodNotFound:    "MethodNotFound",
		StatusServerError:       "ServerError",
		StatusServerBusy:        "ServerBusy",
	}

	statusErrors = map[StatusCode]error{
		StatusBadSyntax:         ErrBadSyntax,
		StatusAuthFailed:        ErrAuthFailed,
		StatusUsageLimitReached: ErrUsageLimitReached,
		StatusNotAuthorized:     ErrNotAuthorized,
		StatusResourceNotFound:  ErrResourceNotFound,
		StatusMethodNotFound:    ErrMethodNotFound,
		StatusServerError:       ErrServerError,
		StatusServerBusy:        ErrServerBusy,
	}
)

// String returns the name of a documented code or the number itself.
func (c StatusCode) String() string {
	if name, ok := statusNames[c]; ok {
		return name
	}

	return strconv.Itoa(int(c))
}

// StatusError is returned when the envelope status is not StatusSuccess.
type StatusError struct {
	// Code is the status from the envelope header.
	Code StatusCode
	// Method is the API method that failed.
	Method Method
	// Hint is the optional header hint.
	Hint string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("musixmatch request %s failed: %s (%d)", e.Method, e.Code, int(e.Code))
	if e.Hint != "" {
		msg += ", hint: " + e.Hint
	}

	return msg
}

// Unwrap returns the sentinel matching the code.
func (e *StatusError) Unwrap() error {
	if err, ok := statusErrors[e.Code]; ok {
		return err
	}

	return ErrUnknownStatus
}
