package restdata

import (
	"fmt"
	"net/http"

	"github.com/atheik/imagenet-browser/taxonomy"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if a write request
// carries no JSON body.  This translates directly into the equivalent
// HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	if e.Type == "" {
		return "Requests must be JSON"
	}
	return fmt.Sprintf("Unsupported media type %q, requests must be JSON", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest is a wrapper error for schema validation failures,
// unreadable request bodies, and malformed query parameters.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, the service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrConflict is a wrapper error for uniqueness violations: creating
// or renaming onto a taken identifier, or re-adding an existing
// hyponym edge.
type ErrConflict struct {
	Err error
}

func (e ErrConflict) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 409 Conflict error code.
func (e ErrConflict) HTTPStatus() int {
	return http.StatusConflict
}

// WrapStoreError remaps the well-known taxonomy errors onto their HTTP
// statuses: absent entities and edges become 404, uniqueness
// violations become 409.  Other errors pass through unchanged.
func WrapStoreError(err error) error {
	switch err.(type) {
	case taxonomy.ErrNoSuchSynset, taxonomy.ErrNoSuchHyponym, taxonomy.ErrNoSuchImage:
		return ErrNotFound{Err: err}
	case taxonomy.ErrSynsetExists, taxonomy.ErrHyponymExists, taxonomy.ErrImageExists:
		return ErrConflict{Err: err}
	}
	return err
}

// ErrorTitle returns the short human-readable title used in the
// @error block for a given HTTP status.
func ErrorTitle(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid JSON document"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusMethodNotAllowed:
		return "Method not allowed"
	case http.StatusConflict:
		return "Already exists"
	case http.StatusUnsupportedMediaType:
		return "Unsupported media type"
	default:
		return http.StatusText(status)
	}
}
