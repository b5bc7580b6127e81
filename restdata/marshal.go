package restdata

import (
	"io"
	"mime"
	"reflect"

	"github.com/ugorji/go/codec"
)

// Decode reads a JSON request body, such as an HTTP request, into out.
// out must be a pointer type.  A Content-Type other than a JSON
// variant is an unsupported-media-type error; a body that fails to
// parse as JSON is a bad request.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5 would have us assume
		// application/octet-stream, which we cannot accept
		// either way.
		return ErrUnsupportedMediaType{}
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}

	switch mediaType {
	case "text/json", JSONMediaType, MasonMediaType:
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	json := &codec.JsonHandle{}
	// Nested objects decode as string-keyed maps, so callers can
	// walk @controls and friends without type juggling.
	json.MapType = reflect.TypeOf(map[string]interface{}(nil))
	decoder := codec.NewDecoder(r, json)
	err = decoder.Decode(out)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	return nil
}
