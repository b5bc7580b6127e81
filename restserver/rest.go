package restserver

// This file contains the REST skeleton framework: one resourceHandler
// per resource, with the HTTP verbs it supports as optional function
// fields.  ServeHTTP runs the shared request lifecycle (context
// extraction from the URL, body decoding for writes, verb dispatch,
// and response or error-document construction); the per-resource
// handler functions only hold the state-transition logic.

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/atheik/imagenet-browser/restdata"
)

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
// The response has no body, only a Location header.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string
}

type resourceHandler struct {
	// Context reads an HTTP request and produces a context object,
	// resolving every entity the URL path names.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a Mason document representing the
	// object.
	Get func(*context) (interface{}, error)

	// Put, if non-nil, replaces the object from the decoded JSON
	// request body.
	Put func(*context, map[string]interface{}) (interface{}, error)

	// Post, if non-nil, creates a subordinate object from the
	// decoded JSON request body.  The return is typically a
	// responseCreated.
	Post func(*context, map[string]interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.
	Delete func(*context) (interface{}, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx *context
		in  map[string]interface{}
		out interface{}
		err error
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			details := fmt.Sprintf("%v", recovered)
			writeError(resp, req, http.StatusInternalServerError, details)
		}
	}()

	// Get entities from URL parameters.
	ctx, err = h.Context(req)

	// Read the JSON body, if there should be one.  A write without
	// a body is an unsupported-media-type error, not a bad request.
	if err == nil && (req.Method == "PUT" || req.Method == "POST") {
		if req.ContentLength == 0 {
			err = restdata.ErrUnsupportedMediaType{}
		} else {
			err = restdata.Decode(req.Header.Get("Content-Type"), req.Body, &in)
		}
	}

	// Actually call the handler method.
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it.
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case "GET", "HEAD":
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case "PUT":
			if h.Put != nil {
				out, err = h.Put(ctx, in)
			}
		case "POST":
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case "DELETE":
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errS, hasStatus := err.(restdata.ErrorStatus); hasStatus {
			status = errS.HTTPStatus()
		}
		writeError(resp, req, status, err.Error())
		return
	}

	switch result := out.(type) {
	case nil:
		resp.WriteHeader(http.StatusNoContent)
	case responseCreated:
		resp.Header().Set("Location", result.Location)
		resp.WriteHeader(http.StatusCreated)
	default:
		resp.Header().Set("Content-Type", restdata.MasonMediaType)
		resp.WriteHeader(http.StatusOK)
		if req.Method != "HEAD" {
			// The document is fully built by now; an encoding
			// failure here means the response line is already
			// out, so there is nothing better to do than stop.
			json.NewEncoder(resp).Encode(out)
		}
	}
}

// writeError sends a Mason error document with the given status.
func writeError(resp http.ResponseWriter, req *http.Request, status int, details string) {
	body := restdata.NewErrorDocument(restdata.ErrorTitle(status), details, req.URL.Path)
	resp.Header().Set("Content-Type", restdata.MasonMediaType)
	resp.WriteHeader(status)
	json.NewEncoder(resp).Encode(body)
}
