package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/atheik/imagenet-browser/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/ugorji/go/codec"
)

// document is a decoded Mason response body.
type document map[string]interface{}

// control returns the named @controls entry, if there is one.
func (d document) control(name string) (map[string]interface{}, bool) {
	controls, ok := d["@controls"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	control, ok := controls[name].(map[string]interface{})
	return control, ok
}

// href returns the href of the named control, if there is one.
func (d document) href(name string) (string, bool) {
	control, ok := d.control(name)
	if !ok {
		return "", false
	}
	href, ok := control["href"].(string)
	return href, ok
}

// details returns the first detail message of an @error block, or an
// empty string.
func (d document) details() string {
	errBlock, ok := d["@error"].(map[string]interface{})
	if !ok {
		return ""
	}
	if messages, ok := errBlock["@messages"].([]interface{}); ok && len(messages) > 0 {
		if message, ok := messages[0].(string); ok {
			return message
		}
	}
	message, _ := errBlock["@message"].(string)
	return message
}

// resource is any object that has a URL.
type resource struct {
	URL *url.URL
}

// Template expands a URI template and resolves it relative to the
// resource's own URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// Do performs some HTTP action.  If in is non-nil, it is serialized
// and sent as the request body.  If out is non-nil, the response body
// is decoded into it.  An unsuccessful response becomes an error via
// checkHTTPStatus; candidates are the well-known errors this operation
// can produce.
func (r *resource) Do(method string, url *url.URL, in interface{}, out *document, candidates ...error) (err error) {
	var body io.Reader
	if in != nil {
		var buffer bytes.Buffer
		encoder := codec.NewEncoder(&buffer, &codec.JsonHandle{})
		err = encoder.Encode(in)
		if err != nil {
			return err
		}
		body = &buffer
	}

	req, err := http.NewRequest(method, url.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}

	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	if err = checkHTTPStatus(resp, candidates); err != nil {
		return err
	}

	if resp.Body != nil && out != nil {
		contentType := resp.Header.Get("Content-Type")
		err = restdata.Decode(contentType, resp.Body, out)
	}

	return err // may be nil
}

// Get retrieves the resource from its own URL.
func (r *resource) Get(out *document, candidates ...error) error {
	return r.Do("GET", r.URL, nil, out, candidates...)
}

// GetFrom retrieves a resource from some other URL.  template is
// interpreted as a URI template, modified by vars, and the result
// taken relative to the resource's URL.
func (r *resource) GetFrom(template string, vars map[string]interface{}, out *document, candidates ...error) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do("GET", url, nil, out, candidates...)
	}
	return err
}

// PutTo replaces a resource at some other URL.
func (r *resource) PutTo(template string, vars map[string]interface{}, in interface{}, candidates ...error) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do("PUT", url, in, nil, candidates...)
	}
	return err
}

// PostTo submits data to a service at some other URL.
func (r *resource) PostTo(template string, vars map[string]interface{}, in interface{}, candidates ...error) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do("POST", url, in, nil, candidates...)
	}
	return err
}

// DeleteAt deletes the resource at some other URL.
func (r *resource) DeleteAt(template string, vars map[string]interface{}, candidates ...error) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do("DELETE", url, nil, nil, candidates...)
	}
	return err
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if it
// is not successful.  The server's Mason error documents carry the
// store's own error messages verbatim, so when the detail message
// matches one of the candidate errors the caller knows this operation
// can produce, that typed error is returned instead of a generic one.
func checkHTTPStatus(resp *http.Response, candidates []error) error {
	if len(resp.Status) > 0 && resp.Status[0] == '2' {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	var errDoc document
	contentType := resp.Header.Get("Content-Type")
	err = restdata.Decode(contentType, bytes.NewReader(body), &errDoc)
	if err == nil {
		details := errDoc.details()
		for _, candidate := range candidates {
			if candidate.Error() == details {
				return candidate
			}
		}
	}

	return ErrorHTTP{Response: resp, Body: string(body)}
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
