// Package restdata defines the wire format shared by the REST server
// and its clients.  Responses are Mason hypermedia documents, served
// as the application/vnd.mason+json media type: plain JSON objects
// carrying reserved @namespaces, @controls, and @error properties
// alongside the resource's own fields.
//
// API Usage
//
// HTTP GET the entry point document.  It carries a control pointing at
// the synset collection; every document from there on embeds the
// controls for the state transitions available on that resource.
// Clients should follow control hrefs rather than constructing URLs of
// their own.  Controls that accept a body ("method" of POST or PUT
// with "encoding" of json) embed the JSON schema the body must
// validate against.
//
// Errors
//
// Failing requests return a Mason error document: the request path in
// "resource_url", an @error block with a short title and one detail
// message, and a "profile" control pointing at the error profile.
// The HTTP status is 400 for malformed input, 404 for a missing
// entity or edge, 409 for a uniqueness conflict, and 415 for a write
// without a JSON body.
package restdata

import (
	"encoding/json"
)

// MasonMediaType identifies the Mason hypermedia JSON representation.
// All success and error bodies are served with this type.
const MasonMediaType = "application/vnd.mason+json"

// JSONMediaType is accepted interchangeably with MasonMediaType on
// request bodies.
const JSONMediaType = "application/json"

// NamespaceName is the curie prefix for the API's own link relations.
const NamespaceName = "imagenet_browser"

// LinkRelationsURL documents the link relations under NamespaceName.
const LinkRelationsURL = "/imagenet_browser/link-relations/"

// Profile URLs for the three resource representations.
const (
	SynsetProfile = "/profiles/synset/"
	ImageProfile  = "/profiles/image/"
	ErrorProfile  = "/profiles/error/"
)

// Document is a Mason document under construction: an ordered mapping
// from string keys to JSON-encodable values.  Keys serialize in the
// order they were first set.  The zero value is not usable; call
// NewDocument.
type Document struct {
	keys   []string
	values map[string]interface{}
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]interface{})}
}

// Set adds or replaces a field.  Replacing a field keeps its original
// position in the serialized document.
func (d *Document) Set(key string, value interface{}) {
	if _, present := d.values[key]; !present {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get retrieves a field previously set.
func (d *Document) Get(key string) (interface{}, bool) {
	value, present := d.values[key]
	return value, present
}

// MarshalJSON serializes the document with its keys in insertion
// order.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := []byte{'{'}
	for i, key := range d.keys {
		if i > 0 {
			out = append(out, ',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(d.values[key])
		if err != nil {
			return nil, err
		}
		out = append(out, name...)
		out = append(out, ':')
		out = append(out, value...)
	}
	return append(out, '}'), nil
}

// subdocument fetches a nested document under a reserved key, creating
// it on first use.
func (d *Document) subdocument(key string) *Document {
	if value, present := d.values[key]; present {
		return value.(*Document)
	}
	sub := NewDocument()
	d.Set(key, sub)
	return sub
}

// AddNamespace registers a curie namespace under the reserved
// @namespaces property.  The URI is an address where developers can
// find information about the namespace's link relations.  Registering
// the same prefix again overwrites the earlier URI.
func (d *Document) AddNamespace(prefix, uri string) {
	namespace := NewDocument()
	namespace.Set("name", uri)
	d.subdocument("@namespaces").Set(prefix, namespace)
}

// Control is the body of a hypermedia control: everything about an
// affordance except its name and target href.  Mason allows further
// properties; these are the ones this API emits.
type Control struct {
	Method   string  `json:"method,omitempty"`
	Encoding string  `json:"encoding,omitempty"`
	Title    string  `json:"title,omitempty"`
	Schema   *Schema `json:"schema,omitempty"`
}

// controlEntry is a Control together with its mandatory href.
type controlEntry struct {
	Href string `json:"href"`
	Control
}

// AddControl registers a named action under the reserved @controls
// property.  Re-adding a control with the same name overwrites it.
func (d *Document) AddControl(name, href string, control Control) {
	d.subdocument("@controls").Set(name, controlEntry{Href: href, Control: control})
}

// errorBody is the value of the @error property.  Mason allows more
// than one string in @messages; this API always sends exactly one.
type errorBody struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages"`
}

// AddError sets the reserved @error property.  It should only be used
// on the root of a document that carries no normal content.
func (d *Document) AddError(title, details string) {
	d.Set("@error", errorBody{
		Message:  title,
		Messages: []string{details},
	})
}

// NewErrorDocument builds a complete Mason error document for a
// request against resourceURL.
func NewErrorDocument(title, details, resourceURL string) *Document {
	d := NewDocument()
	d.Set("resource_url", resourceURL)
	d.AddError(title, details)
	d.AddControl("profile", ErrorProfile, Control{})
	return d
}
