// Package restclient provides an HTTP client for the ImageNet browser
// REST API, talking to the matching server in the "restserver"
// package.
//
// The server in github.com/atheik/imagenet-browser/cmd/browserd runs a
// compatible REST server.  Call New() with the base URL of that
// service's entry point; for instance,
//
//     c, err := restclient.New("http://localhost:5980/api/")
//
// The client navigates from the entry point document rather than
// assuming the URL layout.  Collection pages have the server's fixed
// page size; the second return value of the listing calls reports
// whether the server advertised a further page.  Failures map back to
// the taxonomy error types where the operation allows it, so
// e.g. creating a duplicate synset returns taxonomy.ErrSynsetExists.
package restclient

import (
	"net/url"
	"strconv"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/mitchellh/mapstructure"
)

// Client speaks to an external REST server.
type Client struct {
	resource

	// synsets holds the href of the synset collection, as
	// advertised by the entry point document.
	synsets string
}

// New creates a new client for the REST server whose entry point
// document lives at baseURL.
func New(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{resource: resource{URL: parsed}}

	var root document
	err = c.Get(&root)
	if err != nil {
		return nil, err
	}
	href, ok := root.href("imagenet_browser:synsets-all")
	if !ok {
		return nil, ErrNotBrowser{URL: baseURL}
	}
	c.synsets = href
	return c, nil
}

// ErrNotBrowser indicates that the service at the requested URL did
// not produce an ImageNet browser entry point document.
type ErrNotBrowser struct {
	URL string
}

func (e ErrNotBrowser) Error() string {
	return "No ImageNet browser at " + e.URL
}

// pageVars builds template variables for one collection page.  The
// first page is the collection's canonical URL with no query string.
func pageVars(start int) map[string]interface{} {
	vars := map[string]interface{}{}
	if start > 0 {
		vars["start"] = strconv.Itoa(start)
	}
	return vars
}

// decodeSynset converts one document or collection item into a synset.
func decodeSynset(item interface{}) (synset taxonomy.Synset, err error) {
	err = mapstructure.Decode(item, &synset)
	return
}

// decodeSynsetItems converts a collection document's items.
func decodeSynsetItems(doc document) ([]taxonomy.Synset, error) {
	raw, _ := doc["items"].([]interface{})
	synsets := make([]taxonomy.Synset, 0, len(raw))
	for _, item := range raw {
		synset, err := decodeSynset(item)
		if err != nil {
			return nil, err
		}
		synsets = append(synsets, synset)
	}
	return synsets, nil
}

// Synsets returns one page of all synsets, ordered by WordNet ID.
func (c *Client) Synsets(start int) ([]taxonomy.Synset, bool, error) {
	var doc document
	err := c.GetFrom(c.synsets+"{?start}", pageVars(start), &doc)
	if err != nil {
		return nil, false, err
	}
	synsets, err := decodeSynsetItems(doc)
	if err != nil {
		return nil, false, err
	}
	_, more := doc.control("next")
	return synsets, more, nil
}

// Synset retrieves one synset by its WordNet ID.
func (c *Client) Synset(wnid string) (taxonomy.Synset, error) {
	var doc document
	err := c.GetFrom(c.synsets+"{wnid}/", map[string]interface{}{"wnid": wnid}, &doc,
		taxonomy.ErrNoSuchSynset{WNID: wnid})
	if err != nil {
		return taxonomy.Synset{}, err
	}
	return decodeSynset(map[string]interface{}(doc))
}

// CreateSynset adds a new synset.
func (c *Client) CreateSynset(synset taxonomy.Synset) error {
	return c.PostTo(c.synsets, nil, synsetBody(synset),
		taxonomy.ErrSynsetExists{WNID: synset.WNID})
}

// ReplaceSynset replaces every field of the synset currently known as
// wnid, including possibly its WNID.
func (c *Client) ReplaceSynset(wnid string, synset taxonomy.Synset) error {
	return c.PutTo(c.synsets+"{wnid}/", map[string]interface{}{"wnid": wnid},
		synsetBody(synset),
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrSynsetExists{WNID: synset.WNID})
}

// DeleteSynset removes a synset, its images, and its incident hyponym
// edges.
func (c *Client) DeleteSynset(wnid string) error {
	return c.DeleteAt(c.synsets+"{wnid}/", map[string]interface{}{"wnid": wnid},
		taxonomy.ErrNoSuchSynset{WNID: wnid})
}

// Hyponyms returns one page of the synsets wnid points at, in the
// order the edges were added.
func (c *Client) Hyponyms(wnid string, start int) ([]taxonomy.Synset, bool, error) {
	var doc document
	vars := pageVars(start)
	vars["wnid"] = wnid
	err := c.GetFrom(c.synsets+"{wnid}/hyponyms/{?start}", vars, &doc,
		taxonomy.ErrNoSuchSynset{WNID: wnid})
	if err != nil {
		return nil, false, err
	}
	synsets, err := decodeSynsetItems(doc)
	if err != nil {
		return nil, false, err
	}
	_, more := doc.control("next")
	return synsets, more, nil
}

// Hyponym retrieves the synset hyponym, but only if the edge
// wnid->hyponym exists.
func (c *Client) Hyponym(wnid, hyponym string) (taxonomy.Synset, error) {
	var doc document
	err := c.GetFrom(c.synsets+"{wnid}/hyponyms/{hyponym}/",
		map[string]interface{}{"wnid": wnid, "hyponym": hyponym}, &doc,
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrNoSuchHyponym{WNID: wnid, Hyponym: hyponym})
	if err != nil {
		return taxonomy.Synset{}, err
	}
	return decodeSynset(map[string]interface{}(doc))
}

// AddHyponym appends the edge wnid->hyponym to the relation.
func (c *Client) AddHyponym(wnid, hyponym string) error {
	return c.PostTo(c.synsets+"{wnid}/hyponyms/",
		map[string]interface{}{"wnid": wnid},
		map[string]interface{}{"wnid": hyponym},
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrNoSuchSynset{WNID: hyponym},
		taxonomy.ErrHyponymExists{WNID: wnid, Hyponym: hyponym})
}

// RemoveHyponym removes the edge wnid->hyponym.  Neither synset is
// deleted.
func (c *Client) RemoveHyponym(wnid, hyponym string) error {
	return c.DeleteAt(c.synsets+"{wnid}/hyponyms/{hyponym}/",
		map[string]interface{}{"wnid": wnid, "hyponym": hyponym},
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrNoSuchHyponym{WNID: wnid, Hyponym: hyponym})
}

// decodeImage converts one document or collection item into an image.
func decodeImage(item interface{}) (image taxonomy.Image, err error) {
	err = mapstructure.Decode(item, &image)
	return
}

// Images returns one page of the images wnid owns, ordered by ImageNet
// ID.
func (c *Client) Images(wnid string, start int) ([]taxonomy.Image, bool, error) {
	var doc document
	vars := pageVars(start)
	vars["wnid"] = wnid
	err := c.GetFrom(c.synsets+"{wnid}/images/{?start}", vars, &doc,
		taxonomy.ErrNoSuchSynset{WNID: wnid})
	if err != nil {
		return nil, false, err
	}
	raw, _ := doc["items"].([]interface{})
	images := make([]taxonomy.Image, 0, len(raw))
	for _, item := range raw {
		image, err := decodeImage(item)
		if err != nil {
			return nil, false, err
		}
		images = append(images, image)
	}
	_, more := doc.control("next")
	return images, more, nil
}

// Image retrieves one image by IMID, scoped to its owning synset.
func (c *Client) Image(wnid string, imid int) (taxonomy.Image, error) {
	var doc document
	err := c.GetFrom(c.synsets+"{wnid}/images/{imid}/",
		map[string]interface{}{"wnid": wnid, "imid": strconv.Itoa(imid)}, &doc,
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid})
	if err != nil {
		return taxonomy.Image{}, err
	}
	return decodeImage(map[string]interface{}(doc))
}

// CreateImage adds a new image owned by wnid.
func (c *Client) CreateImage(wnid string, image taxonomy.Image) error {
	return c.PostTo(c.synsets+"{wnid}/images/",
		map[string]interface{}{"wnid": wnid}, imageBody(image),
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrImageExists{IMID: image.IMID})
}

// ReplaceImage replaces every field of the image currently known as
// imid under wnid, including possibly its IMID.
func (c *Client) ReplaceImage(wnid string, imid int, image taxonomy.Image) error {
	return c.PutTo(c.synsets+"{wnid}/images/{imid}/",
		map[string]interface{}{"wnid": wnid, "imid": strconv.Itoa(imid)}, imageBody(image),
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid},
		taxonomy.ErrImageExists{IMID: image.IMID})
}

// DeleteImage removes one image.
func (c *Client) DeleteImage(wnid string, imid int) error {
	return c.DeleteAt(c.synsets+"{wnid}/images/{imid}/",
		map[string]interface{}{"wnid": wnid, "imid": strconv.Itoa(imid)},
		taxonomy.ErrNoSuchSynset{WNID: wnid},
		taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid})
}

// synsetBody builds the JSON payload for synset writes.
func synsetBody(synset taxonomy.Synset) map[string]interface{} {
	return map[string]interface{}{
		"wnid":  synset.WNID,
		"words": synset.Words,
		"gloss": synset.Gloss,
	}
}

// imageBody builds the JSON payload for image writes.
func imageBody(image taxonomy.Image) map[string]interface{} {
	return map[string]interface{}{
		"imid": image.IMID,
		"url":  image.URL,
		"date": image.Date,
	}
}
