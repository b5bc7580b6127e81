// End-to-end tests, driving a real restserver over a memory store
// through the client.

package restclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atheik/imagenet-browser/memory"
	"github.com/atheik/imagenet-browser/restdata"
	"github.com/atheik/imagenet-browser/restserver"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, pageSize int) (*Client, func()) {
	r := mux.NewRouter()
	restserver.PopulateRouter(r, memory.New(), pageSize)
	server := httptest.NewServer(r)
	c, err := New(server.URL + "/api/")
	if err != nil {
		server.Close()
		t.Fatalf("creating client: %v", err)
	}
	return c, server.Close
}

func addSynset(t *testing.T, c *Client, wnid string) taxonomy.Synset {
	synset := taxonomy.Synset{
		WNID:  wnid,
		Words: "words for " + wnid,
		Gloss: "gloss for " + wnid,
	}
	require.NoError(t, c.CreateSynset(synset))
	return synset
}

func TestNotBrowser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", restdata.JSONMediaType)
			w.Write([]byte("{}"))
		}))
	defer server.Close()

	_, err := New(server.URL + "/")
	assert.Equal(t, ErrNotBrowser{URL: server.URL + "/"}, err)
}

func TestSynsetRoundTrip(t *testing.T) {
	c, done := newTestClient(t, 0)
	defer done()

	created := addSynset(t, c, "n00001930")
	synset, err := c.Synset("n00001930")
	if assert.NoError(t, err) {
		assert.Equal(t, created, synset)
	}

	_, err = c.Synset("n99999999")
	assert.Equal(t, taxonomy.ErrNoSuchSynset{WNID: "n99999999"}, err)

	err = c.CreateSynset(created)
	assert.Equal(t, taxonomy.ErrSynsetExists{WNID: "n00001930"}, err)
}

func TestSynsetRename(t *testing.T) {
	c, done := newTestClient(t, 0)
	defer done()

	addSynset(t, c, "n00001930")
	addSynset(t, c, "n00002137")

	err := c.ReplaceSynset("n00001930", taxonomy.Synset{
		WNID: "n00002137", Words: "clash", Gloss: "clash",
	})
	assert.Equal(t, taxonomy.ErrSynsetExists{WNID: "n00002137"}, err)

	err = c.ReplaceSynset("n00001930", taxonomy.Synset{
		WNID: "n00002000", Words: "renamed", Gloss: "renamed",
	})
	assert.NoError(t, err)

	_, err = c.Synset("n00001930")
	assert.Equal(t, taxonomy.ErrNoSuchSynset{WNID: "n00001930"}, err)
	synset, err := c.Synset("n00002000")
	if assert.NoError(t, err) {
		assert.Equal(t, "renamed", synset.Words)
	}
}

func TestSynsetPagination(t *testing.T) {
	c, done := newTestClient(t, 2)
	defer done()

	for _, wnid := range []string{"n00000003", "n00000001", "n00000002"} {
		addSynset(t, c, wnid)
	}

	synsets, more, err := c.Synsets(0)
	if assert.NoError(t, err) {
		assert.True(t, more)
		if assert.Len(t, synsets, 2) {
			assert.Equal(t, "n00000001", synsets[0].WNID)
			assert.Equal(t, "n00000002", synsets[1].WNID)
		}
	}

	synsets, more, err = c.Synsets(2)
	if assert.NoError(t, err) {
		assert.False(t, more)
		if assert.Len(t, synsets, 1) {
			assert.Equal(t, "n00000003", synsets[0].WNID)
		}
	}
}

func TestHyponymLifetime(t *testing.T) {
	c, done := newTestClient(t, 0)
	defer done()

	addSynset(t, c, "n00001930")
	addSynset(t, c, "n00002137")

	assert.NoError(t, c.AddHyponym("n00001930", "n00002137"))
	assert.Equal(t, taxonomy.ErrHyponymExists{WNID: "n00001930", Hyponym: "n00002137"},
		c.AddHyponym("n00001930", "n00002137"))
	assert.Equal(t, taxonomy.ErrNoSuchSynset{WNID: "n99999999"},
		c.AddHyponym("n00001930", "n99999999"))

	hyponym, err := c.Hyponym("n00001930", "n00002137")
	if assert.NoError(t, err) {
		assert.Equal(t, "n00002137", hyponym.WNID)
	}

	// The edge is directed.
	_, err = c.Hyponym("n00002137", "n00001930")
	assert.Equal(t, taxonomy.ErrNoSuchHyponym{WNID: "n00002137", Hyponym: "n00001930"}, err)

	hyponyms, more, err := c.Hyponyms("n00001930", 0)
	if assert.NoError(t, err) {
		assert.False(t, more)
		if assert.Len(t, hyponyms, 1) {
			assert.Equal(t, "n00002137", hyponyms[0].WNID)
		}
	}

	assert.NoError(t, c.RemoveHyponym("n00001930", "n00002137"))
	assert.Equal(t, taxonomy.ErrNoSuchHyponym{WNID: "n00001930", Hyponym: "n00002137"},
		c.RemoveHyponym("n00001930", "n00002137"))

	// Removing the edge must not remove the synset.
	_, err = c.Synset("n00002137")
	assert.NoError(t, err)
}

func TestImageLifetime(t *testing.T) {
	c, done := newTestClient(t, 0)
	defer done()

	addSynset(t, c, "n00001930")
	image := taxonomy.Image{
		IMID: 42,
		URL:  "http://example.com/42.jpg",
		Date: "2010-07-16",
	}

	assert.NoError(t, c.CreateImage("n00001930", image))
	assert.Equal(t, taxonomy.ErrImageExists{IMID: 42},
		c.CreateImage("n00001930", image))

	got, err := c.Image("n00001930", 42)
	if assert.NoError(t, err) {
		assert.Equal(t, image, got)
	}

	// Renumber the image.
	image.IMID = 43
	assert.NoError(t, c.ReplaceImage("n00001930", 42, image))
	_, err = c.Image("n00001930", 42)
	assert.Equal(t, taxonomy.ErrNoSuchImage{WNID: "n00001930", IMID: 42}, err)

	images, more, err := c.Images("n00001930", 0)
	if assert.NoError(t, err) {
		assert.False(t, more)
		if assert.Len(t, images, 1) {
			assert.Equal(t, 43, images[0].IMID)
		}
	}

	assert.NoError(t, c.DeleteImage("n00001930", 43))
	assert.Equal(t, taxonomy.ErrNoSuchImage{WNID: "n00001930", IMID: 43},
		c.DeleteImage("n00001930", 43))
}

func TestDeleteCascade(t *testing.T) {
	c, done := newTestClient(t, 0)
	defer done()

	addSynset(t, c, "n00001930")
	addSynset(t, c, "n00002137")
	require.NoError(t, c.AddHyponym("n00001930", "n00002137"))

	assert.NoError(t, c.DeleteSynset("n00002137"))
	assert.Equal(t, taxonomy.ErrNoSuchSynset{WNID: "n00002137"},
		c.DeleteSynset("n00002137"))

	_, err := c.Hyponym("n00001930", "n00002137")
	assert.Equal(t, taxonomy.ErrNoSuchHyponym{WNID: "n00001930", Hyponym: "n00002137"}, err)
}
