package restdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, d *Document) string {
	out, err := json.Marshal(d)
	require.NoError(t, err)
	return string(out)
}

func TestDocumentMarshal(t *testing.T) {
	d := NewDocument()
	assert.Equal(t, "{}", marshal(t, d))

	d.Set("wnid", "n00001930")
	d.Set("words", "physical entity")
	assert.Equal(t,
		"{\"wnid\":\"n00001930\",\"words\":\"physical entity\"}",
		marshal(t, d))
}

func TestDocumentKeyOrder(t *testing.T) {
	// Keys serialize in insertion order, and replacing a value
	// keeps its original position.
	d := NewDocument()
	d.Set("c", 1)
	d.Set("a", 2)
	d.Set("b", 3)
	d.Set("a", 4)
	assert.Equal(t, "{\"c\":1,\"a\":4,\"b\":3}", marshal(t, d))

	value, present := d.Get("a")
	assert.True(t, present)
	assert.Equal(t, 4, value)
	_, present = d.Get("z")
	assert.False(t, present)
}

func TestAddNamespace(t *testing.T) {
	d := NewDocument()
	d.AddNamespace(NamespaceName, LinkRelationsURL)
	assert.Equal(t,
		"{\"@namespaces\":{\"imagenet_browser\":{\"name\":\"/imagenet_browser/link-relations/\"}}}",
		marshal(t, d))
}

func TestAddControl(t *testing.T) {
	d := NewDocument()
	d.AddControl("self", "/api/synsets/n00001930/", Control{})
	d.AddControl("edit", "/api/synsets/n00001930/", Control{
		Method:   "PUT",
		Encoding: "json",
		Title:    "Edit this synset",
		Schema:   SynsetSchema(),
	})

	out := marshal(t, d)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	controls, ok := body["@controls"].(map[string]interface{})
	require.True(t, ok)

	self, ok := controls["self"].(map[string]interface{})
	require.True(t, ok)
	// An empty Control contributes nothing beyond the href.
	assert.Equal(t, map[string]interface{}{"href": "/api/synsets/n00001930/"}, self)

	edit, ok := controls["edit"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "PUT", edit["method"])
	assert.Equal(t, "json", edit["encoding"])
	assert.Equal(t, "Edit this synset", edit["title"])
	schema, ok := edit["schema"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "object", schema["type"])
}

func TestErrorDocument(t *testing.T) {
	d := NewErrorDocument("Not found", "No synset with WordNet ID of 'n0' found", "/api/synsets/n0/")
	out := marshal(t, d)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body))

	assert.Equal(t, "/api/synsets/n0/", body["resource_url"])
	errBlock, ok := body["@error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Not found", errBlock["@message"])
	assert.Equal(t, []interface{}{"No synset with WordNet ID of 'n0' found"}, errBlock["@messages"])

	controls, ok := body["@controls"].(map[string]interface{})
	require.True(t, ok)
	profile, ok := controls["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ErrorProfile, profile["href"])
}
