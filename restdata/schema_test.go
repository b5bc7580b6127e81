package restdata

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynsetSchemaValid(t *testing.T) {
	err := SynsetSchema().Validate(map[string]interface{}{
		"wnid":  "n00001930",
		"words": "physical entity",
		"gloss": "an entity that has physical existence",
	})
	assert.NoError(t, err)
}

func TestSynsetSchemaMissingField(t *testing.T) {
	err := SynsetSchema().Validate(map[string]interface{}{
		"wnid":  "n00001930",
		"words": "physical entity",
	})
	if assert.Error(t, err) {
		errS, ok := err.(ErrorStatus)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, errS.HTTPStatus())
		}
		assert.Contains(t, err.Error(), "gloss")
	}
}

func TestSynsetSchemaWrongType(t *testing.T) {
	err := SynsetSchema().Validate(map[string]interface{}{
		"wnid":  17,
		"words": "physical entity",
		"gloss": "an entity that has physical existence",
	})
	assert.Error(t, err)
}

func TestSynsetIdentifierSchema(t *testing.T) {
	err := SynsetIdentifierSchema().Validate(map[string]interface{}{
		"wnid": "n00001930",
	})
	assert.NoError(t, err)

	err = SynsetIdentifierSchema().Validate(map[string]interface{}{})
	assert.Error(t, err)
}

func TestImageSchema(t *testing.T) {
	err := ImageSchema().Validate(map[string]interface{}{
		"imid": 1,
		"url":  "http://images.example.com/img.jpg",
	})
	assert.NoError(t, err)

	// The date is optional but the IMID must be numeric.
	err = ImageSchema().Validate(map[string]interface{}{
		"imid": "1",
		"url":  "http://images.example.com/img.jpg",
	})
	assert.Error(t, err)
}
