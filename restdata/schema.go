package restdata

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a JSON Schema document describing the payload of a write
// operation.  Schemas are pure values: the functions below construct
// them fresh on every call, and the same inputs always produce the
// same schema.
type Schema struct {
	Type       string              `json:"type"`
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// Property declares one payload property.
type Property struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// SynsetSchema returns the schema for creating or replacing a synset:
// the WordNet ID, words, and gloss, all required strings.
func SynsetSchema() *Schema {
	return &Schema{
		Type:     "object",
		Required: []string{"wnid", "words", "gloss"},
		Properties: map[string]Property{
			"wnid": {
				Description: "WordNet ID of the synset",
				Type:        "string",
			},
			"words": {
				Description: "Words of the synset",
				Type:        "string",
			},
			"gloss": {
				Description: "Gloss of the synset",
				Type:        "string",
			},
		},
	}
}

// SynsetIdentifierSchema returns the wnid-only variant of
// SynsetSchema.  It is used when linking an existing synset as a
// hyponym, where no new entity is created and only the identifier is
// meaningful.
func SynsetIdentifierSchema() *Schema {
	return &Schema{
		Type:     "object",
		Required: []string{"wnid"},
		Properties: map[string]Property{
			"wnid": {
				Description: "WordNet ID of the synset",
				Type:        "string",
			},
		},
	}
}

// ImageSchema returns the schema for creating or replacing an image:
// a required numeric ImageNet ID and URL, and an optional date.
func ImageSchema() *Schema {
	return &Schema{
		Type:     "object",
		Required: []string{"imid", "url"},
		Properties: map[string]Property{
			"imid": {
				Description: "ImageNet ID of the image",
				Type:        "integer",
			},
			"url": {
				Description: "URL of the image",
				Type:        "string",
			},
			"date": {
				Description: "Date the image was collected",
				Type:        "string",
			},
		},
	}
}

// Validate checks a decoded JSON document against the schema.  On
// failure it returns an ErrBadRequest carrying the validator's
// messages.
func (s *Schema) Validate(document map[string]interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(s),
		gojsonschema.NewGoLoader(document),
	)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return ErrBadRequest{Err: errValidation(strings.Join(details, "; "))}
	}
	return nil
}

// errValidation is a bare validation failure message.
type errValidation string

func (e errValidation) Error() string {
	return string(e)
}
