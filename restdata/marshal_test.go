package restdata

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		ContentType string
		Body        string
		Status      int
	}{
		{JSONMediaType, "{\"wnid\": \"n00001930\"}", http.StatusOK},
		{"text/json", "{}", http.StatusOK},
		{MasonMediaType, "{}", http.StatusOK},
		{JSONMediaType + "; charset=utf-8", "{}", http.StatusOK},
		{"", "{}", http.StatusUnsupportedMediaType},
		{"text/plain", "{}", http.StatusUnsupportedMediaType},
		{"application/x-www-form-urlencoded", "wnid=n0", http.StatusUnsupportedMediaType},
		{"not a media type", "{}", http.StatusBadRequest},
		{JSONMediaType, "{\"wnid\": ", http.StatusBadRequest},
	}
	for _, test := range tests {
		var out map[string]interface{}
		err := Decode(test.ContentType, strings.NewReader(test.Body), &out)
		if test.Status == http.StatusOK {
			assert.NoError(t, err, "Content-Type %q", test.ContentType)
		} else if assert.Error(t, err, "Content-Type %q", test.ContentType) {
			errS, ok := err.(ErrorStatus)
			if assert.True(t, ok, "Content-Type %q", test.ContentType) {
				assert.Equal(t, test.Status, errS.HTTPStatus(),
					"Content-Type %q", test.ContentType)
			}
		}
	}
}

func TestDecodeFields(t *testing.T) {
	var out map[string]interface{}
	err := Decode(JSONMediaType,
		strings.NewReader("{\"wnid\": \"n00001930\", \"words\": \"entity\"}"),
		&out)
	if assert.NoError(t, err) {
		assert.Equal(t, "n00001930", out["wnid"])
		assert.Equal(t, "entity", out["words"])
	}
}
