package restdata

import (
	"errors"
	"net/http"
	"testing"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestWrapStoreError(t *testing.T) {
	tests := []struct {
		Err    error
		Status int
	}{
		{taxonomy.ErrNoSuchSynset{WNID: "n0"}, http.StatusNotFound},
		{taxonomy.ErrNoSuchHyponym{WNID: "n0", Hyponym: "n1"}, http.StatusNotFound},
		{taxonomy.ErrNoSuchImage{WNID: "n0", IMID: 1}, http.StatusNotFound},
		{taxonomy.ErrSynsetExists{WNID: "n0"}, http.StatusConflict},
		{taxonomy.ErrHyponymExists{WNID: "n0", Hyponym: "n1"}, http.StatusConflict},
		{taxonomy.ErrImageExists{IMID: 1}, http.StatusConflict},
	}
	for _, test := range tests {
		wrapped := WrapStoreError(test.Err)
		errS, ok := wrapped.(ErrorStatus)
		if assert.True(t, ok, "%T", test.Err) {
			assert.Equal(t, test.Status, errS.HTTPStatus(), "%T", test.Err)
		}
		// The store's message survives the wrapping.
		assert.Equal(t, test.Err.Error(), wrapped.Error())
	}

	// Anything else passes through untouched.
	assert.NoError(t, WrapStoreError(nil))
	plain := errors.New("disk on fire")
	assert.Equal(t, plain, WrapStoreError(plain))
}

func TestErrorTitle(t *testing.T) {
	assert.Equal(t, "Invalid JSON document", ErrorTitle(http.StatusBadRequest))
	assert.Equal(t, "Not found", ErrorTitle(http.StatusNotFound))
	assert.Equal(t, "Method not allowed", ErrorTitle(http.StatusMethodNotAllowed))
	assert.Equal(t, "Already exists", ErrorTitle(http.StatusConflict))
	assert.Equal(t, "Unsupported media type", ErrorTitle(http.StatusUnsupportedMediaType))
	assert.Equal(t, "Internal Server Error", ErrorTitle(http.StatusInternalServerError))
}
