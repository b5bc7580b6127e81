package restserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/atheik/imagenet-browser/restdata"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/gorilla/mux"
)

// context holds all of the information and objects that can be
// extracted from URL parameters.
type context struct {
	// Synset is the synset the URL names, if the route has a
	// {wnid} parameter.
	Synset taxonomy.Synset

	// Hyponym is the target of the hyponym edge the URL names, if
	// the route has a {hyponym} parameter.  It is only resolved if
	// the edge Synset->Hyponym actually exists; a synset that is
	// not a member of the relation produces a not-found error even
	// when it exists on its own.
	Hyponym taxonomy.Synset

	// Image is the image the URL names, if the route has an {imid}
	// parameter.  The owning synset is always resolved first, so a
	// missing synset reports the synset, not the image.
	Image taxonomy.Image

	QueryParams url.Values
}

func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	ctx = &context{}
	ctx.QueryParams = req.URL.Query()
	vars := mux.Vars(req)

	var present bool
	var wnid, hyponym, imid string

	if wnid, present = vars["wnid"]; present && err == nil {
		ctx.Synset, err = api.Store.Synset(wnid)
		err = restdata.WrapStoreError(err)
	}

	if hyponym, present = vars["hyponym"]; present && err == nil {
		ctx.Hyponym, err = api.Store.Hyponym(ctx.Synset.WNID, hyponym)
		err = restdata.WrapStoreError(err)
	}

	if imid, present = vars["imid"]; present && err == nil {
		// The route pattern only admits digits here.
		var n int
		n, err = strconv.Atoi(imid)
		if err == nil {
			ctx.Image, err = api.Store.Image(ctx.Synset.WNID, n)
			err = restdata.WrapStoreError(err)
		}
	}

	return
}

// Start parses the "start" pagination query parameter.  Absent means
// zero; anything but a non-negative integer is a bad request.
func (ctx *context) Start() (int, error) {
	param := ctx.QueryParams.Get("start")
	if param == "" {
		return 0, nil
	}
	start, err := strconv.Atoi(param)
	if err != nil || start < 0 {
		return 0, restdata.ErrBadRequest{
			Err: fmt.Errorf("Query parameter 'start' must be a non-negative integer, not '%s'", param),
		}
	}
	return start, nil
}
