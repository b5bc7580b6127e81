package restserver

import (
	"net/http"

	"github.com/atheik/imagenet-browser/restdata"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/gorilla/mux"
)

// DefaultPageSize is the fixed number of items per collection page
// unless PopulateRouter is told otherwise.
const DefaultPageSize = 50

// NewRouter creates a new HTTP handler that processes all ImageNet
// browser requests against store.  All resources are under the /api/
// URL path prefix.  For more control over the setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(store taxonomy.Store) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, store, 0)
	return r
}

// PopulateRouter adds browser routes to an existing
// github.com/gorilla/mux router object.  A pageSize of zero or less
// selects DefaultPageSize.
func PopulateRouter(r *mux.Router, store taxonomy.Store, pageSize int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	api := &restAPI{Store: store, Router: r, PageSize: pageSize}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the browser REST API.
type restAPI struct {
	Store    taxonomy.Store
	Router   *mux.Router
	PageSize int
}

// PopulateRouter adds all browser URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateSynset(r)
	api.PopulateHyponym(r)
	api.PopulateImage(r)
	r.Path("/api/").Name("root").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.EntryPoint,
	})
}

// EntryPoint produces the API root document, which only points at the
// synset collection.
func (api *restAPI) EntryPoint(ctx *context) (interface{}, error) {
	body := restdata.NewDocument()
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)
	var href string
	err := buildURLs(api.Router).URL(&href, "synsets").Error
	if err != nil {
		return nil, err
	}
	body.AddControl(restdata.NamespaceName+":synsets-all", href, restdata.Control{
		Title: "All synsets",
	})
	return body, nil
}
