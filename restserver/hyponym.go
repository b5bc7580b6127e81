package restserver

import (
	"github.com/atheik/imagenet-browser/restdata"
	"github.com/gorilla/mux"
)

// HyponymList gets one page of a synset's hyponyms, in the order the
// edges were added.  The document carries the owning synset's fields
// alongside the items.
func (api *restAPI) HyponymList(ctx *context) (interface{}, error) {
	start, err := ctx.Start()
	if err != nil {
		return nil, err
	}
	hyponyms, more, err := api.Store.Hyponyms(ctx.Synset.WNID, start, api.PageSize)
	if err != nil {
		return nil, restdata.WrapStoreError(err)
	}

	body := restdata.NewDocument()
	fillSynset(body, ctx.Synset)
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)
	err = api.paginate(body, "hyponyms", []string{"wnid", ctx.Synset.WNID}, start, more)
	if err == nil {
		err = api.addControlAddHyponym(body, ctx.Synset.WNID)
	}
	var upURL string
	if err == nil {
		err = buildURLs(api.Router, "wnid", ctx.Synset.WNID).URL(&upURL, "synset").Error
	}
	if err != nil {
		return nil, err
	}
	body.AddControl("up", upURL, restdata.Control{})

	items := make([]*restdata.Document, 0, len(hyponyms))
	for _, hyponym := range hyponyms {
		item, err := api.synsetItem(hyponym)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	body.Set("items", items)
	return body, nil
}

// HyponymPost attaches an existing synset as a hyponym.  The request
// body names the target by WordNet ID only; no new synset is ever
// created here.
func (api *restAPI) HyponymPost(ctx *context, in map[string]interface{}) (interface{}, error) {
	if err := restdata.SynsetIdentifierSchema().Validate(in); err != nil {
		return nil, err
	}
	hyponym := in["wnid"].(string)
	if err := api.Store.AddHyponym(ctx.Synset.WNID, hyponym); err != nil {
		return nil, restdata.WrapStoreError(err)
	}

	var location string
	err := buildURLs(api.Router, "wnid", ctx.Synset.WNID, "hyponym", hyponym).
		URL(&location, "hyponym").
		Error
	if err != nil {
		return nil, err
	}
	return responseCreated{Location: location}, nil
}

// HyponymGet retrieves one hyponym of a synset.  The context has
// already established that the edge exists.
func (api *restAPI) HyponymGet(ctx *context) (interface{}, error) {
	body := restdata.NewDocument()
	fillSynset(body, ctx.Hyponym)
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)

	var selfURL, collectionURL, synsetURL string
	err := buildURLs(api.Router, "wnid", ctx.Synset.WNID, "hyponym", ctx.Hyponym.WNID).
		URL(&selfURL, "hyponym").
		URL(&collectionURL, "hyponyms").
		Error
	if err == nil {
		err = buildURLs(api.Router, "wnid", ctx.Hyponym.WNID).
			URL(&synsetURL, "synset").
			Error
	}
	if err != nil {
		return nil, err
	}
	body.AddControl("self", selfURL, restdata.Control{})
	body.AddControl("profile", restdata.SynsetProfile, restdata.Control{})
	body.AddControl("collection", collectionURL, restdata.Control{})
	// The hyponym is itself a synset; point at its full resource.
	body.AddControl(restdata.NamespaceName+":synset", synsetURL, restdata.Control{})
	return body, api.addControlDeleteHyponym(body, ctx.Synset.WNID, ctx.Hyponym.WNID)
}

// HyponymDelete removes the edge.  Neither synset is deleted.
func (api *restAPI) HyponymDelete(ctx *context) (interface{}, error) {
	err := api.Store.RemoveHyponym(ctx.Synset.WNID, ctx.Hyponym.WNID)
	return nil, restdata.WrapStoreError(err)
}

// PopulateHyponym adds the hyponym routes to a router.
func (api *restAPI) PopulateHyponym(r *mux.Router) {
	r.Path("/api/synsets/{wnid}/hyponyms/").Name("hyponyms").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.HyponymList,
		Post:    api.HyponymPost,
	})
	r.Path("/api/synsets/{wnid}/hyponyms/{hyponym}/").Name("hyponym").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.HyponymGet,
		Delete:  api.HyponymDelete,
	})
}
