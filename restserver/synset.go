package restserver

import (
	"github.com/atheik/imagenet-browser/restdata"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
)

// fillSynset copies a synset's fields into a document.
func fillSynset(body *restdata.Document, synset taxonomy.Synset) {
	body.Set("wnid", synset.WNID)
	body.Set("words", synset.Words)
	body.Set("gloss", synset.Gloss)
}

// synsetItem builds the minimal representation of one synset as it
// appears inside a collection: its fields plus self and profile
// controls.
func (api *restAPI) synsetItem(synset taxonomy.Synset) (*restdata.Document, error) {
	item := restdata.NewDocument()
	fillSynset(item, synset)
	var href string
	err := buildURLs(api.Router, "wnid", synset.WNID).URL(&href, "synset").Error
	if err != nil {
		return nil, err
	}
	item.AddControl("self", href, restdata.Control{})
	item.AddControl("profile", restdata.SynsetProfile, restdata.Control{})
	return item, nil
}

// paginate adds self, prev, and next controls for a collection page.
// prev appears only when there is a full page before this one, and
// next only when entries remain past it.
func (api *restAPI) paginate(body *restdata.Document, route string, params []string, start int, more bool) error {
	var href string
	u := buildURLs(api.Router, params...)
	if u.PageURL(&href, route, start); u.Error == nil {
		body.AddControl("self", href, restdata.Control{})
	}
	if start >= api.PageSize {
		if u.PageURL(&href, route, start-api.PageSize); u.Error == nil {
			body.AddControl("prev", href, restdata.Control{Title: "Previous page"})
		}
	}
	if more {
		if u.PageURL(&href, route, start+api.PageSize); u.Error == nil {
			body.AddControl("next", href, restdata.Control{Title: "Next page"})
		}
	}
	return u.Error
}

// decodeSynset converts a schema-validated JSON object into a synset.
func decodeSynset(in map[string]interface{}) (synset taxonomy.Synset, err error) {
	err = mapstructure.Decode(in, &synset)
	if err != nil {
		err = restdata.ErrBadRequest{Err: err}
	}
	return
}

// SynsetList gets one page of all synsets, ordered by WordNet ID.
func (api *restAPI) SynsetList(ctx *context) (interface{}, error) {
	start, err := ctx.Start()
	if err != nil {
		return nil, err
	}
	synsets, more, err := api.Store.Synsets(start, api.PageSize)
	if err != nil {
		return nil, err
	}

	body := restdata.NewDocument()
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)
	err = api.paginate(body, "synsets", nil, start, more)
	if err == nil {
		err = api.addControlAddSynset(body)
	}
	if err != nil {
		return nil, err
	}

	items := make([]*restdata.Document, 0, len(synsets))
	for _, synset := range synsets {
		item, err := api.synsetItem(synset)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	body.Set("items", items)
	return body, nil
}

// SynsetPost creates a new synset.
func (api *restAPI) SynsetPost(ctx *context, in map[string]interface{}) (interface{}, error) {
	if err := restdata.SynsetSchema().Validate(in); err != nil {
		return nil, err
	}
	synset, err := decodeSynset(in)
	if err != nil {
		return nil, err
	}
	if err := api.Store.CreateSynset(synset); err != nil {
		return nil, restdata.WrapStoreError(err)
	}

	var location string
	err = buildURLs(api.Router, "wnid", synset.WNID).URL(&location, "synset").Error
	if err != nil {
		return nil, err
	}
	return responseCreated{Location: location}, nil
}

// SynsetGet retrieves a single synset with its edit and delete
// controls and links to its hyponym and image sub-collections.
func (api *restAPI) SynsetGet(ctx *context) (interface{}, error) {
	body := restdata.NewDocument()
	fillSynset(body, ctx.Synset)
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)

	var selfURL, collectionURL, imagesURL, hyponymsURL string
	err := buildURLs(api.Router, "wnid", ctx.Synset.WNID).
		URL(&selfURL, "synset").
		URL(&collectionURL, "synsets").
		URL(&imagesURL, "images").
		URL(&hyponymsURL, "hyponyms").
		Error
	if err != nil {
		return nil, err
	}
	body.AddControl("self", selfURL, restdata.Control{})
	body.AddControl("profile", restdata.SynsetProfile, restdata.Control{})
	body.AddControl("collection", collectionURL, restdata.Control{})
	if err = api.addControlEditSynset(body, ctx.Synset.WNID); err == nil {
		err = api.addControlDeleteSynset(body, ctx.Synset.WNID)
	}
	if err != nil {
		return nil, err
	}
	body.AddControl(restdata.NamespaceName+":synsetimagecollection", imagesURL, restdata.Control{})
	body.AddControl(restdata.NamespaceName+":synsethyponymcollection", hyponymsURL, restdata.Control{})
	return body, nil
}

// SynsetPut replaces all of a synset's fields, possibly renaming it,
// subject to WordNet ID uniqueness.
func (api *restAPI) SynsetPut(ctx *context, in map[string]interface{}) (interface{}, error) {
	if err := restdata.SynsetSchema().Validate(in); err != nil {
		return nil, err
	}
	synset, err := decodeSynset(in)
	if err != nil {
		return nil, err
	}
	if err := api.Store.ReplaceSynset(ctx.Synset.WNID, synset); err != nil {
		return nil, restdata.WrapStoreError(err)
	}
	return nil, nil
}

// SynsetDelete removes a synset, cascading to its images and incident
// hyponym edges.
func (api *restAPI) SynsetDelete(ctx *context) (interface{}, error) {
	err := api.Store.DeleteSynset(ctx.Synset.WNID)
	return nil, restdata.WrapStoreError(err)
}

// PopulateSynset adds the synset routes to a router.
func (api *restAPI) PopulateSynset(r *mux.Router) {
	r.Path("/api/synsets/").Name("synsets").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.SynsetList,
		Post:    api.SynsetPost,
	})
	r.Path("/api/synsets/{wnid}/").Name("synset").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.SynsetGet,
		Put:     api.SynsetPut,
		Delete:  api.SynsetDelete,
	})
}
