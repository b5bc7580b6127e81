package restserver

import (
	"strconv"

	"github.com/atheik/imagenet-browser/restdata"
	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
)

// fillImage copies an image's fields into a document.
func fillImage(body *restdata.Document, image taxonomy.Image) {
	body.Set("imid", image.IMID)
	body.Set("url", image.URL)
	body.Set("date", image.Date)
}

// imageItem builds the minimal representation of one image as it
// appears inside a collection.
func (api *restAPI) imageItem(wnid string, image taxonomy.Image) (*restdata.Document, error) {
	item := restdata.NewDocument()
	fillImage(item, image)
	var href string
	err := buildURLs(api.Router, "wnid", wnid, "imid", strconv.Itoa(image.IMID)).
		URL(&href, "image").
		Error
	if err != nil {
		return nil, err
	}
	item.AddControl("self", href, restdata.Control{})
	item.AddControl("profile", restdata.ImageProfile, restdata.Control{})
	return item, nil
}

// decodeImage converts a schema-validated JSON object into an image.
func decodeImage(in map[string]interface{}) (image taxonomy.Image, err error) {
	err = mapstructure.Decode(in, &image)
	if err != nil {
		err = restdata.ErrBadRequest{Err: err}
	}
	return
}

// ImageList gets one page of a synset's images, ordered by ImageNet
// ID.
func (api *restAPI) ImageList(ctx *context) (interface{}, error) {
	start, err := ctx.Start()
	if err != nil {
		return nil, err
	}
	images, more, err := api.Store.Images(ctx.Synset.WNID, start, api.PageSize)
	if err != nil {
		return nil, restdata.WrapStoreError(err)
	}

	body := restdata.NewDocument()
	fillSynset(body, ctx.Synset)
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)
	err = api.paginate(body, "images", []string{"wnid", ctx.Synset.WNID}, start, more)
	if err == nil {
		err = api.addControlAddImage(body, ctx.Synset.WNID)
	}
	var upURL string
	if err == nil {
		err = buildURLs(api.Router, "wnid", ctx.Synset.WNID).URL(&upURL, "synset").Error
	}
	if err != nil {
		return nil, err
	}
	body.AddControl("up", upURL, restdata.Control{})

	items := make([]*restdata.Document, 0, len(images))
	for _, image := range images {
		item, err := api.imageItem(ctx.Synset.WNID, image)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	body.Set("items", items)
	return body, nil
}

// ImagePost creates a new image owned by the synset in the URL.
func (api *restAPI) ImagePost(ctx *context, in map[string]interface{}) (interface{}, error) {
	if err := restdata.ImageSchema().Validate(in); err != nil {
		return nil, err
	}
	image, err := decodeImage(in)
	if err != nil {
		return nil, err
	}
	if err := api.Store.CreateImage(ctx.Synset.WNID, image); err != nil {
		return nil, restdata.WrapStoreError(err)
	}

	var location string
	err = buildURLs(api.Router, "wnid", ctx.Synset.WNID, "imid", strconv.Itoa(image.IMID)).
		URL(&location, "image").
		Error
	if err != nil {
		return nil, err
	}
	return responseCreated{Location: location}, nil
}

// ImageGet retrieves a single image with its edit and delete controls.
func (api *restAPI) ImageGet(ctx *context) (interface{}, error) {
	body := restdata.NewDocument()
	fillImage(body, ctx.Image)
	body.AddNamespace(restdata.NamespaceName, restdata.LinkRelationsURL)

	var selfURL, collectionURL string
	err := buildURLs(api.Router, "wnid", ctx.Synset.WNID, "imid", strconv.Itoa(ctx.Image.IMID)).
		URL(&selfURL, "image").
		URL(&collectionURL, "images").
		Error
	if err != nil {
		return nil, err
	}
	body.AddControl("self", selfURL, restdata.Control{})
	body.AddControl("profile", restdata.ImageProfile, restdata.Control{})
	body.AddControl("collection", collectionURL, restdata.Control{})
	if err = api.addControlEditImage(body, ctx.Synset.WNID, ctx.Image.IMID); err == nil {
		err = api.addControlDeleteImage(body, ctx.Synset.WNID, ctx.Image.IMID)
	}
	return body, err
}

// ImagePut replaces all of an image's fields, possibly renumbering it,
// subject to ImageNet ID uniqueness.
func (api *restAPI) ImagePut(ctx *context, in map[string]interface{}) (interface{}, error) {
	if err := restdata.ImageSchema().Validate(in); err != nil {
		return nil, err
	}
	image, err := decodeImage(in)
	if err != nil {
		return nil, err
	}
	if err := api.Store.ReplaceImage(ctx.Synset.WNID, ctx.Image.IMID, image); err != nil {
		return nil, restdata.WrapStoreError(err)
	}
	return nil, nil
}

// ImageDelete removes one image.
func (api *restAPI) ImageDelete(ctx *context) (interface{}, error) {
	err := api.Store.DeleteImage(ctx.Synset.WNID, ctx.Image.IMID)
	return nil, restdata.WrapStoreError(err)
}

// PopulateImage adds the image routes to a router.
func (api *restAPI) PopulateImage(r *mux.Router) {
	r.Path("/api/synsets/{wnid}/images/").Name("images").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.ImageList,
		Post:    api.ImagePost,
	})
	r.Path("/api/synsets/{wnid}/images/{imid:[0-9]+}/").Name("image").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.ImageGet,
		Put:     api.ImagePut,
		Delete:  api.ImageDelete,
	})
}
