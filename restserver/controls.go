package restserver

// This file contains the domain control vocabulary: one function per
// named affordance the API advertises.  Each one is a thin composition
// of route-URL resolution and Document.AddControl; no validation or
// storage logic lives here.

import (
	"strconv"

	"github.com/atheik/imagenet-browser/restdata"
)

func (api *restAPI) addControlAddSynset(body *restdata.Document) error {
	var href string
	err := buildURLs(api.Router).URL(&href, "synsets").Error
	if err != nil {
		return err
	}
	body.AddControl(restdata.NamespaceName+":add_synset", href, restdata.Control{
		Method:   "POST",
		Encoding: "json",
		Title:    "Add a new synset",
		Schema:   restdata.SynsetSchema(),
	})
	return nil
}

func (api *restAPI) addControlEditSynset(body *restdata.Document, wnid string) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid).URL(&href, "synset").Error
	if err != nil {
		return err
	}
	body.AddControl("edit", href, restdata.Control{
		Method:   "PUT",
		Encoding: "json",
		Title:    "Edit this synset",
		Schema:   restdata.SynsetSchema(),
	})
	return nil
}

func (api *restAPI) addControlDeleteSynset(body *restdata.Document, wnid string) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid).URL(&href, "synset").Error
	if err != nil {
		return err
	}
	body.AddControl(restdata.NamespaceName+":delete", href, restdata.Control{
		Method: "DELETE",
		Title:  "Delete this synset",
	})
	return nil
}

func (api *restAPI) addControlAddHyponym(body *restdata.Document, wnid string) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid).URL(&href, "hyponyms").Error
	if err != nil {
		return err
	}
	body.AddControl(restdata.NamespaceName+":add_hyponym", href, restdata.Control{
		Method:   "POST",
		Encoding: "json",
		Title:    "Add a new hyponym",
		Schema:   restdata.SynsetIdentifierSchema(),
	})
	return nil
}

func (api *restAPI) addControlDeleteHyponym(body *restdata.Document, wnid, hyponym string) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid, "hyponym", hyponym).URL(&href, "hyponym").Error
	if err != nil {
		return err
	}
	body.AddControl(restdata.NamespaceName+":delete", href, restdata.Control{
		Method: "DELETE",
		Title:  "Delete this hyponym",
	})
	return nil
}

func (api *restAPI) addControlAddImage(body *restdata.Document, wnid string) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid).URL(&href, "images").Error
	if err != nil {
		return err
	}
	body.AddControl(restdata.NamespaceName+":add_image", href, restdata.Control{
		Method:   "POST",
		Encoding: "json",
		Title:    "Add a new image",
		Schema:   restdata.ImageSchema(),
	})
	return nil
}

func (api *restAPI) addControlEditImage(body *restdata.Document, wnid string, imid int) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid, "imid", strconv.Itoa(imid)).URL(&href, "image").Error
	if err != nil {
		return err
	}
	body.AddControl("edit", href, restdata.Control{
		Method:   "PUT",
		Encoding: "json",
		Title:    "Edit this image",
		Schema:   restdata.ImageSchema(),
	})
	return nil
}

func (api *restAPI) addControlDeleteImage(body *restdata.Document, wnid string, imid int) error {
	var href string
	err := buildURLs(api.Router, "wnid", wnid, "imid", strconv.Itoa(imid)).URL(&href, "image").Error
	if err != nil {
		return err
	}
	body.AddControl(restdata.NamespaceName+":delete", href, restdata.Control{
		Method: "DELETE",
		Title:  "Delete this image",
	})
	return nil
}
