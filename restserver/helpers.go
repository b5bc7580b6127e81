package restserver

// This file contains various URL-building helpers.  Handler code never
// concatenates URL strings by hand: canonical URLs come from the named
// mux routes, and pagination offsets are applied through a URI
// template.

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jtacoma/uritemplates"
)

type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

// buildURLs starts a chain of URL constructions sharing one route
// parameter list.  params alternates mux parameter names and values.
// The first error sticks and short-circuits the rest of the chain.
func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	return &urlBuilder{Router: router, Params: params}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

// URL stores the canonical URL for a named route into *out.
func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL(u.Params...)
	}
	if u.Error == nil {
		*out = url.String()
	}
	return u
}

// PageURL stores the URL for a named collection route with a "start"
// pagination offset into *out.  A zero offset is the collection's
// canonical URL with no query string.
func (u *urlBuilder) PageURL(out *string, route string, start int) *urlBuilder {
	u.URL(out, route)
	if u.Error == nil && start > 0 {
		var template *uritemplates.UriTemplate
		template, u.Error = uritemplates.Parse(*out + "{?start}")
		if u.Error == nil {
			*out, u.Error = template.Expand(map[string]interface{}{
				"start": strconv.Itoa(start),
			})
		}
	}
	return u
}
