// Package restserver publishes a taxonomy store as a Mason hypermedia
// REST service.
//
// The complete wire format is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API: clients are expected to start at the entry point and
// follow the embedded hypermedia controls.
//
// MIME Types
//
// Success and error bodies are served as
//
//     application/vnd.mason+json
//
// Request bodies may be sent as that type, application/json, or
// text/json.
//
// URL Scheme
//
// Resources follow the natural hierarchy: a synset is addressed by
// its WordNet ID, and its hyponym edges and images nest under it.
// The following URLs are defined:
//
//     /api/
//     /api/synsets/
//     /api/synsets/{wnid}/
//     /api/synsets/{wnid}/hyponyms/
//     /api/synsets/{wnid}/hyponyms/{hyponym}/
//     /api/synsets/{wnid}/images/
//     /api/synsets/{wnid}/images/{imid}/
//
// The three collection resources paginate with a "start" query
// parameter, a non-negative offset into the collection; "prev" and
// "next" controls appear on pages that have somewhere to go.
package restserver
