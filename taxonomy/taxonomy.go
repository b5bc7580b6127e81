// Package taxonomy defines an abstract API to the synset taxonomy.
//
// The taxonomy is the WordNet-style concept hierarchy that backs the
// ImageNet browser: synsets identified by WordNet ID, a directed
// hyponym relation between them, and the images each synset owns.
// Applications will know of specific implementations of this API, such
// as the memory or postgres packages, and will get a Store from that
// implementation.
//
// Stores own all persisted state.  Callers receive value copies of
// entities; mutating a returned Synset or Image has no effect on the
// store.  All mutations are atomic: a failed operation, including a
// uniqueness violation, leaves no partial state behind.
package taxonomy

// Synset is a single concept node.  Its WordNet ID is the unique
// business key; by convention these look like "n00001930" but the
// store does not enforce the format.  A synset can be renamed by
// replacing it with a different WNID, subject to uniqueness; its
// images and hyponym edges follow the rename.
type Synset struct {
	// WNID is the WordNet ID of this synset.
	WNID string

	// Words holds the display label, a comma-separated list of
	// words naming the concept.
	Words string

	// Gloss holds the human-readable description.
	Gloss string
}

// Image is descriptive metadata for one image associated with a
// synset.  Images do not carry pixel data, only their source URL.
// Every image belongs to exactly one synset and is deleted with it.
type Image struct {
	// IMID is the numeric image ID, unique across the entire store.
	IMID int

	// URL is the location of the image content.
	URL string

	// Date is the free-form date the image was collected, if known.
	Date string
}

// Stats summarizes entity counts across a store.  It is cheap enough
// to poll periodically; the daemon exports it as Prometheus gauges.
type Stats struct {
	Synsets  int
	Hyponyms int
	Images   int
}

// Store is the principal interface to taxonomy storage.
//
// The paginating calls (Synsets, Hyponyms, Images) skip the first
// start entries and return at most limit entries in a fixed order;
// their second return value reports whether further entries remain
// past the returned page.  A start beyond the end of the collection
// yields an empty page and no error.
type Store interface {
	// Synsets returns a page of all synsets ordered by WNID.
	Synsets(start, limit int) ([]Synset, bool, error)

	// Synset retrieves one synset by its WNID.  If no synset
	// exists with that WNID, returns an instance of ErrNoSuchSynset.
	Synset(wnid string) (Synset, error)

	// CreateSynset adds a new synset.  If a synset with the same
	// WNID already exists, returns an instance of ErrSynsetExists.
	CreateSynset(synset Synset) error

	// ReplaceSynset replaces every field of the synset currently
	// known as wnid, including possibly its WNID.  Returns
	// ErrNoSuchSynset if wnid does not exist, or ErrSynsetExists
	// if the replacement WNID collides with a different synset.
	ReplaceSynset(wnid string, synset Synset) error

	// DeleteSynset removes a synset, all of its images, and every
	// hyponym edge in which it participates, in either direction.
	// Returns ErrNoSuchSynset if wnid does not exist.
	DeleteSynset(wnid string) error

	// Hyponyms returns a page of the synsets wnid points at, in
	// the order the edges were added.
	Hyponyms(wnid string, start, limit int) ([]Synset, bool, error)

	// Hyponym retrieves the synset hyponym, but only if the edge
	// wnid->hyponym exists.  Membership is decided by comparing
	// WNIDs, never by object identity.  Returns ErrNoSuchSynset if
	// wnid does not exist, or ErrNoSuchHyponym if the edge is
	// absent (even when the hyponym synset itself exists).
	Hyponym(wnid, hyponym string) (Synset, error)

	// AddHyponym appends the edge wnid->hyponym to the relation.
	// Both synsets must already exist; the edge must not.  Returns
	// ErrNoSuchSynset or ErrHyponymExists accordingly.  Adding an
	// edge never creates a synset.
	AddHyponym(wnid, hyponym string) error

	// RemoveHyponym removes the edge wnid->hyponym.  Neither
	// synset is deleted.  Returns ErrNoSuchSynset if wnid does not
	// exist, or ErrNoSuchHyponym if the edge is absent.
	RemoveHyponym(wnid, hyponym string) error

	// Images returns a page of the images wnid owns, ordered by
	// IMID.
	Images(wnid string, start, limit int) ([]Image, bool, error)

	// Image retrieves one image by IMID, scoped to its owning
	// synset.  Returns ErrNoSuchSynset if wnid does not exist,
	// or ErrNoSuchImage if wnid owns no image with that IMID.
	Image(wnid string, imid int) (Image, error)

	// CreateImage adds a new image owned by wnid.  Returns
	// ErrNoSuchSynset if wnid does not exist, or ErrImageExists if
	// the IMID is already taken.
	CreateImage(wnid string, image Image) error

	// ReplaceImage replaces every field of the image currently
	// known as imid under wnid, including possibly its IMID.
	// Returns ErrNoSuchSynset, ErrNoSuchImage, or ErrImageExists
	// as appropriate.
	ReplaceImage(wnid string, imid int, image Image) error

	// DeleteImage removes one image.  Returns ErrNoSuchSynset or
	// ErrNoSuchImage as appropriate.
	DeleteImage(wnid string, imid int) error

	// Stats counts the entities currently in the store.
	Stats() (Stats, error)
}
