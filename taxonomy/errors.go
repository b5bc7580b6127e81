package taxonomy

import (
	"fmt"
)

// ErrNoSuchSynset is returned by Store methods that look up a synset
// by WNID but cannot find it.
type ErrNoSuchSynset struct {
	WNID string
}

func (err ErrNoSuchSynset) Error() string {
	return fmt.Sprintf("No synset with WordNet ID of '%s' found", err.WNID)
}

// ErrSynsetExists is returned by Store.CreateSynset() and
// Store.ReplaceSynset() when the requested WNID is already taken by a
// different synset.
type ErrSynsetExists struct {
	WNID string
}

func (err ErrSynsetExists) Error() string {
	return fmt.Sprintf("Synset with WordNet ID of '%s' already exists", err.WNID)
}

// ErrNoSuchHyponym is returned by Store methods that look up a hyponym
// edge that is not in the relation.  The hyponym synset itself may
// well exist; the error only says the edge is absent.
type ErrNoSuchHyponym struct {
	WNID    string
	Hyponym string
}

func (err ErrNoSuchHyponym) Error() string {
	return fmt.Sprintf("No hyponym with WordNet ID of '%s' found for synset with WordNet ID of '%s'", err.Hyponym, err.WNID)
}

// ErrHyponymExists is returned by Store.AddHyponym() when the edge is
// already in the relation.
type ErrHyponymExists struct {
	WNID    string
	Hyponym string
}

func (err ErrHyponymExists) Error() string {
	return fmt.Sprintf("Hyponym with WordNet ID of '%s' already exists for synset with WordNet ID of '%s'", err.Hyponym, err.WNID)
}

// ErrNoSuchImage is returned by Store methods that look up an image by
// IMID under a synset but cannot find it there.
type ErrNoSuchImage struct {
	WNID string
	IMID int
}

func (err ErrNoSuchImage) Error() string {
	return fmt.Sprintf("No image with ImageNet ID of %d found for synset with WordNet ID of '%s'", err.IMID, err.WNID)
}

// ErrImageExists is returned by Store.CreateImage() and
// Store.ReplaceImage() when the requested IMID is already taken.
type ErrImageExists struct {
	IMID int
}

func (err ErrImageExists) Error() string {
	return fmt.Sprintf("Image with ImageNet ID of %d already exists", err.IMID)
}
