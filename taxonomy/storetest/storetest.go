// Package storetest provides generic functional tests for the
// taxonomy.Store interface.  A typical backend test module needs to
// wrap Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/atheik/imagenet-browser/taxonomy/storetest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct {
//             storetest.Suite
//     }
//
//     // SetupSuite does global setup for the test suite.
//     func (s *Suite) SetupSuite() {
//             s.Factory = func() (taxonomy.Store, error) {
//                     return New(), nil
//             }
//     }
//
//     // TestStore runs the generic store tests.
//     func TestStore(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package storetest

import (
	"fmt"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic taxonomy backend test suite.
type Suite struct {
	suite.Suite

	// Factory creates an empty store.  It is called once per test
	// and must be set by the importing package before the suite
	// runs.
	Factory func() (taxonomy.Store, error)

	// Store contains the store under test for the current test.
	Store taxonomy.Store
}

// SetupTest creates a fresh store for every test.
func (s *Suite) SetupTest() {
	store, err := s.Factory()
	s.Require().NoError(err)
	s.Store = store
}

// addSynset creates a synset with generated words and gloss, failing
// the test on error.
func (s *Suite) addSynset(wnid string) taxonomy.Synset {
	synset := taxonomy.Synset{
		WNID:  wnid,
		Words: "words for " + wnid,
		Gloss: "gloss for " + wnid,
	}
	s.Require().NoError(s.Store.CreateSynset(synset))
	return synset
}

// TestSynsetTrivial creates one synset and retrieves it.
func (s *Suite) TestSynsetTrivial() {
	created := s.addSynset("n00001740")

	synset, err := s.Store.Synset("n00001740")
	if s.NoError(err) {
		s.Equal(created, synset)
	}
}

// TestSynsetAbsent checks the error returned for a missing synset.
func (s *Suite) TestSynsetAbsent() {
	_, err := s.Store.Synset("n99999999")
	s.Equal(taxonomy.ErrNoSuchSynset{WNID: "n99999999"}, err)
}

// TestSynsetDuplicate checks that creating the same WNID twice fails
// and leaves the original untouched.
func (s *Suite) TestSynsetDuplicate() {
	s.addSynset("n00001740")

	err := s.Store.CreateSynset(taxonomy.Synset{
		WNID:  "n00001740",
		Words: "something else",
		Gloss: "entirely",
	})
	s.Equal(taxonomy.ErrSynsetExists{WNID: "n00001740"}, err)

	synset, err := s.Store.Synset("n00001740")
	if s.NoError(err) {
		s.Equal("words for n00001740", synset.Words)
	}
}

// TestSynsetOrdering checks that listing is ordered by WNID regardless
// of insertion order, and that pagination windows line up.
func (s *Suite) TestSynsetOrdering() {
	s.addSynset("n00002137")
	s.addSynset("n00001740")
	s.addSynset("n00001930")

	synsets, more, err := s.Store.Synsets(0, 2)
	if s.NoError(err) {
		s.True(more)
		if s.Len(synsets, 2) {
			s.Equal("n00001740", synsets[0].WNID)
			s.Equal("n00001930", synsets[1].WNID)
		}
	}

	synsets, more, err = s.Store.Synsets(2, 2)
	if s.NoError(err) {
		s.False(more)
		if s.Len(synsets, 1) {
			s.Equal("n00002137", synsets[0].WNID)
		}
	}

	synsets, more, err = s.Store.Synsets(3, 2)
	if s.NoError(err) {
		s.False(more)
		s.Len(synsets, 0)
	}
}

// TestSynsetReplace replaces the mutable fields without renaming.
func (s *Suite) TestSynsetReplace() {
	s.addSynset("n00001740")

	err := s.Store.ReplaceSynset("n00001740", taxonomy.Synset{
		WNID:  "n00001740",
		Words: "entity",
		Gloss: "that which is perceived to have its own distinct existence",
	})
	s.NoError(err)

	synset, err := s.Store.Synset("n00001740")
	if s.NoError(err) {
		s.Equal("entity", synset.Words)
	}
}

// TestSynsetRename renames a synset and checks that its images and
// incident edges follow the new WNID.
func (s *Suite) TestSynsetRename() {
	s.addSynset("n00001740")
	s.addSynset("n00001930")
	s.Require().NoError(s.Store.AddHyponym("n00001740", "n00001930"))
	s.Require().NoError(s.Store.CreateImage("n00001930", taxonomy.Image{
		IMID: 1, URL: "http://example.com/1.jpg",
	}))

	err := s.Store.ReplaceSynset("n00001930", taxonomy.Synset{
		WNID:  "n00002000",
		Words: "renamed",
		Gloss: "renamed",
	})
	s.NoError(err)

	_, err = s.Store.Synset("n00001930")
	s.Equal(taxonomy.ErrNoSuchSynset{WNID: "n00001930"}, err)

	_, err = s.Store.Hyponym("n00001740", "n00002000")
	s.NoError(err)

	_, err = s.Store.Image("n00002000", 1)
	s.NoError(err)
}

// TestSynsetRenameConflict checks that renaming onto a taken WNID
// fails and changes nothing.
func (s *Suite) TestSynsetRenameConflict() {
	s.addSynset("n00001740")
	s.addSynset("n00001930")

	err := s.Store.ReplaceSynset("n00001930", taxonomy.Synset{
		WNID:  "n00001740",
		Words: "clash",
		Gloss: "clash",
	})
	s.Equal(taxonomy.ErrSynsetExists{WNID: "n00001740"}, err)

	synset, err := s.Store.Synset("n00001930")
	if s.NoError(err) {
		s.Equal("words for n00001930", synset.Words)
	}
}

// TestSynsetCascade deletes a synset with images and edges in both
// directions and checks that nothing refers to it afterwards.
func (s *Suite) TestSynsetCascade() {
	s.addSynset("n00001740")
	s.addSynset("n00001930")
	s.addSynset("n00002137")
	s.Require().NoError(s.Store.AddHyponym("n00001930", "n00002137"))
	s.Require().NoError(s.Store.AddHyponym("n00001740", "n00001930"))
	s.Require().NoError(s.Store.CreateImage("n00001930", taxonomy.Image{
		IMID: 7, URL: "http://example.com/7.jpg",
	}))

	s.NoError(s.Store.DeleteSynset("n00001930"))

	_, err := s.Store.Synset("n00001930")
	s.Equal(taxonomy.ErrNoSuchSynset{WNID: "n00001930"}, err)

	_, err = s.Store.Hyponym("n00001740", "n00001930")
	s.Equal(taxonomy.ErrNoSuchHyponym{WNID: "n00001740", Hyponym: "n00001930"}, err)

	stats, err := s.Store.Stats()
	if s.NoError(err) {
		s.Equal(taxonomy.Stats{Synsets: 2, Hyponyms: 0, Images: 0}, stats)
	}

	s.Equal(taxonomy.ErrNoSuchSynset{WNID: "n00001930"}, s.Store.DeleteSynset("n00001930"))
}

// TestHyponymLifetime walks an edge through its full lifecycle.
func (s *Suite) TestHyponymLifetime() {
	s.addSynset("n00001930")
	s.addSynset("n00002137")

	s.NoError(s.Store.AddHyponym("n00001930", "n00002137"))
	s.Equal(taxonomy.ErrHyponymExists{WNID: "n00001930", Hyponym: "n00002137"},
		s.Store.AddHyponym("n00001930", "n00002137"))

	hyponym, err := s.Store.Hyponym("n00001930", "n00002137")
	if s.NoError(err) {
		s.Equal("n00002137", hyponym.WNID)
	}

	// The edge is directed; the reverse must not exist.
	_, err = s.Store.Hyponym("n00002137", "n00001930")
	s.Equal(taxonomy.ErrNoSuchHyponym{WNID: "n00002137", Hyponym: "n00001930"}, err)

	s.NoError(s.Store.RemoveHyponym("n00001930", "n00002137"))
	s.Equal(taxonomy.ErrNoSuchHyponym{WNID: "n00001930", Hyponym: "n00002137"},
		s.Store.RemoveHyponym("n00001930", "n00002137"))

	// Removing the edge must not remove the synset.
	_, err = s.Store.Synset("n00002137")
	s.NoError(err)
}

// TestHyponymMissingEndpoints checks that edges cannot dangle.
func (s *Suite) TestHyponymMissingEndpoints() {
	s.addSynset("n00001930")

	s.Equal(taxonomy.ErrNoSuchSynset{WNID: "n00009999"},
		s.Store.AddHyponym("n00009999", "n00001930"))
	s.Equal(taxonomy.ErrNoSuchSynset{WNID: "n00009999"},
		s.Store.AddHyponym("n00001930", "n00009999"))
}

// TestHyponymOrdering checks that pages of the relation preserve
// insertion order.
func (s *Suite) TestHyponymOrdering() {
	s.addSynset("n00001740")
	for i := 0; i < 3; i++ {
		wnid := fmt.Sprintf("n0000200%d", i)
		s.addSynset(wnid)
	}
	s.Require().NoError(s.Store.AddHyponym("n00001740", "n00002002"))
	s.Require().NoError(s.Store.AddHyponym("n00001740", "n00002000"))
	s.Require().NoError(s.Store.AddHyponym("n00001740", "n00002001"))

	hyponyms, more, err := s.Store.Hyponyms("n00001740", 0, 2)
	if s.NoError(err) {
		s.True(more)
		if s.Len(hyponyms, 2) {
			s.Equal("n00002002", hyponyms[0].WNID)
			s.Equal("n00002000", hyponyms[1].WNID)
		}
	}

	hyponyms, more, err = s.Store.Hyponyms("n00001740", 2, 2)
	if s.NoError(err) {
		s.False(more)
		if s.Len(hyponyms, 1) {
			s.Equal("n00002001", hyponyms[0].WNID)
		}
	}
}

// TestImageLifetime walks an image through its full lifecycle.
func (s *Suite) TestImageLifetime() {
	s.addSynset("n00001930")

	image := taxonomy.Image{
		IMID: 42,
		URL:  "http://example.com/42.jpg",
		Date: "2010-07-16",
	}
	s.NoError(s.Store.CreateImage("n00001930", image))
	s.Equal(taxonomy.ErrImageExists{IMID: 42},
		s.Store.CreateImage("n00001930", image))

	got, err := s.Store.Image("n00001930", 42)
	if s.NoError(err) {
		s.Equal(image, got)
	}

	image.URL = "http://example.com/moved.jpg"
	s.NoError(s.Store.ReplaceImage("n00001930", 42, image))
	got, err = s.Store.Image("n00001930", 42)
	if s.NoError(err) {
		s.Equal("http://example.com/moved.jpg", got.URL)
	}

	// Renumber the image.
	image.IMID = 43
	s.NoError(s.Store.ReplaceImage("n00001930", 42, image))
	_, err = s.Store.Image("n00001930", 42)
	s.Equal(taxonomy.ErrNoSuchImage{WNID: "n00001930", IMID: 42}, err)

	s.NoError(s.Store.DeleteImage("n00001930", 43))
	s.Equal(taxonomy.ErrNoSuchImage{WNID: "n00001930", IMID: 43},
		s.Store.DeleteImage("n00001930", 43))
}

// TestImageScoping checks that images are only visible under their
// owning synset.
func (s *Suite) TestImageScoping() {
	s.addSynset("n00001930")
	s.addSynset("n00002137")
	s.Require().NoError(s.Store.CreateImage("n00001930", taxonomy.Image{
		IMID: 1, URL: "http://example.com/1.jpg",
	}))

	_, err := s.Store.Image("n00002137", 1)
	s.Equal(taxonomy.ErrNoSuchImage{WNID: "n00002137", IMID: 1}, err)

	// IMIDs are globally unique even across synsets.
	s.Equal(taxonomy.ErrImageExists{IMID: 1},
		s.Store.CreateImage("n00002137", taxonomy.Image{
			IMID: 1, URL: "http://example.com/other.jpg",
		}))
}

// TestImageOrdering checks IMID-ordered pagination.
func (s *Suite) TestImageOrdering() {
	s.addSynset("n00001930")
	for _, imid := range []int{5, 3, 9} {
		s.Require().NoError(s.Store.CreateImage("n00001930", taxonomy.Image{
			IMID: imid,
			URL:  fmt.Sprintf("http://example.com/%d.jpg", imid),
		}))
	}

	images, more, err := s.Store.Images("n00001930", 0, 2)
	if s.NoError(err) {
		s.True(more)
		if s.Len(images, 2) {
			s.Equal(3, images[0].IMID)
			s.Equal(5, images[1].IMID)
		}
	}

	images, more, err = s.Store.Images("n00001930", 2, 2)
	if s.NoError(err) {
		s.False(more)
		if s.Len(images, 1) {
			s.Equal(9, images[0].IMID)
		}
	}
}

// TestStats checks the entity counters.
func (s *Suite) TestStats() {
	stats, err := s.Store.Stats()
	if s.NoError(err) {
		s.Equal(taxonomy.Stats{}, stats)
	}

	s.addSynset("n00001740")
	s.addSynset("n00001930")
	s.Require().NoError(s.Store.AddHyponym("n00001740", "n00001930"))
	s.Require().NoError(s.Store.CreateImage("n00001930", taxonomy.Image{
		IMID: 1, URL: "http://example.com/1.jpg",
	}))

	stats, err = s.Store.Stats()
	if s.NoError(err) {
		s.Equal(taxonomy.Stats{Synsets: 2, Hyponyms: 1, Images: 1}, stats)
	}
}
