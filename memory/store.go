// Package memory provides an in-process, in-memory implementation of
// the taxonomy store.  There is no persistence, nor is there any
// sharing between processes.  The entire store is behind a single
// mutex to protect against concurrent updates; this limits
// performance in the name of correctness.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of the REST
// server.  It is tuned for correctness, not performance or
// scalability.
package memory

import (
	"sort"
	"sync"

	"github.com/atheik/imagenet-browser/taxonomy"
)

// New creates a new taxonomy.Store that operates purely in memory.
func New() taxonomy.Store {
	return &memStore{
		synsets: make(map[string]*synset),
		images:  make(map[int]string),
	}
}

type memStore struct {
	sem     sync.Mutex
	synsets map[string]*synset

	// images maps every IMID in the store to its owning WNID, so
	// global IMID uniqueness is a single lookup.
	images map[int]string
}

// synset is the stored form of one synset: its fields, the ordered
// hyponym edge list, and the images it owns.
type synset struct {
	data     taxonomy.Synset
	hyponyms []string
	images   map[int]taxonomy.Image
}

// page slices a start/limit window out of n entries, reporting whether
// any remain past the window.
func page(n, start, limit int) (lo, hi int, more bool) {
	if start > n {
		start = n
	}
	lo = start
	hi = start + limit
	if hi > n {
		hi = n
	}
	more = hi < n
	return
}

func (st *memStore) Synsets(start, limit int) ([]taxonomy.Synset, bool, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	wnids := make([]string, 0, len(st.synsets))
	for wnid := range st.synsets {
		wnids = append(wnids, wnid)
	}
	sort.Strings(wnids)

	lo, hi, more := page(len(wnids), start, limit)
	synsets := make([]taxonomy.Synset, 0, hi-lo)
	for _, wnid := range wnids[lo:hi] {
		synsets = append(synsets, st.synsets[wnid].data)
	}
	return synsets, more, nil
}

func (st *memStore) Synset(wnid string) (taxonomy.Synset, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.Synset{}, taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	return ss.data, nil
}

func (st *memStore) CreateSynset(data taxonomy.Synset) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	if _, present := st.synsets[data.WNID]; present {
		return taxonomy.ErrSynsetExists{WNID: data.WNID}
	}
	st.synsets[data.WNID] = &synset{
		data:   data,
		images: make(map[int]taxonomy.Image),
	}
	return nil
}

func (st *memStore) ReplaceSynset(wnid string, data taxonomy.Synset) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	if data.WNID != wnid {
		if _, taken := st.synsets[data.WNID]; taken {
			return taxonomy.ErrSynsetExists{WNID: data.WNID}
		}
		delete(st.synsets, wnid)
		st.synsets[data.WNID] = ss
		// Incident edges and owned images follow the rename.
		for _, other := range st.synsets {
			for i, hyponym := range other.hyponyms {
				if hyponym == wnid {
					other.hyponyms[i] = data.WNID
				}
			}
		}
		for imid := range ss.images {
			st.images[imid] = data.WNID
		}
	}
	ss.data = data
	return nil
}

func (st *memStore) DeleteSynset(wnid string) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	delete(st.synsets, wnid)
	for imid := range ss.images {
		delete(st.images, imid)
	}
	for _, other := range st.synsets {
		kept := other.hyponyms[:0]
		for _, hyponym := range other.hyponyms {
			if hyponym != wnid {
				kept = append(kept, hyponym)
			}
		}
		other.hyponyms = kept
	}
	return nil
}

func (st *memStore) Hyponyms(wnid string, start, limit int) ([]taxonomy.Synset, bool, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return nil, false, taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	lo, hi, more := page(len(ss.hyponyms), start, limit)
	hyponyms := make([]taxonomy.Synset, 0, hi-lo)
	for _, hyponym := range ss.hyponyms[lo:hi] {
		hyponyms = append(hyponyms, st.synsets[hyponym].data)
	}
	return hyponyms, more, nil
}

func (st *memStore) Hyponym(wnid, hyponym string) (taxonomy.Synset, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.Synset{}, taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	for _, member := range ss.hyponyms {
		if member == hyponym {
			return st.synsets[hyponym].data, nil
		}
	}
	return taxonomy.Synset{}, taxonomy.ErrNoSuchHyponym{WNID: wnid, Hyponym: hyponym}
}

func (st *memStore) AddHyponym(wnid, hyponym string) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	if _, present := st.synsets[hyponym]; !present {
		return taxonomy.ErrNoSuchSynset{WNID: hyponym}
	}
	for _, member := range ss.hyponyms {
		if member == hyponym {
			return taxonomy.ErrHyponymExists{WNID: wnid, Hyponym: hyponym}
		}
	}
	ss.hyponyms = append(ss.hyponyms, hyponym)
	return nil
}

func (st *memStore) RemoveHyponym(wnid, hyponym string) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	for i, member := range ss.hyponyms {
		if member == hyponym {
			ss.hyponyms = append(ss.hyponyms[:i], ss.hyponyms[i+1:]...)
			return nil
		}
	}
	return taxonomy.ErrNoSuchHyponym{WNID: wnid, Hyponym: hyponym}
}

func (st *memStore) Images(wnid string, start, limit int) ([]taxonomy.Image, bool, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return nil, false, taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	imids := make([]int, 0, len(ss.images))
	for imid := range ss.images {
		imids = append(imids, imid)
	}
	sort.Ints(imids)

	lo, hi, more := page(len(imids), start, limit)
	images := make([]taxonomy.Image, 0, hi-lo)
	for _, imid := range imids[lo:hi] {
		images = append(images, ss.images[imid])
	}
	return images, more, nil
}

func (st *memStore) Image(wnid string, imid int) (taxonomy.Image, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.Image{}, taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	image, present := ss.images[imid]
	if !present {
		return taxonomy.Image{}, taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid}
	}
	return image, nil
}

func (st *memStore) CreateImage(wnid string, image taxonomy.Image) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	if _, taken := st.images[image.IMID]; taken {
		return taxonomy.ErrImageExists{IMID: image.IMID}
	}
	ss.images[image.IMID] = image
	st.images[image.IMID] = wnid
	return nil
}

func (st *memStore) ReplaceImage(wnid string, imid int, image taxonomy.Image) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	if _, present := ss.images[imid]; !present {
		return taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid}
	}
	if image.IMID != imid {
		if _, taken := st.images[image.IMID]; taken {
			return taxonomy.ErrImageExists{IMID: image.IMID}
		}
		delete(ss.images, imid)
		delete(st.images, imid)
	}
	ss.images[image.IMID] = image
	st.images[image.IMID] = wnid
	return nil
}

func (st *memStore) DeleteImage(wnid string, imid int) error {
	st.sem.Lock()
	defer st.sem.Unlock()

	ss, present := st.synsets[wnid]
	if !present {
		return taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	if _, present := ss.images[imid]; !present {
		return taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid}
	}
	delete(ss.images, imid)
	delete(st.images, imid)
	return nil
}

func (st *memStore) Stats() (taxonomy.Stats, error) {
	st.sem.Lock()
	defer st.sem.Unlock()

	var stats taxonomy.Stats
	stats.Synsets = len(st.synsets)
	stats.Images = len(st.images)
	for _, ss := range st.synsets {
		stats.Hyponyms += len(ss.hyponyms)
	}
	return stats, nil
}
