package postgres

import (
	"database/sql"

	"github.com/atheik/imagenet-browser/taxonomy"
)

// synsetID resolves a WordNet ID to the surrogate key, returning
// taxonomy.ErrNoSuchSynset if the synset is absent.
func synsetID(tx *sql.Tx, wnid string) (int, error) {
	var id int
	row := tx.QueryRow("SELECT id FROM synset WHERE wnid=$1", wnid)
	err := row.Scan(&id)
	if err == sql.ErrNoRows {
		return 0, taxonomy.ErrNoSuchSynset{WNID: wnid}
	}
	return id, err
}

func (st *pgStore) Synsets(start, limit int) (synsets []taxonomy.Synset, more bool, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		// Ask for one row past the requested page; if we get
		// it there is a next page.
		rows, err := tx.Query("SELECT wnid, words, gloss FROM synset ORDER BY wnid OFFSET $1 LIMIT $2", start, limit+1)
		if err != nil {
			return err
		}
		synsets = nil
		more = false
		return scanRows(rows, func() error {
			var synset taxonomy.Synset
			err := rows.Scan(&synset.WNID, &synset.Words, &synset.Gloss)
			if err != nil {
				return err
			}
			if len(synsets) == limit {
				more = true
			} else {
				synsets = append(synsets, synset)
			}
			return nil
		})
	})
	return
}

func (st *pgStore) Synset(wnid string) (synset taxonomy.Synset, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT wnid, words, gloss FROM synset WHERE wnid=$1", wnid)
		err := row.Scan(&synset.WNID, &synset.Words, &synset.Gloss)
		if err == sql.ErrNoRows {
			return taxonomy.ErrNoSuchSynset{WNID: wnid}
		}
		return err
	})
	return
}

func (st *pgStore) CreateSynset(synset taxonomy.Synset) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO synset(wnid, words, gloss) VALUES ($1, $2, $3)", synset.WNID, synset.Words, synset.Gloss)
		if uniqueViolation(err) == "synset_wnid" {
			return taxonomy.ErrSynsetExists{WNID: synset.WNID}
		}
		return err
	})
}

func (st *pgStore) ReplaceSynset(wnid string, synset taxonomy.Synset) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		// The surrogate key stays put, so hyponym edges and
		// images survive a WNID change.
		_, err = tx.Exec("UPDATE synset SET wnid=$2, words=$3, gloss=$4 WHERE id=$1", id, synset.WNID, synset.Words, synset.Gloss)
		if uniqueViolation(err) == "synset_wnid" {
			return taxonomy.ErrSynsetExists{WNID: synset.WNID}
		}
		return err
	})
}

func (st *pgStore) DeleteSynset(wnid string) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		// Edges and images go away via ON DELETE CASCADE.
		result, err := tx.Exec("DELETE FROM synset WHERE wnid=$1", wnid)
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err == nil && count == 0 {
			return taxonomy.ErrNoSuchSynset{WNID: wnid}
		}
		return err
	})
}
