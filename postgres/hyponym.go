package postgres

import (
	"database/sql"

	"github.com/atheik/imagenet-browser/taxonomy"
)

// The hyponym relation is a plain edge table over synset surrogate
// keys.  Edge order (the serial id) is insertion order, which is the
// order pages are served in.

func (st *pgStore) Hyponyms(wnid string, start, limit int) (hyponyms []taxonomy.Synset, more bool, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		rows, err := tx.Query("SELECT synset.wnid, synset.words, synset.gloss "+
			"FROM synset_hyponym JOIN synset ON synset.id=synset_hyponym.hyponym_id "+
			"WHERE synset_hyponym.synset_id=$1 "+
			"ORDER BY synset_hyponym.id OFFSET $2 LIMIT $3", id, start, limit+1)
		if err != nil {
			return err
		}
		hyponyms = nil
		more = false
		return scanRows(rows, func() error {
			var synset taxonomy.Synset
			err := rows.Scan(&synset.WNID, &synset.Words, &synset.Gloss)
			if err != nil {
				return err
			}
			if len(hyponyms) == limit {
				more = true
			} else {
				hyponyms = append(hyponyms, synset)
			}
			return nil
		})
	})
	return
}

func (st *pgStore) Hyponym(wnid, hyponym string) (synset taxonomy.Synset, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		row := tx.QueryRow("SELECT synset.wnid, synset.words, synset.gloss "+
			"FROM synset_hyponym JOIN synset ON synset.id=synset_hyponym.hyponym_id "+
			"WHERE synset_hyponym.synset_id=$1 AND synset.wnid=$2", id, hyponym)
		err = row.Scan(&synset.WNID, &synset.Words, &synset.Gloss)
		if err == sql.ErrNoRows {
			return taxonomy.ErrNoSuchHyponym{WNID: wnid, Hyponym: hyponym}
		}
		return err
	})
	return
}

func (st *pgStore) AddHyponym(wnid, hyponym string) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		hyponymID, err := synsetID(tx, hyponym)
		if err != nil {
			return err
		}
		_, err = tx.Exec("INSERT INTO synset_hyponym(synset_id, hyponym_id) VALUES ($1, $2)", id, hyponymID)
		if uniqueViolation(err) == "synset_hyponym_edge" {
			return taxonomy.ErrHyponymExists{WNID: wnid, Hyponym: hyponym}
		}
		return err
	})
}

func (st *pgStore) RemoveHyponym(wnid, hyponym string) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		result, err := tx.Exec("DELETE FROM synset_hyponym "+
			"USING synset "+
			"WHERE synset_hyponym.synset_id=$1 "+
			"AND synset.id=synset_hyponym.hyponym_id "+
			"AND synset.wnid=$2", id, hyponym)
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err == nil && count == 0 {
			return taxonomy.ErrNoSuchHyponym{WNID: wnid, Hyponym: hyponym}
		}
		return err
	})
}
