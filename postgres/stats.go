package postgres

import (
	"database/sql"

	"github.com/atheik/imagenet-browser/taxonomy"
)

func (st *pgStore) Stats() (stats taxonomy.Stats, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT " +
			"(SELECT COUNT(*) FROM synset), " +
			"(SELECT COUNT(*) FROM synset_hyponym), " +
			"(SELECT COUNT(*) FROM image)")
		return row.Scan(&stats.Synsets, &stats.Hyponyms, &stats.Images)
	})
	return
}
