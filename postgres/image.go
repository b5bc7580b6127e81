package postgres

import (
	"database/sql"

	"github.com/atheik/imagenet-browser/taxonomy"
)

func (st *pgStore) Images(wnid string, start, limit int) (images []taxonomy.Image, more bool, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		rows, err := tx.Query("SELECT imid, url, date FROM image WHERE synset_id=$1 ORDER BY imid OFFSET $2 LIMIT $3", id, start, limit+1)
		if err != nil {
			return err
		}
		images = nil
		more = false
		return scanRows(rows, func() error {
			var image taxonomy.Image
			err := rows.Scan(&image.IMID, &image.URL, &image.Date)
			if err != nil {
				return err
			}
			if len(images) == limit {
				more = true
			} else {
				images = append(images, image)
			}
			return nil
		})
	})
	return
}

func (st *pgStore) Image(wnid string, imid int) (image taxonomy.Image, err error) {
	err = withTx(st, true, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		row := tx.QueryRow("SELECT imid, url, date FROM image WHERE synset_id=$1 AND imid=$2", id, imid)
		err = row.Scan(&image.IMID, &image.URL, &image.Date)
		if err == sql.ErrNoRows {
			return taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid}
		}
		return err
	})
	return
}

func (st *pgStore) CreateImage(wnid string, image taxonomy.Image) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		_, err = tx.Exec("INSERT INTO image(imid, synset_id, url, date) VALUES ($1, $2, $3, $4)", image.IMID, id, image.URL, image.Date)
		if uniqueViolation(err) == "image_pkey" {
			return taxonomy.ErrImageExists{IMID: image.IMID}
		}
		return err
	})
}

func (st *pgStore) ReplaceImage(wnid string, imid int, image taxonomy.Image) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		result, err := tx.Exec("UPDATE image SET imid=$3, url=$4, date=$5 WHERE synset_id=$1 AND imid=$2",
			id, imid, image.IMID, image.URL, image.Date)
		if uniqueViolation(err) == "image_pkey" {
			return taxonomy.ErrImageExists{IMID: image.IMID}
		}
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err == nil && count == 0 {
			return taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid}
		}
		return err
	})
}

func (st *pgStore) DeleteImage(wnid string, imid int) error {
	return withTx(st, false, func(tx *sql.Tx) error {
		id, err := synsetID(tx, wnid)
		if err != nil {
			return err
		}
		result, err := tx.Exec("DELETE FROM image WHERE synset_id=$1 AND imid=$2", id, imid)
		if err != nil {
			return err
		}
		count, err := result.RowsAffected()
		if err == nil && count == 0 {
			return taxonomy.ErrNoSuchImage{WNID: wnid, IMID: imid}
		}
		return err
	})
}
