package postgres

import (
	"database/sql"

	"github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal request flow, either at
// initial startup or from an external tool.
//
// Synsets carry a surrogate key so that renaming a synset (changing
// its WordNet ID) carries its hyponym edges and images along for free.
// Images are keyed by their ImageNet ID directly, since that number is
// globally unique.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1",
			Up: []string{`
CREATE TABLE synset (
       id SERIAL PRIMARY KEY,
       wnid VARCHAR(9) NOT NULL,
       words TEXT NOT NULL,
       gloss TEXT NOT NULL
)`, `
CREATE UNIQUE INDEX synset_wnid ON synset(wnid)`, `
CREATE TABLE synset_hyponym (
       id SERIAL PRIMARY KEY,
       synset_id INTEGER NOT NULL REFERENCES synset(id) ON DELETE CASCADE,
       hyponym_id INTEGER NOT NULL REFERENCES synset(id) ON DELETE CASCADE
)`, `
CREATE UNIQUE INDEX synset_hyponym_edge ON synset_hyponym(synset_id, hyponym_id)`, `
CREATE TABLE image (
       imid INTEGER PRIMARY KEY,
       synset_id INTEGER NOT NULL REFERENCES synset(id) ON DELETE CASCADE,
       url TEXT NOT NULL,
       date TEXT NOT NULL DEFAULT ''
)`, `
CREATE INDEX image_synset ON image(synset_id)`,
			},
			Down: []string{
				`DROP TABLE image`,
				`DROP TABLE synset_hyponym`,
				`DROP TABLE synset`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
