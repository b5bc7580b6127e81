package postgres

import (
	"database/sql"
	"os"
	"testing"

	"github.com/atheik/imagenet-browser/taxonomy"
	"github.com/atheik/imagenet-browser/taxonomy/storetest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests against a PostgreSQL backend.
//
// The tests connect using an empty connection string, so the usual
// libpq environment variables select the database; see
// http://www.postgresql.org/docs/current/static/libpq-envars.html.
// They drop and recreate the schema before every test, so do not point
// them at a database you care about.
type Suite struct {
	storetest.Suite
	db *sql.DB
}

// SetupSuite does global setup for the test suite.
func (s *Suite) SetupSuite() {
	db, err := sql.Open("postgres", "")
	s.Require().NoError(err)
	s.db = db
	s.Factory = func() (taxonomy.Store, error) {
		if err := Drop(s.db); err != nil {
			return nil, err
		}
		return New("")
	}
}

// TearDownSuite does global teardown for the test suite.
func (s *Suite) TearDownSuite() {
	if s.db != nil {
		s.NoError(s.db.Close())
	}
}

// TestStore runs the generic store tests.
func TestStore(t *testing.T) {
	if os.Getenv("PGDATABASE") == "" {
		t.Skip("set PGDATABASE (and friends) to run PostgreSQL tests")
	}
	suite.Run(t, &Suite{})
}
