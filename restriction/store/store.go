/*
Package store provides an optional sqlite-backed cache of the restriction
enzyme library, for callers that want to query/filter enzymes with SQL
instead of walking the in-memory slice.

Grounded on the teacher's root synthesis.go, which opens an in-memory sqlite
database via jmoiron/sqlx + the mattn/go-sqlite3 driver and MustExecs its
schema/inserts the same way this package does.
*/
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	// registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/genomancer/plasmidcore/restriction"
)

const schema = `
CREATE TABLE enzyme (
	name            TEXT PRIMARY KEY,
	recognition_seq TEXT NOT NULL,
	cut_after       INTEGER NOT NULL,
	blunt           INTEGER NOT NULL
);
`

// Store wraps an in-memory sqlite database preloaded with the restriction
// enzyme library.
type Store struct {
	db *sqlx.DB
}

// Open creates an in-memory store and loads lib into it.
func Open(lib []restriction.Enzyme) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	db.MustExec(schema)

	insert := `INSERT INTO enzyme(name, recognition_seq, cut_after, blunt) VALUES (?, ?, ?, ?)`
	for _, e := range lib {
		blunt := 0
		if e.IsBlunt() {
			blunt = 1
		}
		db.MustExec(insert, e.Name, e.RecognitionSeq.String(), e.CutAfter, blunt)
	}
	return &Store{db: db}, nil
}

// Store returns the underlying database handle.
func (s *Store) Store() *sqlx.DB { return s.db }

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// StickyEndNames returns the names of every non-blunt enzyme in the store,
// an example of querying the library with plain SQL rather than walking the
// in-memory slice (useful once the library grows past the curated ~50).
func (s *Store) StickyEndNames() ([]string, error) {
	var names []string
	err := s.db.Select(&names, `SELECT name FROM enzyme WHERE blunt = 0 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: query sticky ends: %w", err)
	}
	return names, nil
}
