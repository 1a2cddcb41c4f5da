// Package postgres implements ports.CalibrationStorePort against a
// Postgres table, adapted from the teacher's
// adapters/postgres/*_repository.go sqlx-struct-scan pattern: the
// whole artifact is marshaled to JSON and stored in one row, since a
// calibration run produces a single cohesive document rather than
// normalized relational rows.
package postgres

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"guildscore/adapters/calibstore"
	"guildscore/domain/calibration"
)

const schema = `
CREATE TABLE IF NOT EXISTS calibration_artifacts (
	id SERIAL PRIMARY KEY,
	run_id TEXT NOT NULL,
	seed BIGINT NOT NULL,
	sample_size INT NOT NULL,
	document JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store persists calibration artifacts as JSONB rows. Only the most
// recent row is ever read back, so a single-row table would also
// work; keeping history lets an operator diff calibration runs over
// time via SQL instead of comparing JSON files by hand.
type Store struct {
	db *sqlx.DB
}

// New connects to dsn and ensures the backing table exists.
func New(dsn string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to calibration store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure calibration_artifacts table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

type row struct {
	RunID      string `db:"run_id"`
	Seed       int64  `db:"seed"`
	SampleSize int    `db:"sample_size"`
	Document   []byte `db:"document"`
}

// Save marshals the artifact's JSON document form and inserts a new
// row. A pq unique-violation (if the schema is later tightened to
// dedupe by run_id) surfaces as a named error rather than an opaque
// driver failure.
func (s *Store) Save(a calibration.Artifact) error {
	doc, err := calibstore.Marshal(a)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO calibration_artifacts (run_id, seed, sample_size, document) VALUES ($1, $2, $3, $4)`,
		a.RunID.String(), a.Seed, a.SampleSize, doc,
	)
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("save calibration artifact: %s (%s)", pqErr.Message, pqErr.Code)
	}
	if err != nil {
		return fmt.Errorf("save calibration artifact: %w", err)
	}
	return nil
}

// Load returns the most recently saved artifact.
func (s *Store) Load() (calibration.Artifact, error) {
	var r row
	err := s.db.Get(&r, `SELECT run_id, seed, sample_size, document FROM calibration_artifacts ORDER BY created_at DESC LIMIT 1`)
	if err == sql.ErrNoRows {
		return calibration.Artifact{}, fmt.Errorf("no calibration artifact stored")
	}
	if err != nil {
		return calibration.Artifact{}, fmt.Errorf("load calibration artifact: %w", err)
	}
	return calibstore.Unmarshal(r.Document)
}
