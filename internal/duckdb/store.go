// Package duckdb memoises lookup-service annotations in DuckDB for the
// duration of a run.
package duckdb

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding fetched annotations.
type Store struct {
	db *sql.DB
}

// Open creates an in-memory DuckDB database. Its contents are gone once it
// is closed.
func Open() (*Store, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS lookup_annotations (
		lookup_key VARCHAR PRIMARY KEY,
		allele_freq VARCHAR,
		symbol VARCHAR,
		sift VARCHAR,
		polyphen VARCHAR,
		major_consequence VARCHAR,
		existing_variation VARCHAR
	)`)
	return err
}
