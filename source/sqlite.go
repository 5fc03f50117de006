package source

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/species"
)

const schema = `CREATE TABLE IF NOT EXISTS structures (
	idx        INTEGER PRIMARY KEY AUTOINCREMENT,
	jid        TEXT NOT NULL UNIQUE,
	crys       TEXT NOT NULL DEFAULT '',
	atoms_json TEXT NOT NULL
)`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA synchronous=NORMAL",
}

// SQLite is a structure store backed by a SQLite database file.
// It is safe for concurrent use.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// structures table exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "%s", p)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

// Import inserts recs in one transaction, replacing rows with the same jid.
// It returns the number of rows written.
func (s *SQLite) Import(ctx context.Context, recs []Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin import")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO structures (jid, crys, atoms_json) VALUES (?, ?, ?)
		 ON CONFLICT(jid) DO UPDATE SET crys = excluded.crys, atoms_json = excluded.atoms_json`)
	if err != nil {
		return 0, errors.Wrap(err, "prepare import")
	}
	defer stmt.Close()

	for _, r := range recs {
		if r.JID == "" {
			return 0, errors.Wrap(ErrBadRecord, "empty jid")
		}
		blob, err := json.Marshal(r.Atoms)
		if err != nil {
			return 0, errors.Wrapf(err, "encode %s", r.JID)
		}
		if _, err := stmt.ExecContext(ctx, r.JID, r.Crys, string(blob)); err != nil {
			return 0, errors.Wrapf(err, "insert %s", r.JID)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit import")
	}
	return len(recs), nil
}

// Count returns the number of stored records.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM structures`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count structures")
	}
	return n, nil
}

// Records returns all records in insertion order.
func (s *SQLite) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT jid, crys, atoms_json FROM structures ORDER BY idx`)
	if err != nil {
		return nil, errors.Wrap(err, "query structures")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r    Record
			blob string
		)
		if err := rows.Scan(&r.JID, &r.Crys, &blob); err != nil {
			return nil, errors.Wrap(err, "scan structure")
		}
		if err := json.Unmarshal([]byte(blob), &r.Atoms); err != nil {
			return nil, errors.Wrapf(ErrBadRecord, "%s: %v", r.JID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate structures")
	}
	return out, nil
}

// Entries returns all records converted to dataset entries.
func (s *SQLite) Entries(ctx context.Context, tbl species.Table) (dataset.Entries, error) {
	recs, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return Entries(recs, tbl)
}
