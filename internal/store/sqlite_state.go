package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"chartodo/internal/model"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "chartodo.sqlite"

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS lists (
		kind TEXT PRIMARY KEY,
		json TEXT NOT NULL,
		updated_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// loadSQLite reads the kind's row. A missing row is seeded from the JSON
// document for that kind (or the legacy text file) once, then stored.
func (s Store) loadSQLite(ctx context.Context, kind model.Kind) (*model.TaskList, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT json FROM lists WHERE kind = ?`, string(kind)).Scan(&raw)
	if err == nil {
		return decodeDocument(s.sqlitePath()+"#"+string(kind), []byte(raw))
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	l, ok, err := s.readJSONFile(kind)
	if err != nil {
		return nil, err
	}
	if ok {
		s.logger().Info("imported json list into sqlite", "kind", kind, "path", s.jsonPath(kind))
	} else if l, err = s.initialList(kind); err != nil {
		return nil, err
	}
	if err := putList(ctx, db, kind, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s Store) saveSQLite(ctx context.Context, kind model.Kind, l *model.TaskList) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return putList(ctx, db, kind, l)
}

// putList replaces the kind's row in one transaction.
func putList(ctx context.Context, db *sql.DB, kind model.Kind, l *model.TaskList) error {
	b, err := encodeDocument(l)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO lists(kind, json, updated_at_unixms) VALUES(?, ?, ?)`,
		string(kind), string(b), time.Now().UTC().UnixMilli()); err != nil {
		return err
	}
	return tx.Commit()
}
