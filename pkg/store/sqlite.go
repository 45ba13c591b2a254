// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	position  INTEGER PRIMARY KEY,
	id        TEXT NOT NULL DEFAULT '',
	type      TEXT NOT NULL DEFAULT '',
	grp       TEXT NOT NULL DEFAULT '',
	parent_id TEXT NOT NULL DEFAULT '',
	file_path TEXT NOT NULL DEFAULT '',
	name      TEXT NOT NULL DEFAULT '',
	title     TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLite stores favorites in a SQLite database. List order is kept in the
// position column.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// Load implements Store.
func (s *SQLite) Load(ctx context.Context) ([]favorite.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, grp, parent_id, file_path, name, title
		FROM entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var list []favorite.Entry
	for rows.Next() {
		var e favorite.Entry
		var kind string
		if err := rows.Scan(&e.ID, &kind, &e.Group, &e.ParentID, &e.FilePath, &e.Name, &e.Title); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Kind = favorite.Kind(kind)
		list = append(list, e)
	}
	return list, rows.Err()
}

// Save implements Store.
func (s *SQLite) Save(ctx context.Context, list []favorite.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (position, id, type, grp, parent_id, file_path, name, title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range list {
		if _, err := stmt.ExecContext(ctx, i, e.ID, string(e.Kind), e.Group, e.ParentID, e.FilePath, e.Name, e.Title); err != nil {
			return fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Scalar implements Store.
func (s *SQLite) Scalar(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// SetScalar implements Store.
func (s *SQLite) SetScalar(ctx context.Context, key, value string) error {
	var err error
	if value == "" {
		_, err = s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	} else {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	}
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// Path implements Store.
func (s *SQLite) Path() string {
	return s.path
}

// Close implements Store.
func (s *SQLite) Close() error {
	return s.db.Close()
}
