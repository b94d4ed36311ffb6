// Package testutil provides test utilities for database setup.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"
)

// Schema mirrors the snapshots table created by the store migrations.
const Schema = `
CREATE TABLE snapshots (
	id         TEXT PRIMARY KEY,
	path       TEXT    NOT NULL,
	revision   INTEGER NOT NULL,
	line_count INTEGER NOT NULL,
	levels     TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX idx_snapshots_path ON snapshots (path);
CREATE UNIQUE INDEX idx_snapshots_path_revision ON snapshots (path, revision);
`

// NewTestDB creates an in-memory SQLite database with the snapshot schema.
// The caller is responsible for closing the database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}
