package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Builder accumulates snapshot rows and inserts them in one pass.
type Builder struct {
	t     *testing.T
	db    *sql.DB
	snaps []snapshotData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithSnapshot adds a snapshot with optional configuration.
func (b *Builder) WithSnapshot(id string, opts ...SnapshotOption) *Builder {
	snap := defaultSnapshot(id)
	for _, opt := range opts {
		opt(&snap)
	}
	b.snaps = append(b.snaps, snap)
	return b
}

// Build inserts all accumulated data into the database.
func (b *Builder) Build() {
	b.t.Helper()
	for _, snap := range b.snaps {
		b.insertSnapshot(snap)
	}
}

func (b *Builder) insertSnapshot(snap snapshotData) {
	b.t.Helper()
	levels := snap.levels
	if levels == nil {
		levels = []int{}
	}
	encoded, err := json.Marshal(levels)
	require.NoError(b.t, err)

	_, err = b.db.Exec(
		`INSERT INTO snapshots (id, path, revision, line_count, levels, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.id, snap.path, snap.revision,
		len(levels), string(encoded),
		snap.createdAt.Unix(), snap.updatedAt.Unix(),
	)
	require.NoError(b.t, err)
}
