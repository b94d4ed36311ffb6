package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreset_StandardTestData(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	NewBuilder(t, db).WithStandardTestData().Build()

	// Verify 5 snapshots
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 5, count, "expected 5 snapshots")

	// Verify snapshot IDs
	rows, err := db.Query(`SELECT id FROM snapshots ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.Equal(t, []string{"queries-r1", "schema-r1", "schema-r2", "schema-r3", "settings-r1"}, ids)

	// Verify schema.sql has three revisions
	err = db.QueryRow(`SELECT COUNT(*) FROM snapshots WHERE path = '/src/schema.sql'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 3, count, "expected 3 revisions for /src/schema.sql")

	// Verify the latest schema.sql revision
	var revision int64
	err = db.QueryRow(`SELECT MAX(revision) FROM snapshots WHERE path = '/src/schema.sql'`).Scan(&revision)
	require.NoError(t, err)
	require.Equal(t, int64(3), revision)
}

func TestPreset_DeepFoldTestData(t *testing.T) {
	db := NewTestDB(t)
	defer func() { _ = db.Close() }()

	NewBuilder(t, db).WithDeepFoldTestData().Build()

	var lineCount int
	var levels string
	err := db.QueryRow(`SELECT line_count, levels FROM snapshots WHERE id = 'deep-r1'`).
		Scan(&lineCount, &levels)
	require.NoError(t, err)
	require.Equal(t, 7, lineCount)
	require.Contains(t, levels, "9216", "header levels should be present")
	require.Contains(t, levels, "5121", "whitespace-flagged level should be present")
}
