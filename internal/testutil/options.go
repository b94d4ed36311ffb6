package testutil

import "time"

// snapshotData holds all data for a snapshot row to be inserted.
type snapshotData struct {
	id        string
	path      string
	revision  int64
	levels    []int
	createdAt time.Time
	updatedAt time.Time
}

// defaultSnapshot returns a snapshot with sensible defaults for the given id.
func defaultSnapshot(id string) snapshotData {
	now := time.Now()
	return snapshotData{
		id:        id,
		path:      "/src/" + id + ".sql",
		revision:  1,
		levels:    []int{0x400},
		createdAt: now,
		updatedAt: now,
	}
}

// SnapshotOption configures a snapshot row.
type SnapshotOption func(*snapshotData)

// Path sets the document path.
func Path(path string) SnapshotOption {
	return func(s *snapshotData) { s.path = path }
}

// Revision sets the document revision.
func Revision(revision int64) SnapshotOption {
	return func(s *snapshotData) { s.revision = revision }
}

// Levels sets the per-line fold levels.
func Levels(levels ...int) SnapshotOption {
	return func(s *snapshotData) { s.levels = levels }
}

// CreatedAt sets the creation timestamp.
func CreatedAt(t time.Time) SnapshotOption {
	return func(s *snapshotData) { s.createdAt = t }
}

// UpdatedAt sets the last-updated timestamp.
func UpdatedAt(t time.Time) SnapshotOption {
	return func(s *snapshotData) { s.updatedAt = t }
}
