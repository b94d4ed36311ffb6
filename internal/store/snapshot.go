package store

import (
	"fmt"
	"time"
)

// Snapshot records the fold levels computed for one revision of a document.
// Levels holds one packed fold level per line, in line order.
type Snapshot struct {
	ID        string
	Path      string
	Revision  int64
	Levels    []int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnapshotNotFoundError indicates that no snapshot matched the lookup.
type SnapshotNotFoundError struct {
	ID   string
	Path string
}

func (e *SnapshotNotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("snapshot %s not found", e.ID)
	}
	return fmt.Sprintf("no snapshot found for %s", e.Path)
}
