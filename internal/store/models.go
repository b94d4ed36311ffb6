package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// SnapshotModel represents the database row for the snapshots table.
// Fields map directly to SQL columns with Unix timestamps for time values
// and fold levels JSON encoded as a single TEXT column.
type SnapshotModel struct {
	ID        string
	Path      string
	Revision  int64
	LineCount int
	Levels    string // JSON encoded []int
	CreatedAt int64  // Unix timestamp
	UpdatedAt int64  // Unix timestamp
}

// toSnapshotModel converts a Snapshot to a database SnapshotModel.
func toSnapshotModel(s *Snapshot) (*SnapshotModel, error) {
	levels := s.Levels
	if levels == nil {
		levels = []int{}
	}
	encoded, err := json.Marshal(levels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fold levels: %w", err)
	}
	return &SnapshotModel{
		ID:        s.ID,
		Path:      s.Path,
		Revision:  s.Revision,
		LineCount: len(levels),
		Levels:    string(encoded),
		CreatedAt: s.CreatedAt.Unix(),
		UpdatedAt: s.UpdatedAt.Unix(),
	}, nil
}

// toDomain converts a database SnapshotModel to a Snapshot.
func (m *SnapshotModel) toDomain() (*Snapshot, error) {
	var levels []int
	if err := json.Unmarshal([]byte(m.Levels), &levels); err != nil {
		return nil, fmt.Errorf("failed to decode fold levels: %w", err)
	}
	return &Snapshot{
		ID:        m.ID,
		Path:      m.Path,
		Revision:  m.Revision,
		Levels:    levels,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}, nil
}
