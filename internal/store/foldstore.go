package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// snapshotColumns is the list of columns to select for snapshot queries.
const snapshotColumns = `id, path, revision, line_count, levels, created_at, updated_at`

// FoldStore persists and restores fold snapshots using SQLite.
type FoldStore struct {
	db *sql.DB
}

// newFoldStore creates a new FoldStore instance.
func newFoldStore(db *sql.DB) *FoldStore {
	return &FoldStore{db: db}
}

// scanSnapshot scans a row into a SnapshotModel.
func scanSnapshot(scanner interface{ Scan(...any) error }) (*SnapshotModel, error) {
	var model SnapshotModel
	err := scanner.Scan(
		&model.ID, &model.Path, &model.Revision,
		&model.LineCount, &model.Levels,
		&model.CreatedAt, &model.UpdatedAt,
	)
	return &model, err
}

// Save persists a snapshot to the database.
// For new snapshots (empty ID), a fresh id is assigned and a row inserted.
// Saving the same path and revision again replaces the stored levels.
func (s *FoldStore) Save(snap *Snapshot) error {
	now := time.Now()
	if snap.ID == "" {
		snap.ID = uuid.NewString()
		snap.CreatedAt = now
	}
	snap.UpdatedAt = now

	model, err := toSnapshotModel(snap)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO snapshots (id, path, revision, line_count, levels, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (path, revision) DO UPDATE SET
			line_count = excluded.line_count,
			levels = excluded.levels,
			updated_at = excluded.updated_at`,
		model.ID, model.Path, model.Revision,
		model.LineCount, model.Levels,
		model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// FindByID retrieves a snapshot by its id.
// Returns SnapshotNotFoundError if no matching snapshot exists.
func (s *FoldStore) FindByID(id string) (*Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT `+snapshotColumns+` FROM snapshots WHERE id = ?`,
		id,
	)
	model, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &SnapshotNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot by id: %w", err)
	}
	return model.toDomain()
}

// FindLatest retrieves the highest-revision snapshot for a path.
// Returns SnapshotNotFoundError if the path has no snapshots.
func (s *FoldStore) FindLatest(path string) (*Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT `+snapshotColumns+` FROM snapshots WHERE path = ? ORDER BY revision DESC LIMIT 1`,
		path,
	)
	model, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &SnapshotNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}
	return model.toDomain()
}

// FindByRevision retrieves the snapshot for an exact path and revision.
// Returns SnapshotNotFoundError if no matching snapshot exists.
func (s *FoldStore) FindByRevision(path string, revision int64) (*Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT `+snapshotColumns+` FROM snapshots WHERE path = ? AND revision = ?`,
		path, revision,
	)
	model, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &SnapshotNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot by revision: %w", err)
	}
	return model.toDomain()
}

// ListByPath returns all snapshots for a path, newest revision first.
func (s *FoldStore) ListByPath(path string) ([]*Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT `+snapshotColumns+` FROM snapshots WHERE path = ? ORDER BY revision DESC`,
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []*Snapshot
	for rows.Next() {
		model, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap, err := model.toDomain()
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return snaps, nil
}

// ListPaths returns the distinct paths that have at least one snapshot.
func (s *FoldStore) ListPaths() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT path FROM snapshots ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot paths: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot path: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot paths: %w", err)
	}
	return paths, nil
}

// Delete removes a snapshot by id.
// Returns SnapshotNotFoundError if no row was deleted.
func (s *FoldStore) Delete(id string) error {
	result, err := s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &SnapshotNotFoundError{ID: id}
	}
	return nil
}

// DeleteByPath removes all snapshots for a path and reports how many were removed.
func (s *FoldStore) DeleteByPath(path string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM snapshots WHERE path = ?`, path)
	if err != nil {
		return 0, fmt.Errorf("failed to delete snapshots: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}

// Prune keeps the newest keep revisions for a path and deletes the rest.
func (s *FoldStore) Prune(path string, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep count %d must be non-negative", keep)
	}
	result, err := s.db.Exec(
		`DELETE FROM snapshots WHERE path = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE path = ? ORDER BY revision DESC LIMIT ?
		)`,
		path, path, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}
