package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// SQLiteRepository implements Repository using SQLite.
//
// Entries live in the property_history table created by the database
// package's migrations.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite history repository.
//
// Parameters:
//   - db: Open SQLite connection used for queries
//
// Returns:
//   - *SQLiteRepository: Repository instance ready for use
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Record persists a property change entry.
//
// A missing ID is filled with a fresh UUID; a missing timestamp is
// filled with the current time. Role and Key are required.
func (r *SQLiteRepository) Record(ctx context.Context, entry Entry) error {
	if entry.Role == "" {
		return fmt.Errorf("%w: role is required", ErrInvalidEntry)
	}
	if entry.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidEntry)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Source == "" {
		entry.Source = SourceAPI
	}
	if entry.ChangedAt.IsZero() {
		entry.ChangedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO property_history (id, device_role, device_label, property_key, value, source, changed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Role,
		entry.Label,
		entry.Key,
		entry.Value,
		entry.Source,
		entry.ChangedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting property history: %w", err)
	}

	return nil
}

// GetByRole returns recent entries for a device role, ordered newest first.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - role: Device role identifier
//   - limit: Maximum entries to return (default 50, max 200)
func (r *SQLiteRepository) GetByRole(ctx context.Context, role string, limit int) ([]Entry, error) {
	if role == "" {
		return nil, fmt.Errorf("%w: role is required", ErrInvalidEntry)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, device_role, device_label, property_key, value, source, changed_at
		 FROM property_history
		 WHERE device_role = ?
		 ORDER BY changed_at DESC
		 LIMIT ?`,
		role,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying property history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var entry Entry
		var changedAt string

		if err := rows.Scan(&entry.ID, &entry.Role, &entry.Label, &entry.Key, &entry.Value, &entry.Source, &changedAt); err != nil {
			return nil, fmt.Errorf("scanning property history: %w", err)
		}

		timestamp, err := parseTimestamp(changedAt)
		if err != nil {
			return nil, err
		}
		entry.ChangedAt = timestamp

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating property history: %w", err)
	}

	return entries, nil
}

// Prune deletes entries older than the given duration.
//
// Returns the number of rows deleted.
func (r *SQLiteRepository) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("olderThan must be positive")
	}

	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339)
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM property_history WHERE changed_at < ?",
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting property history: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}

	return rowsAffected, nil
}

// parseTimestamp parses a timestamp stored in SQLite.
func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("changed_at is empty")
	}

	timestamp, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing changed_at: %w", err)
	}
	return timestamp, nil
}
