// Package sqlite provides a SQLite-backed widget state store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/practice.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/services/practice/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists widget state blobs in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ widget.StateStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite state store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetState returns the stored blob for key.
func (s *Store) GetState(ctx context.Context, key widget.Key) ([]byte, bool, error) {
	if err := s.check(ctx, key); err != nil {
		return nil, false, err
	}
	var payload []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload FROM widget_state WHERE session_id = ? AND widget_id = ?`,
		key.SessionID, key.WidgetID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get widget state: %w", err)
	}
	return payload, true, nil
}

// PutState inserts or replaces the blob for key.
func (s *Store) PutState(ctx context.Context, key widget.Key, data []byte) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO widget_state (session_id, widget_id, payload, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (session_id, widget_id) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		key.SessionID, key.WidgetID, data, toMillis(s.now()),
	)
	if err != nil {
		return fmt.Errorf("put widget state: %w", err)
	}
	return nil
}

// DeleteState removes the blob for key. Missing rows are not an error.
func (s *Store) DeleteState(ctx context.Context, key widget.Key) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM widget_state WHERE session_id = ? AND widget_id = ?`,
		key.SessionID, key.WidgetID,
	); err != nil {
		return fmt.Errorf("delete widget state: %w", err)
	}
	return nil
}

// PruneBefore deletes state last written before cutoff and returns the
// number of rows removed.
func (s *Store) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM widget_state WHERE updated_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune widget state: %w", err)
	}
	return result.RowsAffected()
}

func (s *Store) check(ctx context.Context, key widget.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return key.Validate()
}
