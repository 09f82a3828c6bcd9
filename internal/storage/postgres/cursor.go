package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"grantsync/internal/domain"
)

// CursorStore persists the sync watermark in the warehouse database, one row
// per project, so it can be advanced in the same transaction as the batch
// upsert.
type CursorStore struct {
	db *sqlx.DB
}

func NewCursorStore(db *sqlx.DB) *CursorStore {
	return &CursorStore{db: db}
}

func (s *CursorStore) Get(ctx context.Context, projectID string) (*domain.SyncCursor, error) {
	var cursor domain.SyncCursor
	query := `
		SELECT project_id, last_sync_time, updated_at
		FROM sync_cursor
		WHERE project_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cursor, query, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		// First cycle for this project: the zero watermark makes every grant
		// count as modified.
		return &domain.SyncCursor{ProjectID: projectID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}

func (s *CursorStore) Advance(ctx context.Context, projectID string, to time.Time) error {
	// GREATEST keeps the watermark monotonic even if a stale cycle retries
	// after a newer one committed.
	query := `
		INSERT INTO sync_cursor (project_id, last_sync_time, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (project_id) DO UPDATE SET
			last_sync_time = GREATEST(sync_cursor.last_sync_time, EXCLUDED.last_sync_time),
			updated_at = now()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, projectID, to)
	return err
}
