package domain

import "time"

// SyncCursor is the watermark separating already-synced from not-yet-synced
// grant changes, one row per project.
type SyncCursor struct {
	ProjectID    string    `db:"project_id"`
	LastSyncTime time.Time `db:"last_sync_time"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// GrantFailure records one grant excluded from a cycle and why.
type GrantFailure struct {
	GrantID string
	Reason  string
}

// CycleResult holds the outcome of one sync cycle.
type CycleResult struct {
	Detected  int
	Synced    int
	Published int
	Failed    []GrantFailure
	SyncTime  time.Time
	Duration  time.Duration
}
