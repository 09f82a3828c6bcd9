package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"grantsync/internal/domain"
)

// SourceStore reads the operational grant data. It never mutates the source.
type SourceStore interface {
	// ModifiedGrantIDs returns the ids of grants whose top-level updated_at is
	// >= since. Sub-record writes that do not touch the parent timestamp are
	// not detected; writers are expected to stamp the parent.
	ModifiedGrantIDs(ctx context.Context, since time.Time) ([]string, error)
	GetGrant(ctx context.Context, id string) (*domain.Grant, error)
	ListDeadlines(ctx context.Context, grantID string) ([]domain.Deadline, error)
	ListEligibility(ctx context.Context, grantID string) ([]domain.EligibilityFragment, error)
	ListGeography(ctx context.Context, grantID string) ([]domain.Geography, error)
	ListCategories(ctx context.Context, grantID string) ([]string, error)
	// GetFunder returns (nil, nil) when the funder does not exist.
	GetFunder(ctx context.Context, id string) (*domain.Funder, error)
}

// WarehouseStore writes flat records to the analytical warehouse. The write
// is a keyed upsert by grant id: rows for ids outside the batch are never
// touched, and the batch becomes visible all at once or not at all.
type WarehouseStore interface {
	UpsertBatch(ctx context.Context, records []domain.FlatGrantRecord) error
}

// CursorStore persists the sync watermark.
type CursorStore interface {
	Get(ctx context.Context, projectID string) (*domain.SyncCursor, error)
	// Advance moves the watermark forward. It must never move it backward.
	Advance(ctx context.Context, projectID string, to time.Time) error
}

// TransactionManager runs fn inside one warehouse transaction carried on the
// context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits post-commit sync events for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, record *domain.FlatGrantRecord) error
	Close() error
}
