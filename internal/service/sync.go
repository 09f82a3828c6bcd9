package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"grantsync/internal/config"
	"grantsync/internal/denormalize"
	"grantsync/internal/domain"
)

// ErrSyncInFlight is returned when a cycle is triggered while another one is
// still running. Cycles never overlap; the caller should retry later.
var ErrSyncInFlight = errors.New("sync cycle already in flight")

// SyncService runs one sync cycle at a time: detect modified grants, fetch
// and denormalize each one, commit the batch together with the cursor
// advance, then publish events.
type SyncService struct {
	source    SourceStore
	warehouse WarehouseStore
	cursor    CursorStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	cfg       config.SyncConfig
	projectID string
	running   atomic.Bool
}

func NewSyncService(
	source SourceStore,
	warehouse WarehouseStore,
	cursor CursorStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
	projectID string,
) *SyncService {
	return &SyncService{
		source:    source,
		warehouse: warehouse,
		cursor:    cursor,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("project", projectID),
		cfg:       cfg,
		projectID: projectID,
	}
}

func (s *SyncService) Sync(ctx context.Context) (*domain.CycleResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInFlight
	}
	defer s.running.Store(false)

	cycleStart := time.Now().UTC()

	cur, err := s.cursor.Get(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("read cursor: %w", err)
	}

	s.logger.Info("starting sync cycle",
		"since", cur.LastSyncTime,
		"workers", s.cfg.Workers,
	)

	ids, err := s.source.ModifiedGrantIDs(ctx, cur.LastSyncTime)
	if err != nil {
		return nil, fmt.Errorf("detect modified grants: %w", err)
	}

	result := &domain.CycleResult{
		Detected: len(ids),
		SyncTime: cycleStart,
	}

	records, failures := s.fetchAll(ctx, ids)
	result.Failed = failures

	// Cancellation is honored up to this point; once the commit starts it
	// runs to completion or explicit failure.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	commitCtx := context.WithoutCancel(ctx)

	err = s.txManager.WithTransaction(commitCtx, func(txCtx context.Context) error {
		if len(records) > 0 {
			if err := s.warehouse.UpsertBatch(txCtx, records); err != nil {
				return fmt.Errorf("upsert batch: %w", err)
			}
		}
		// An empty delta is still a completed cycle: the cursor advances so
		// the next run does not rescan the same window.
		return s.cursor.Advance(txCtx, s.projectID, cycleStart)
	})
	if err != nil {
		return result, fmt.Errorf("commit cycle: %w", err)
	}
	result.Synced = len(records)

	if s.publisher != nil {
		for i := range records {
			if err := s.publisher.Publish(commitCtx, &records[i]); err != nil {
				s.logger.Warn("failed to publish sync event",
					"grant_id", records[i].GrantID,
					"error", err,
				)
			} else {
				result.Published++
			}
		}
	}

	result.Duration = time.Since(cycleStart)

	s.logger.Info("sync cycle completed",
		"detected", result.Detected,
		"synced", result.Synced,
		"failed", len(result.Failed),
		"published", result.Published,
		"duration", result.Duration,
	)

	return result, nil
}

// fetchAll fetches and denormalizes every candidate grant over a bounded
// worker pool. A failure on one grant excludes only that grant; the pool
// always drains before the batch is assembled.
func (s *SyncService) fetchAll(ctx context.Context, ids []string) ([]domain.FlatGrantRecord, []domain.GrantFailure) {
	outcomes := make([]*domain.FlatGrantRecord, len(ids))

	var mu sync.Mutex
	var failures []domain.GrantFailure

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)

	for i, id := range ids {
		g.Go(func() error {
			rec, err := s.buildRecord(ctx, id)
			if err != nil {
				s.logger.Warn("skipping grant", "grant_id", id, "error", err)
				mu.Lock()
				failures = append(failures, domain.GrantFailure{GrantID: id, Reason: err.Error()})
				mu.Unlock()
				return nil
			}
			outcomes[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	records := make([]domain.FlatGrantRecord, 0, len(ids))
	for _, rec := range outcomes {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, failures
}

func (s *SyncService) buildRecord(ctx context.Context, id string) (*domain.FlatGrantRecord, error) {
	grant, err := s.source.GetGrant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch grant: %w", err)
	}

	in := denormalize.Input{Grant: *grant}

	if in.Deadlines, err = s.source.ListDeadlines(ctx, id); err != nil {
		return nil, fmt.Errorf("fetch deadlines: %w", err)
	}
	if in.Eligibility, err = s.source.ListEligibility(ctx, id); err != nil {
		return nil, fmt.Errorf("fetch eligibility: %w", err)
	}
	if in.Geography, err = s.source.ListGeography(ctx, id); err != nil {
		return nil, fmt.Errorf("fetch geography: %w", err)
	}
	if in.Categories, err = s.source.ListCategories(ctx, id); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if grant.FunderID != nil {
		if in.Funder, err = s.source.GetFunder(ctx, *grant.FunderID); err != nil {
			return nil, fmt.Errorf("fetch funder: %w", err)
		}
	}

	rec, err := denormalize.Flatten(in)
	if err != nil {
		return nil, fmt.Errorf("denormalize: %w", err)
	}
	return rec, nil
}
