package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"grantsync/internal/domain"
)

// SourceStore reads the normalized grant tables of the operational database.
// All list reads are ordered by sub-record id so downstream folds see a
// stable enumeration order.
type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) ModifiedGrantIDs(ctx context.Context, since time.Time) ([]string, error) {
	var ids []string
	err := s.db.SelectContext(ctx, &ids,
		"SELECT id FROM grants WHERE updated_at >= $1 ORDER BY id", since)
	if err != nil {
		return nil, fmt.Errorf("select modified grants: %w", err)
	}
	return ids, nil
}

func (s *SourceStore) GetGrant(ctx context.Context, id string) (*domain.Grant, error) {
	var grant domain.Grant
	query := `
		SELECT id, title, summary, funder_id, min_amount, max_amount, currency,
		       status, rolling, application_url, source_url, last_verified_at,
		       created_at, updated_at
		FROM grants
		WHERE id = $1`

	if err := s.db.GetContext(ctx, &grant, query, id); err != nil {
		return nil, err
	}
	return &grant, nil
}

func (s *SourceStore) ListDeadlines(ctx context.Context, grantID string) ([]domain.Deadline, error) {
	var deadlines []domain.Deadline
	query := `
		SELECT id, type, open_date, close_date, cycle
		FROM grant_deadlines
		WHERE grant_id = $1
		ORDER BY id`

	if err := s.db.SelectContext(ctx, &deadlines, query, grantID); err != nil {
		return nil, err
	}
	return deadlines, nil
}

// fragmentFields is the schema-flexible eligibility payload as the extraction
// pipeline writes it.
type fragmentFields struct {
	OrgTypes           []string `json:"organization_type"`
	RegisteredRequired *bool    `json:"registered_required"`
	YearsActiveMin     *int64   `json:"years_active_min"`
	RevenueMax         *int64   `json:"revenue_max"`
	Notes              *string  `json:"notes"`
}

func (s *SourceStore) ListEligibility(ctx context.Context, grantID string) ([]domain.EligibilityFragment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, fields FROM grant_eligibility WHERE grant_id = $1 ORDER BY id", grantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fragments []domain.EligibilityFragment
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}

		var fields fragmentFields
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("eligibility %s: decode fields: %w", id, err)
		}

		fragments = append(fragments, domain.EligibilityFragment{
			ID:                 id,
			OrgTypes:           fields.OrgTypes,
			RegisteredRequired: fields.RegisteredRequired,
			YearsActiveMin:     fields.YearsActiveMin,
			RevenueMax:         fields.RevenueMax,
			Notes:              fields.Notes,
		})
	}
	return fragments, rows.Err()
}

func (s *SourceStore) ListGeography(ctx context.Context, grantID string) ([]domain.Geography, error) {
	var entries []domain.Geography
	query := `
		SELECT id, region_type, region_code, region_name, city
		FROM grant_geography
		WHERE grant_id = $1
		ORDER BY id`

	if err := s.db.SelectContext(ctx, &entries, query, grantID); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SourceStore) ListCategories(ctx context.Context, grantID string) ([]string, error) {
	var categories []string
	query := `
		SELECT category_id
		FROM grant_categories
		WHERE grant_id = $1
		ORDER BY category_id`

	if err := s.db.SelectContext(ctx, &categories, query, grantID); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *SourceStore) GetFunder(ctx context.Context, id string) (*domain.Funder, error) {
	var funder domain.Funder
	query := `
		SELECT id, name, type, website, contact_email
		FROM funders
		WHERE id = $1`

	err := s.db.GetContext(ctx, &funder, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		// Dangling funder references are valid: the grant just has no
		// resolved funder.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &funder, nil
}
