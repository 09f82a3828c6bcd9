package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"grantsync/internal/domain"
)

// WarehouseStore writes flat grant records to the grants_flat table.
type WarehouseStore struct {
	db *sqlx.DB
}

func NewWarehouseStore(db *sqlx.DB) *WarehouseStore {
	return &WarehouseStore{db: db}
}

var flatColumns = []string{
	"grant_id", "title", "summary",
	"funder_id", "funder_name", "funder_type",
	"min_amount", "max_amount", "currency", "status", "rolling",
	"deadline_open", "deadline_close",
	"categories", "eligible_org_types",
	"province", "city", "region_type",
	"years_active_min", "revenue_max", "registered_required",
	"application_url", "source_url",
	"last_verified_at", "created_at", "updated_at",
}

// UpsertBatch inserts or replaces rows by grant id in one statement. Rows for
// grant ids outside the batch are never touched: a delta cycle only carries
// recently modified grants, so anything resembling a full-table replace would
// wipe previously synced rows.
func (s *WarehouseStore) UpsertBatch(ctx context.Context, records []domain.FlatGrantRecord) error {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO grants_flat (")
	sb.WriteString(strings.Join(flatColumns, ", "))
	sb.WriteString(") VALUES ")

	args := make([]interface{}, 0, len(records)*len(flatColumns))
	for i := range records {
		r := &records[i]
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := range flatColumns {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*len(flatColumns) + j + 1))
		}
		sb.WriteString(")")

		args = append(args,
			r.GrantID, r.Title, r.Summary,
			r.FunderID, r.FunderName, r.FunderType,
			r.MinAmount, r.MaxAmount, r.Currency, r.Status, r.Rolling,
			r.DeadlineOpen, r.DeadlineClose,
			pq.Array(r.Categories), pq.Array(r.EligibleOrgTypes),
			r.Province, r.City, r.RegionType,
			r.YearsActiveMin, r.RevenueMax, r.RegisteredRequired,
			r.ApplicationURL, r.SourceURL,
			r.LastVerifiedAt, r.CreatedAt, r.UpdatedAt,
		)
	}

	sb.WriteString(" ON CONFLICT (grant_id) DO UPDATE SET ")
	for i, col := range flatColumns[1:] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
		sb.WriteString(" = EXCLUDED.")
		sb.WriteString(col)
	}
	sb.WriteString(", synced_at = now()")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}
